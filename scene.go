package willowui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and the pointer and
// focus state that drive each node's Hover, Active and Focus states.
type Scene struct {
	root  *Node
	debug bool

	// Button is the mouse button that presses and focuses nodes.
	Button MouseButton

	// Input state
	hover       *Node
	pressed     *Node
	focus       *Node
	pointerDown bool
	pointerX    float64
	pointerY    float64
	injectQueue []syntheticPointerEvent
}

// NewScene creates a new scene with a pre-created, non-interactable root
// node.
func NewScene() *Scene {
	return &Scene{root: NewNode("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetDebugMode enables debug checks and debug logging.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebugMode(enabled)
}

// Hovered returns the node under the pointer, or nil.
func (s *Scene) Hovered() *Node {
	return s.hover
}

// Pressed returns the node currently held down, or nil.
func (s *Scene) Pressed() *Node {
	return s.pressed
}

// PointerPosition returns the last pointer position seen by Update.
func (s *Scene) PointerPosition() (float64, float64) {
	return s.pointerX, s.pointerY
}

// Focus returns the focused node, or nil.
func (s *Scene) Focus() *Node {
	return s.focus
}

// SetFocus moves focus to n, or clears it when n is nil. Disabled nodes
// cannot take focus.
func (s *Scene) SetFocus(n *Node) {
	if n != nil && n.disabled {
		return
	}
	if s.focus == n {
		return
	}
	if s.focus != nil {
		s.focus.setFocused(false)
	}
	s.focus = n
	if n != nil {
		n.setFocused(true)
	}
}

// Update processes input and advances node transitions by one tick.
func (s *Scene) Update() {
	s.UpdateDelta(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDelta is Update with an explicit time step in seconds.
func (s *Scene) UpdateDelta(dt float32) {
	s.processInput()
	s.root.Walk(func(n *Node) {
		if n.Animating() {
			n.Update(dt)
		}
	})
}

// Draw renders every visible node that has an image, parents before
// children. Alpha is inherited down the tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.drawNode(screen, s.root, 1)
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if n.Image != nil && alpha > 0 {
		b := n.Bounds()
		tint := n.Color
		tint.A *= alpha
		n.Image.Render(screen, int(b.X), int(b.Y), int(b.Width), int(b.Height), tint, n.ImageScale)
	}
	for _, c := range n.children {
		s.drawNode(screen, c, alpha)
	}
}
