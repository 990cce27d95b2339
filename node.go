package willowui

// nodeIDCounter is a plain counter (no atomic; willowui is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Built-in setters for the Node properties that can vary by state. Pass them
// to SetValue, or use the Node.Set* helpers which do so.
var (
	ColorSetter = NewSetter("color", func(n *Node, c Color, _ NodeState) {
		n.colorTween = nil
		n.Color = c
	})
	AlphaSetter = NewSetter("alpha", func(n *Node, a float64, _ NodeState) {
		n.alphaTween = nil
		n.Alpha = a
	})
	VisibleSetter    = NewSetter("visible", func(n *Node, v bool, _ NodeState) { n.Visible = v })
	ImageSetter      = NewSetter("image", func(n *Node, img *RenderImage, _ NodeState) { n.Image = img })
	ImageScaleSetter = NewSetter("imageScale", func(n *Node, s float64, _ NodeState) { n.ImageScale = s })
)

// Node is a UI element: a rectangle with an optional image, a tint, and a
// StateManager that swaps property values as the node's interaction state
// changes.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Bounds, relative to the parent's top-left corner.
	X, Y          float64
	Width, Height float64

	// Appearance
	Color      Color
	Alpha      float64
	Visible    bool
	Image      *RenderImage
	ImageScale float64

	// Interactable nodes take part in hit testing and receive Hover, Active
	// and Focus states from the Scene.
	Interactable bool

	// Metadata
	UserData any

	// Callbacks (nil by default)
	OnClick       func(n *Node)
	OnStateChange func(n *Node, states StateSet)

	states *StateManager

	// Interaction flags the active states are derived from.
	hovered  bool
	pressed  bool
	focused  bool
	disabled bool
	selected bool

	// Running transitions, advanced by Update.
	alphaTween *TweenGroup
	colorTween *TweenGroup

	disposed bool
}

// NewNode creates a node with default appearance: white, opaque, visible.
func NewNode(name string) *Node {
	return &Node{
		ID:         nextNodeID(),
		Name:       name,
		Color:      ColorWhite,
		Alpha:      1,
		Visible:    true,
		ImageScale: 1,
		states:     NewStateManager(),
	}
}

// NewImageNode creates an interactable node sized to img.
func NewImageNode(name string, img *RenderImage) *Node {
	n := NewNode(name)
	n.Image = img
	n.Interactable = true
	if img != nil {
		n.Width = float64(img.Width())
		n.Height = float64(img.Height())
	}
	return n
}

// States returns the node's state manager.
func (n *Node) States() *StateManager {
	return n.states
}

// SetColor sets the tint for the given states (Regular when none given).
func (n *Node) SetColor(c Color, states ...NodeState) error {
	return SetValue(n.states, n, c, ColorSetter, states...)
}

// SetAlpha sets the opacity for the given states.
func (n *Node) SetAlpha(a float64, states ...NodeState) error {
	return SetValue(n.states, n, a, AlphaSetter, states...)
}

// SetVisible sets visibility for the given states.
func (n *Node) SetVisible(v bool, states ...NodeState) error {
	return SetValue(n.states, n, v, VisibleSetter, states...)
}

// SetImage sets the image for the given states.
func (n *Node) SetImage(img *RenderImage, states ...NodeState) error {
	return SetValue(n.states, n, img, ImageSetter, states...)
}

// SetImageScale sets the image draw scale for the given states.
func (n *Node) SetImageScale(s float64, states ...NodeState) error {
	return SetValue(n.states, n, s, ImageScaleSetter, states...)
}

// ActivateStates activates states directly, bypassing the interaction flags.
// The next flag change (hover, press, focus, ...) recomputes the set.
func (n *Node) ActivateStates(states ...NodeState) error {
	prev := n.states.ActiveStates()
	if err := n.states.ActivateStates(states...); err != nil {
		return err
	}
	n.notifyStateChange(prev)
	return nil
}

// SetDisabled enables or disables the node. A disabled node is skipped by
// hit testing and shows StateDisabled instead of Hover and Active.
func (n *Node) SetDisabled(disabled bool) {
	if n.disabled == disabled {
		return
	}
	n.disabled = disabled
	if disabled {
		n.hovered = false
		n.pressed = false
	}
	n.refreshStates()
}

// Disabled reports whether the node is disabled.
func (n *Node) Disabled() bool {
	return n.disabled
}

// SetSelected marks the node as selected.
func (n *Node) SetSelected(selected bool) {
	if n.selected == selected {
		return
	}
	n.selected = selected
	n.refreshStates()
}

// Selected reports whether the node is selected.
func (n *Node) Selected() bool {
	return n.selected
}

func (n *Node) setHovered(v bool) {
	if n.hovered == v {
		return
	}
	n.hovered = v
	n.refreshStates()
}

func (n *Node) setPressed(v bool) {
	if n.pressed == v {
		return
	}
	n.pressed = v
	n.refreshStates()
}

func (n *Node) setFocused(v bool) {
	if n.focused == v {
		return
	}
	n.focused = v
	n.refreshStates()
}

// derivedStates maps the interaction flags to NodeStates.
func (n *Node) derivedStates() []NodeState {
	states := make([]NodeState, 0, 4)
	if n.disabled {
		states = append(states, StateDisabled)
	} else {
		if n.hovered {
			states = append(states, StateHover)
		}
		if n.pressed {
			states = append(states, StateActive)
		}
	}
	if n.focused {
		states = append(states, StateFocus)
	}
	if n.selected {
		states = append(states, StateSelected)
	}
	return states
}

// refreshStates activates the states derived from the interaction flags.
func (n *Node) refreshStates() {
	prev := n.states.ActiveStates()
	// derived states are always valid.
	_ = n.states.ActivateStates(n.derivedStates()...)
	n.notifyStateChange(prev)
}

func (n *Node) notifyStateChange(prev StateSet) {
	cur := n.states.ActiveStates()
	if cur != prev && n.OnStateChange != nil {
		n.OnStateChange(n, cur)
	}
}

// Update advances running transitions by dt seconds.
func (n *Node) Update(dt float32) {
	if n.alphaTween != nil {
		n.alphaTween.Update(dt)
		if n.alphaTween.Done {
			n.alphaTween = nil
		}
	}
	if n.colorTween != nil {
		n.colorTween.Update(dt)
		if n.colorTween.Done {
			n.colorTween = nil
		}
	}
}

// Animating reports whether any transition is running.
func (n *Node) Animating() bool {
	return n.alphaTween != nil || n.colorTween != nil
}

// Bounds returns the node's rectangle in scene coordinates.
func (n *Node) Bounds() Rect {
	x, y := n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("willowui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("willowui: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for n and every descendant, depth-first, parents first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
	n.OnClick = nil
	n.OnStateChange = nil
	n.alphaTween = nil
	n.colorTween = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
