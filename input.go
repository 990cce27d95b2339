package willowui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// processInput feeds one frame of pointer input through processPointer.
// Injected events take priority over the real mouse.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(s.Button.ebitenButton()))
}

// processPointer updates hover, press and focus for a pointer at (x, y).
func (s *Scene) processPointer(x, y float64, down bool) {
	s.pointerX, s.pointerY = x, y
	target := s.hitTest(x, y)

	if target != s.hover {
		if s.hover != nil {
			s.hover.setHovered(false)
		}
		if target != nil {
			target.setHovered(true)
		}
		if s.debug {
			logger.WithFields(logrus.Fields{
				"from": nodeName(s.hover),
				"to":   nodeName(target),
			}).Debug("hover changed")
		}
		s.hover = target
	}

	switch {
	case down && !s.pointerDown:
		s.pointerDown = true
		s.pressed = target
		if target != nil {
			target.setPressed(true)
		}
		s.SetFocus(target)
	case !down && s.pointerDown:
		s.pointerDown = false
		pressed := s.pressed
		s.pressed = nil
		if pressed != nil {
			pressed.setPressed(false)
			if pressed == target && !pressed.disabled && pressed.OnClick != nil {
				pressed.OnClick(pressed)
			}
		}
	}
}

// hitTest returns the topmost interactable, enabled, visible node containing
// (x, y). Later siblings and children are on top of earlier ones.
func (s *Scene) hitTest(x, y float64) *Node {
	return hitTestNode(s.root, x, y)
}

func hitTestNode(n *Node, x, y float64) *Node {
	if !n.Visible || n.disposed {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTestNode(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.Interactable && !n.disabled && n.Bounds().Contains(x, y) {
		return n
	}
	return nil
}

func nodeName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}
