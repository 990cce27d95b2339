package willowui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Call Update(dt) each frame; Node.Update does this for transitions started
// by AlphaTransition and ColorTransition. If the target node is disposed,
// the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// AlphaTransition returns a setter that fades a node's Alpha to the
// requested value over duration seconds instead of snapping. A zero or
// negative duration snaps. Use it with SetValue in place of AlphaSetter:
//
//	fade := willowui.AlphaTransition(0.2, ease.OutQuad)
//	willowui.SetValue(btn.States(), btn, 0.5, fade, willowui.StateDisabled)
func AlphaTransition(duration float32, fn ease.TweenFunc) *Setter[*Node, float64] {
	if fn == nil {
		fn = ease.Linear
	}
	return NewSetter("alphaTransition", func(n *Node, a float64, _ NodeState) {
		if duration <= 0 {
			n.alphaTween = nil
			n.Alpha = a
			return
		}
		n.alphaTween = TweenAlpha(n, a, duration, fn)
	})
}

// ColorTransition returns a setter that blends a node's Color to the
// requested value over duration seconds instead of snapping.
func ColorTransition(duration float32, fn ease.TweenFunc) *Setter[*Node, Color] {
	if fn == nil {
		fn = ease.Linear
	}
	return NewSetter("colorTransition", func(n *Node, c Color, _ NodeState) {
		if duration <= 0 {
			n.colorTween = nil
			n.Color = c
			return
		}
		n.colorTween = TweenColor(n, c, duration, fn)
	})
}
