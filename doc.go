// Package willowui adds state-driven styling and image rendering to
// retained-mode UIs built on [Ebitengine].
//
// # States
//
// Every [Node] owns a [StateManager]. A property can be given a different
// value per [NodeState]:
//
//	btn := willowui.NewImageNode("ok", img)
//	btn.SetColor(willowui.ColorWhite)                           // regular, applied now
//	btn.SetColor(willowui.Color{0.6, 0.8, 1, 1}, willowui.StateHover)
//	btn.SetAlpha(0.4, willowui.StateDisabled)
//
// [StateRegular] is always active. When the active set changes, the values
// stored for every active state are applied in enumeration order, so a
// later state (Disabled) wins over an earlier one (Hover) for the same
// property. Values for inactive states are kept, not discarded.
//
// Any property can take part: create a [Setter] and call [SetValue]
// directly.
//
//	var label = willowui.NewSetter("label", func(l *Label, s string, _ willowui.NodeState) {
//		l.Text = s
//	})
//	willowui.SetValue(node.States(), myLabel, "Click me!", label, willowui.StateHover)
//
// [AlphaTransition] and [ColorTransition] build setters that tween to the
// new value instead of snapping.
//
// # Scene and input
//
// A [Scene] derives Hover, Active and Focus from the mouse each Update and
// draws every visible node's image. Drive it with [Run], or call
// [Scene.Update] and [Scene.Draw] from your own [ebiten.Game]. Tests can
// queue pointer input with [Scene.InjectClick] and friends.
//
// # Images
//
// [RenderImage] draws a bitmap in one of three [SubImageMode]s: the whole
// image scaled about the destination centre, an explicit source
// sub-rectangle, or a nine-patch described by a resize hint
// (see [ParseResizeHint]).
//
// # Themes
//
// [LoadTheme] reads per-state styles from YAML and [Theme.Apply] records
// them on a node tree by node name.
//
// [Ebitengine]: https://ebitengine.org
package willowui
