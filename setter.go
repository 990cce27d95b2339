package willowui

import "errors"

// ErrNilSetter is returned when SetValue is called without a setter.
var ErrNilSetter = errors.New("willowui: nil setter")

// Setter applies a value of type V to a target of type T. The state the
// value is applied under is passed along so a setter can, for example,
// animate differently when leaving the regular state.
//
// A Setter's identity is its pointer: two overrides for the same target
// recorded through the same *Setter replace each other, while two distinct
// setters never collide. Create setters once (package-level variables or
// fields) and reuse them.
type Setter[T, V any] struct {
	name string
	fn   func(target T, value V, state NodeState)
}

// NewSetter returns a setter that calls fn. The name is used in diagnostic
// output only.
func NewSetter[T, V any](name string, fn func(target T, value V, state NodeState)) *Setter[T, V] {
	if fn == nil {
		panic("willowui: NewSetter with nil func")
	}
	return &Setter[T, V]{name: name, fn: fn}
}

// Set applies value to target.
func (s *Setter[T, V]) Set(target T, value V, state NodeState) {
	s.fn(target, value, state)
}

// Name returns the setter's diagnostic name.
func (s *Setter[T, V]) Name() string {
	return s.name
}
