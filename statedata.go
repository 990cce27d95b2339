package willowui

import (
	"fmt"
	"strings"
)

// overrideKey identifies an override within one state: the target it
// applies to and the setter that applies it.
type overrideKey struct {
	target any
	setter any
}

// override is one recorded (target, value, setter) triple.
type override interface {
	apply(state NodeState)
	String() string
}

type entry[T, V any] struct {
	target T
	value  V
	setter *Setter[T, V]
}

func (e *entry[T, V]) apply(state NodeState) {
	e.setter.Set(e.target, e.value, state)
}

func (e *entry[T, V]) String() string {
	return fmt.Sprintf("%s=%v", e.setter.Name(), e.value)
}

// StateData holds the property overrides recorded for a single NodeState.
// Overrides are keyed by (target, setter); recording the same pair again
// replaces the stored value but keeps its position in the apply order.
type StateData struct {
	entries map[overrideKey]override
	order   []overrideKey
}

func newStateData() *StateData {
	return &StateData{entries: make(map[overrideKey]override)}
}

func (d *StateData) set(key overrideKey, o override) {
	if _, ok := d.entries[key]; !ok {
		d.order = append(d.order, key)
	}
	d.entries[key] = o
}

func (d *StateData) get(key overrideKey) (override, bool) {
	o, ok := d.entries[key]
	return o, ok
}

// apply replays every override under the given state in registration order.
func (d *StateData) apply(state NodeState) {
	for _, k := range d.order {
		d.entries[k].apply(state)
	}
}

// Len returns the number of overrides stored.
func (d *StateData) Len() int {
	return len(d.order)
}

func (d *StateData) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range d.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.entries[k].String())
	}
	b.WriteByte(']')
	return b.String()
}
