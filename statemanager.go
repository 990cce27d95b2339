package willowui

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// StateManager records property overrides per NodeState for one node and
// replays them whenever the node's active states change.
//
// StateRegular is always active. Values set without a state, or only for
// StateRegular, are applied immediately. Values for other states are applied
// when those states are activated, in enumeration order.
//
// Like the rest of willowui, a StateManager is not safe for concurrent use.
type StateManager struct {
	active StateSet
	data   [numNodeStates]*StateData
}

// NewStateManager returns a manager whose only active state is StateRegular.
func NewStateManager() *StateManager {
	m := &StateManager{active: NewStateSet()}
	for i := range m.data {
		m.data[i] = newStateData()
	}
	return m
}

// SetValue records that setter should apply value to target whenever any of
// states is active.
//
// With no states, or exactly StateRegular, the value is stored under
// StateRegular and applied at once. Otherwise it is stored under every listed
// state and applied at once only if StateRegular is among them. Recording the
// same (target, setter) pair for a state again overwrites the earlier value.
//
// An invalid state returns ErrInvalidState and nothing is recorded.
func SetValue[T comparable, V any](m *StateManager, target T, value V, setter *Setter[T, V], states ...NodeState) error {
	if setter == nil {
		return ErrNilSetter
	}
	if err := validateStates(states); err != nil {
		return err
	}
	key := overrideKey{target: target, setter: setter}
	e := &entry[T, V]{target: target, value: value, setter: setter}

	if isRegularOnly(states) {
		m.data[StateRegular].set(key, e)
		setter.Set(target, value, StateRegular)
		return nil
	}

	set := NewStateSet(states...)
	if !containsState(states, StateRegular) {
		set &^= 1 << StateRegular
	}
	for _, s := range set.States() {
		m.data[s].set(key, e)
	}
	if set.Has(StateRegular) {
		setter.Set(target, value, StateRegular)
	}
	return nil
}

// Lookup returns the value stored for (target, setter) under state.
func Lookup[T comparable, V any](m *StateManager, target T, setter *Setter[T, V], state NodeState) (V, bool) {
	var zero V
	if !state.Valid() || setter == nil {
		return zero, false
	}
	o, ok := m.data[state].get(overrideKey{target: target, setter: setter})
	if !ok {
		return zero, false
	}
	return o.(*entry[T, V]).value, true
}

// ActivateStates replaces the active set with {StateRegular} ∪ states and
// applies every override of every active state in enumeration order.
// Overrides of states that are no longer active are kept for later.
//
// An invalid state returns ErrInvalidState and leaves the active set as it
// was.
func (m *StateManager) ActivateStates(states ...NodeState) error {
	if err := validateStates(states); err != nil {
		return err
	}
	m.active = NewStateSet(states...)
	if globalDebug {
		logger.WithFields(logrus.Fields{
			"active":    m.active.String(),
			"overrides": m.activeOverrideCount(),
		}).Debug("activate states")
	}
	for _, s := range m.active.States() {
		m.data[s].apply(s)
	}
	return nil
}

// ActiveStates returns the current active set.
func (m *StateManager) ActiveStates() StateSet {
	return m.active
}

// IsActive reports whether s is currently active.
func (m *StateManager) IsActive(s NodeState) bool {
	return m.active.Has(s)
}

// Len returns the number of overrides stored under s.
func (m *StateManager) Len(s NodeState) int {
	if !s.Valid() {
		return 0
	}
	return m.data[s].Len()
}

func (m *StateManager) activeOverrideCount() int {
	n := 0
	for _, s := range m.active.States() {
		n += m.data[s].Len()
	}
	return n
}

// String lists the active states and the overrides stored for every state.
func (m *StateManager) String() string {
	var b strings.Builder
	b.WriteString("current states: ")
	b.WriteString(m.active.String())
	b.WriteString(", available: {")
	for i, d := range m.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(NodeState(i).String())
		b.WriteString(": ")
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}

func isRegularOnly(states []NodeState) bool {
	switch len(states) {
	case 0:
		return true
	case 1:
		return states[0] == StateRegular
	default:
		return false
	}
}

func containsState(states []NodeState, s NodeState) bool {
	for _, x := range states {
		if x == s {
			return true
		}
	}
	return false
}
