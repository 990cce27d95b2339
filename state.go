package willowui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState is returned when a NodeState outside the defined
// enumeration is passed to the state manager.
var ErrInvalidState = errors.New("willowui: invalid node state")

// NodeState is a visual or interaction state of a UI node. States have a
// total order (their numeric value) which is the order overrides are applied
// in when several states are active at once.
type NodeState uint8

const (
	StateRegular  NodeState = iota // baseline state, always active
	StateHover                     // pointer is over the node
	StateFocus                     // node receives keyboard input
	StateActive                    // node is being pressed
	StateDisabled                  // node cannot be interacted with
	StateSelected                  // node is marked as selected

	numNodeStates
)

var nodeStateNames = [numNodeStates]string{
	StateRegular:  "regular",
	StateHover:    "hover",
	StateFocus:    "focus",
	StateActive:   "active",
	StateDisabled: "disabled",
	StateSelected: "selected",
}

// String returns the lower-case name of the state.
func (s NodeState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
	return nodeStateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s NodeState) Valid() bool {
	return s < numNodeStates
}

// AllNodeStates returns every defined state in enumeration order.
func AllNodeStates() []NodeState {
	out := make([]NodeState, numNodeStates)
	for i := range out {
		out[i] = NodeState(i)
	}
	return out
}

// ParseNodeState returns the state with the given name (case-insensitive).
func ParseNodeState(name string) (NodeState, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range nodeStateNames {
		if n == name {
			return NodeState(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidState, name)
}

func validateStates(states []NodeState) error {
	for _, s := range states {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidState, uint8(s))
		}
	}
	return nil
}

// StateSet is a set of NodeStates. StateRegular is a member of every set
// built by NewStateSet and cannot be removed. The zero value is the empty
// set and is only useful as a comparison target.
type StateSet uint32

// NewStateSet returns the set {Regular} ∪ states. Invalid states are ignored;
// callers validate before building a set.
func NewStateSet(states ...NodeState) StateSet {
	set := StateSet(1) << StateRegular
	for _, s := range states {
		if s.Valid() {
			set |= 1 << s
		}
	}
	return set
}

// Has reports whether s is in the set.
func (set StateSet) Has(s NodeState) bool {
	return s.Valid() && set&(1<<s) != 0
}

// Len returns the number of states in the set.
func (set StateSet) Len() int {
	n := 0
	for s := NodeState(0); s < numNodeStates; s++ {
		if set.Has(s) {
			n++
		}
	}
	return n
}

// States returns the members in enumeration order.
func (set StateSet) States() []NodeState {
	out := make([]NodeState, 0, numNodeStates)
	for s := NodeState(0); s < numNodeStates; s++ {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (set StateSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range set.States() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')
	return b.String()
}
