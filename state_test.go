package willowui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStateString(t *testing.T) {
	assert.Equal(t, "regular", StateRegular.String())
	assert.Equal(t, "disabled", StateDisabled.String())
	assert.Equal(t, "NodeState(42)", NodeState(42).String())
}

func TestParseNodeState(t *testing.T) {
	for _, s := range AllNodeStates() {
		got, err := ParseNodeState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseNodeState("  Hover ")
	require.NoError(t, err)
	assert.Equal(t, StateHover, got)

	_, err = ParseNodeState("pressed")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStateSetAlwaysHasRegular(t *testing.T) {
	set := NewStateSet()
	assert.True(t, set.Has(StateRegular))
	assert.Equal(t, 1, set.Len())

	set = NewStateSet(StateFocus, StateHover, StateFocus)
	assert.Equal(t, []NodeState{StateRegular, StateHover, StateFocus}, set.States())
	assert.Equal(t, "[regular hover focus]", set.String())
	assert.False(t, set.Has(StateDisabled))
	assert.False(t, set.Has(NodeState(200)))
}

func TestStateSetIgnoresInvalid(t *testing.T) {
	set := NewStateSet(NodeState(31), StateActive)
	assert.Equal(t, []NodeState{StateRegular, StateActive}, set.States())
}
