package willowui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestAlphaTransitionReachesTarget(t *testing.T) {
	n := NewNode("n")
	fade := AlphaTransition(1, ease.Linear)
	require.NoError(t, SetValue(n.States(), n, 0.0, fade, StateDisabled))

	n.SetDisabled(true)
	assert.Equal(t, 1.0, n.Alpha, "transition should not snap")
	assert.True(t, n.Animating())

	n.Update(0.5)
	assert.InDelta(t, 0.5, n.Alpha, 1e-6)

	n.Update(0.6)
	assert.InDelta(t, 0.0, n.Alpha, 1e-6)
	assert.False(t, n.Animating())
}

func TestColorTransitionReachesTarget(t *testing.T) {
	n := NewNode("n")
	blend := ColorTransition(0.25, nil)
	target := Color{0, 0.5, 1, 1}
	require.NoError(t, SetValue(n.States(), n, target, blend, StateHover))

	n.setHovered(true)
	for i := 0; i < 10; i++ {
		n.Update(0.05)
	}

	assert.InDelta(t, 0, n.Color.R, 1e-6)
	assert.InDelta(t, 0.5, n.Color.G, 1e-6)
	assert.InDelta(t, 1, n.Color.B, 1e-6)
	assert.False(t, n.Animating())
}

func TestZeroDurationTransitionSnaps(t *testing.T) {
	n := NewNode("n")
	fade := AlphaTransition(0, nil)
	require.NoError(t, SetValue(n.States(), n, 0.25, fade))
	assert.Equal(t, 0.25, n.Alpha)
	assert.False(t, n.Animating())
}

func TestSnapSetterCancelsTransition(t *testing.T) {
	n := NewNode("n")
	fade := AlphaTransition(1, ease.Linear)
	require.NoError(t, SetValue(n.States(), n, 0.0, fade, StateHover))
	n.setHovered(true)
	require.True(t, n.Animating())

	require.NoError(t, n.SetAlpha(0.7))
	assert.False(t, n.Animating())

	n.Update(0.5)
	assert.Equal(t, 0.7, n.Alpha)
}

func TestTweenGroupStopsOnDisposedTarget(t *testing.T) {
	n := NewNode("n")
	g := TweenAlpha(n, 0, 1, ease.Linear)
	n.Dispose()
	g.Update(0.5)
	assert.True(t, g.Done)
	assert.Equal(t, 1.0, n.Alpha)
}
