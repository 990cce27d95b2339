package willowui

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTheme = `
nodes:
  ok:
    regular:  { color: "#3060c0", alpha: 1 }
    hover:    { color: cornflowerblue, imageScale: 1.1 }
    disabled: { alpha: 0.4 }
  badge:
    selected: { visible: false }
`

func TestLoadThemeAndApply(t *testing.T) {
	theme, err := LoadTheme(strings.NewReader(testTheme))
	require.NoError(t, err)
	assert.True(t, theme.Has("ok"))
	assert.False(t, theme.Has("cancel"))

	root := NewNode("root")
	ok := NewNode("ok")
	badge := NewNode("badge")
	other := NewNode("other")
	root.AddChild(ok)
	ok.AddChild(badge)
	root.AddChild(other)

	styled, err := theme.Apply(root)
	require.NoError(t, err)
	assert.Equal(t, 2, styled)

	// Regular applies immediately.
	assert.InDelta(t, 0x30/255.0, ok.Color.R, 1e-9)
	assert.InDelta(t, 0x60/255.0, ok.Color.G, 1e-9)
	assert.InDelta(t, 0xc0/255.0, ok.Color.B, 1e-9)

	ok.setHovered(true)
	assert.InDelta(t, 100/255.0, ok.Color.R, 1e-9) // cornflowerblue
	assert.Equal(t, 1.1, ok.ImageScale)

	ok.SetDisabled(true)
	assert.Equal(t, 0.4, ok.Alpha)

	assert.True(t, badge.Visible)
	badge.SetSelected(true)
	assert.False(t, badge.Visible)

	assert.Equal(t, ColorWhite, other.Color)
}

func TestLoadThemeUnknownState(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("nodes:\n  ok:\n    pressed: { alpha: 1 }\n"))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestLoadThemeBadColor(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("nodes:\n  ok:\n    hover: { color: \"#12\" }\n"))
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestLoadThemeUnknownField(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("nodes:\n  ok:\n    hover: { colour: red }\n"))
	assert.Error(t, err)
}

func TestLoadThemeEmpty(t *testing.T) {
	theme, err := LoadTheme(strings.NewReader(""))
	require.NoError(t, err)
	styled, err := theme.Apply(NewNode("root"))
	require.NoError(t, err)
	assert.Zero(t, styled)
}

func TestLoadThemeFile(t *testing.T) {
	fsys := fstest.MapFS{"theme.yaml": {Data: []byte(testTheme)}}
	theme, err := LoadThemeFile(fsys, "theme.yaml")
	require.NoError(t, err)
	assert.True(t, theme.Has("badge"))

	_, err = LoadThemeFile(fsys, "missing.yaml")
	assert.Error(t, err)
}
