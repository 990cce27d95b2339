package willowui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{R: 255, A: 255})
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	return buf.Bytes()
}

func assertPoint(t *testing.T, g ebiten.GeoM, x, y, wantX, wantY float64) {
	t.Helper()
	gx, gy := g.Apply(x, y)
	assert.InDelta(t, wantX, gx, 1e-9, "x of (%v, %v)", x, y)
	assert.InDelta(t, wantY, gy, 1e-9, "y of (%v, %v)", x, y)
}

func TestNewRenderImage(t *testing.T) {
	ri := NewRenderImage(newTestImage(64, 32), true)
	assert.Equal(t, 64, ri.Width())
	assert.Equal(t, 32, ri.Height())
	assert.Equal(t, ebiten.FilterLinear, ri.Filter())
	assert.Equal(t, SubImageNormal, ri.SubImageMode())

	ri = NewRenderImage(newTestImage(4, 4), false)
	assert.Equal(t, ebiten.FilterNearest, ri.Filter())
}

func TestNewRenderImageNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewRenderImage(nil, false) })
}

func TestLoadImage(t *testing.T) {
	fsys := fstest.MapFS{"ui/button.png": {Data: encodePNG(t, 24, 12)}}

	ri, err := LoadImage(fsys, "ui/button.png", false)
	require.NoError(t, err)
	assert.Equal(t, "ui/button.png", ri.Name)
	assert.Equal(t, 24, ri.Width())
	assert.Equal(t, 12, ri.Height())
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(fstest.MapFS{}, "nope.png", false)
	assert.ErrorIs(t, err, ErrImageLoad)
}

func TestLoadImageCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not an image")}}
	_, err := LoadImage(fsys, "bad.png", false)
	assert.ErrorIs(t, err, ErrImageLoad)
}

func TestDrawOpsNormal(t *testing.T) {
	ri := NewRenderImage(newTestImage(64, 32), false)

	ops := ri.drawOps(10, 20, 128, 64, 1)
	require.Len(t, ops, 1)
	assert.Equal(t, image.Rect(0, 0, 64, 32), ops[0].src)
	assertPoint(t, ops[0].geoM, 0, 0, 10, 20)
	assertPoint(t, ops[0].geoM, 64, 32, 138, 84)
}

func TestDrawOpsNormalScalesAboutCentre(t *testing.T) {
	ri := NewRenderImage(newTestImage(64, 32), false)

	ops := ri.drawOps(10, 20, 128, 64, 0.5)
	require.Len(t, ops, 1)
	// Centre (74, 52) stays fixed.
	assertPoint(t, ops[0].geoM, 32, 16, 74, 52)
	assertPoint(t, ops[0].geoM, 0, 0, 42, 36)
	assertPoint(t, ops[0].geoM, 64, 32, 106, 68)
}

func TestDrawOpsScaleUsesSubImage(t *testing.T) {
	ri := NewRenderImage(newTestImage(64, 64), false)
	ri.SetSubImageMode(SubImageScale)
	ri.SetSubImage(16, 8, 32, 16)
	assert.Equal(t, image.Rect(16, 8, 48, 24), ri.SubImage())

	ops := ri.drawOps(0, 0, 64, 64, 3) // scale is ignored
	require.Len(t, ops, 1)
	assert.Equal(t, image.Rect(16, 8, 48, 24), ops[0].src)
	assertPoint(t, ops[0].geoM, 0, 0, 0, 0)
	assertPoint(t, ops[0].geoM, 32, 16, 64, 64)
}

func TestDrawOpsScaleEmptySubImage(t *testing.T) {
	ri := NewRenderImage(newTestImage(8, 8), false)
	ri.SetSubImageMode(SubImageScale)
	assert.Empty(t, ri.drawOps(0, 0, 8, 8, 1))
}

func TestDrawOpsResizeWithoutHintFallsBackToNormal(t *testing.T) {
	ri := NewRenderImage(newTestImage(16, 16), false)
	ri.SetSubImageMode(SubImageResize)

	ops := ri.drawOps(0, 0, 32, 32, 1)
	require.Len(t, ops, 1)
	assert.Equal(t, image.Rect(0, 0, 16, 16), ops[0].src)
}

func TestDrawOpsResize(t *testing.T) {
	ri := NewRenderImage(newTestImage(16, 16), false)
	ri.SetSubImageMode(SubImageResize)
	require.NoError(t, ri.SetResizeHint("resize:4,8,4,4,4,8,4,8,4,8,4,4"))

	ops := ri.drawOps(0, 0, 32, 32, 1)
	assert.Len(t, ops, 9)
}

func TestDrawOpsEmptyDestination(t *testing.T) {
	ri := NewRenderImage(newTestImage(16, 16), false)
	assert.Empty(t, ri.drawOps(0, 0, 0, 10, 1))
	assert.Empty(t, ri.drawOps(0, 0, 10, -1, 1))
}

func TestSetResizeHintKeepsPreviousOnError(t *testing.T) {
	ri := NewRenderImage(newTestImage(16, 16), false)
	require.NoError(t, ri.SetResizeHint("1,2,1,1,1,2,1,2,1,2,1,1"))
	prev := ri.ResizeHint()

	err := ri.SetResizeHint("resize:1,2")
	assert.ErrorIs(t, err, ErrInvalidResizeHint)
	assert.Same(t, prev, ri.ResizeHint())
}

func TestRenderDoesNotPanic(t *testing.T) {
	dst := ebiten.NewImage(64, 64)
	ri := NewRenderImage(newTestImage(16, 16), true)

	ri.Render(dst, 0, 0, 32, 32, ColorWhite, 1)

	ri.SetSubImageMode(SubImageScale)
	ri.SetSubImage(0, 0, 8, 8)
	ri.Render(dst, 4, 4, 16, 16, Color{1, 0, 0, 0.5}, 1)

	ri.SetSubImageMode(SubImageResize)
	require.NoError(t, ri.SetResizeHint("4,8,4,4,4,8,4,8,4,8,4,4"))
	ri.Render(dst, 0, 0, 64, 64, ColorWhite, 1)
}

func TestSubImageModeString(t *testing.T) {
	assert.Equal(t, "normal", SubImageNormal.String())
	assert.Equal(t, "scale", SubImageScale.String())
	assert.Equal(t, "resize", SubImageResize.String())
	assert.Equal(t, "SubImageMode(9)", SubImageMode(9).String())
}
