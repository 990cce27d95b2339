package willowui

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrImageLoad is returned when an image resource cannot be opened or
// decoded.
var ErrImageLoad = errors.New("willowui: image load failed")

// SubImageMode selects how a RenderImage maps itself onto its destination.
type SubImageMode uint8

const (
	SubImageNormal SubImageMode = iota // whole image, scaled about the destination centre
	SubImageScale                      // explicit source sub-rectangle stretched to the destination
	SubImageResize                     // nine-patch driven by a resize hint
)

func (m SubImageMode) String() string {
	switch m {
	case SubImageNormal:
		return "normal"
	case SubImageScale:
		return "scale"
	case SubImageResize:
		return "resize"
	default:
		return fmt.Sprintf("SubImageMode(%d)", uint8(m))
	}
}

// RenderImage is a loaded bitmap plus the configuration needed to draw it
// into an arbitrary destination rectangle.
type RenderImage struct {
	// Name is the resource name the image was loaded from, if any.
	Name string
	// Blend is the compositing mode used when drawing.
	Blend BlendMode

	img    *ebiten.Image
	filter ebiten.Filter
	mode   SubImageMode
	sub    image.Rectangle
	resize *ResizeHint
}

// NewRenderImage wraps an existing ebiten image. linear selects linear
// filtering; otherwise nearest-neighbour filtering is used.
func NewRenderImage(img *ebiten.Image, linear bool) *RenderImage {
	if img == nil {
		panic("willowui: NewRenderImage with nil image")
	}
	ri := &RenderImage{img: img, filter: ebiten.FilterNearest}
	if linear {
		ri.filter = ebiten.FilterLinear
	}
	return ri
}

// LoadImage decodes the named file from fsys. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported. Failures are wrapped in ErrImageLoad.
func LoadImage(fsys fs.FS, name string, linear bool) (*RenderImage, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, name, err)
	}
	defer f.Close()

	decoded, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, name, err)
	}
	if globalDebug {
		b := decoded.Bounds()
		logger.WithFields(logrus.Fields{
			"name":   name,
			"format": format,
			"width":  b.Dx(),
			"height": b.Dy(),
		}).Debug("image loaded")
	}
	ri := NewRenderImage(ebiten.NewImageFromImage(decoded), linear)
	ri.Name = name
	return ri, nil
}

// Image returns the underlying ebiten image.
func (ri *RenderImage) Image() *ebiten.Image {
	return ri.img
}

// Width returns the image width in pixels.
func (ri *RenderImage) Width() int {
	return ri.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (ri *RenderImage) Height() int {
	return ri.img.Bounds().Dy()
}

// Filter returns the sampling filter used when drawing.
func (ri *RenderImage) Filter() ebiten.Filter {
	return ri.filter
}

// SubImageMode returns the current draw mode.
func (ri *RenderImage) SubImageMode() SubImageMode {
	return ri.mode
}

// SetSubImageMode selects the draw mode.
func (ri *RenderImage) SetSubImageMode(mode SubImageMode) {
	ri.mode = mode
}

// SetSubImage sets the source rectangle used by SubImageScale, in image
// pixels relative to the image's top-left corner.
func (ri *RenderImage) SetSubImage(x, y, w, h int) {
	ri.sub = image.Rect(x, y, x+w, y+h)
}

// SubImage returns the source rectangle used by SubImageScale.
func (ri *RenderImage) SubImage() image.Rectangle {
	return ri.sub
}

// SetResizeHint parses hint and uses it for SubImageResize. On error the
// previous hint is kept.
func (ri *RenderImage) SetResizeHint(hint string) error {
	h, err := ParseResizeHint(hint)
	if err != nil {
		return err
	}
	ri.resize = h
	return nil
}

// ResizeHint returns the current resize hint, or nil.
func (ri *RenderImage) ResizeHint() *ResizeHint {
	return ri.resize
}

// imageDraw is one DrawImage call: a source rectangle in image pixels and
// the transform that maps it onto the destination.
type imageDraw struct {
	src  image.Rectangle
	geoM ebiten.GeoM
}

// Render draws the image into the destination rectangle (x, y, width,
// height) on dst, tinted by c. scale is only used by SubImageNormal and
// scales the drawn image about the centre of the destination.
func (ri *RenderImage) Render(dst *ebiten.Image, x, y, width, height int, c Color, scale float64) {
	ops := ri.drawOps(x, y, width, height, scale)
	if len(ops) == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.Filter = ri.filter
	op.Blend = ri.Blend.EbitenBlend()
	op.ColorScale = c.colorScale(1)
	origin := ri.img.Bounds().Min
	for _, d := range ops {
		op.GeoM = d.geoM
		src := ri.img.SubImage(d.src.Add(origin)).(*ebiten.Image)
		dst.DrawImage(src, &op)
	}
}

// drawOps computes the draw calls for one Render without touching the GPU.
func (ri *RenderImage) drawOps(x, y, width, height int, scale float64) []imageDraw {
	if width <= 0 || height <= 0 {
		return nil
	}
	dst := Rect{X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height)}

	switch ri.mode {
	case SubImageScale:
		if ri.sub.Empty() {
			return nil
		}
		return []imageDraw{{src: ri.sub, geoM: rectGeoM(ri.sub, dst)}}
	case SubImageResize:
		if ri.resize != nil {
			return ri.resize.drawOps(dst)
		}
		if globalDebug {
			logger.WithField("image", ri.Name).Warn("resize mode without resize hint, drawing normal")
		}
	}
	return ri.normalOps(dst, scale)
}

func (ri *RenderImage) normalOps(dst Rect, scale float64) []imageDraw {
	src := image.Rect(0, 0, ri.Width(), ri.Height())
	if src.Empty() {
		return nil
	}
	g := rectGeoM(src, dst)
	if scale != 1 {
		cx := dst.X + dst.Width/2
		cy := dst.Y + dst.Height/2
		g.Translate(-cx, -cy)
		g.Scale(scale, scale)
		g.Translate(cx, cy)
	}
	return []imageDraw{{src: src, geoM: g}}
}

// rectGeoM maps the source rectangle (origin at its top-left) onto dst.
func rectGeoM(src image.Rectangle, dst Rect) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(dst.Width/float64(src.Dx()), dst.Height/float64(src.Dy()))
	g.Translate(dst.X, dst.Y)
	return g
}
