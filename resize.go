package willowui

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrInvalidResizeHint is returned when a resize hint string cannot be
// parsed.
var ErrInvalidResizeHint = errors.New("willowui: invalid resize hint")

const resizeHintPrefix = "resize:"

// resizeRow is one horizontal band of a nine-patch: the source widths of the
// left, centre and right cells and the band's source height.
type resizeRow struct {
	widths [3]int
	height int
}

// ResizeHint describes a nine-patch split of an image. Each of the three
// rows carries its own column widths, so rows need not line up.
type ResizeHint struct {
	rows [3]resizeRow
}

// ParseResizeHint parses a hint of the form
//
//	resize:w1,w2,w3,h1,w4,w5,w6,h2,w7,w8,w9,h3
//
// where each group of four gives the left, centre and right widths of a row
// followed by the row height, top row first. The "resize:" prefix is
// optional. All values must be non-negative integers.
func ParseResizeHint(hint string) (*ResizeHint, error) {
	s := strings.TrimSpace(hint)
	s = strings.TrimPrefix(s, resizeHintPrefix)
	parts := strings.Split(s, ",")
	if len(parts) != 12 {
		return nil, fmt.Errorf("%w: %q: want 12 values, got %d", ErrInvalidResizeHint, hint, len(parts))
	}
	var vals [12]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: value %d: %w", ErrInvalidResizeHint, hint, i, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %q: value %d is negative", ErrInvalidResizeHint, hint, i)
		}
		vals[i] = v
	}
	h := &ResizeHint{}
	for r := range h.rows {
		base := r * 4
		h.rows[r] = resizeRow{
			widths: [3]int{vals[base], vals[base+1], vals[base+2]},
			height: vals[base+3],
		}
	}
	return h, nil
}

// String returns the hint in the form accepted by ParseResizeHint.
func (h *ResizeHint) String() string {
	var b strings.Builder
	b.WriteString(resizeHintPrefix)
	for r, row := range h.rows {
		if r > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d,%d,%d,%d", row.widths[0], row.widths[1], row.widths[2], row.height)
	}
	return b.String()
}

// splitSpan divides total into a fixed start, a stretched middle and a fixed
// end. When total cannot hold both fixed parts they shrink proportionally
// and the middle collapses to zero.
func splitSpan(total, start, end float64) (float64, float64, float64) {
	fixed := start + end
	if fixed > total {
		if fixed == 0 {
			return 0, 0, 0
		}
		f := total / fixed
		return start * f, 0, end * f
	}
	return start, total - fixed, end
}

// drawOps returns the nine cell draws covering dst.
func (h *ResizeHint) drawOps(dst Rect) []imageDraw {
	top, mid, bottom := splitSpan(dst.Height, float64(h.rows[0].height), float64(h.rows[2].height))
	rowHeights := [3]float64{top, mid, bottom}

	ops := make([]imageDraw, 0, 9)
	srcY := 0
	dstY := dst.Y
	for r, row := range h.rows {
		left, centre, right := splitSpan(dst.Width, float64(row.widths[0]), float64(row.widths[2]))
		colWidths := [3]float64{left, centre, right}

		srcX := 0
		dstX := dst.X
		for c := 0; c < 3; c++ {
			src := image.Rect(srcX, srcY, srcX+row.widths[c], srcY+row.height)
			cell := Rect{X: dstX, Y: dstY, Width: colWidths[c], Height: rowHeights[r]}
			if !src.Empty() && cell.Width > 0 && cell.Height > 0 {
				ops = append(ops, imageDraw{src: src, geoM: rectGeoM(src, cell)})
			}
			srcX += row.widths[c]
			dstX += colWidths[c]
		}
		srcY += row.height
		dstY += rowHeights[r]
	}
	return ops
}
