package render

import (
	"image/color"
	"math"

	"mad-life/pkg/core"
)

// Rasterize paints fills into buf, an RGBA buffer of w*h pixels, after
// clearing it to background. A pixel takes a fill's color when the fill's
// rectangle overlaps it at all, so sub-pixel cells stay visible. Later fills
// win over earlier ones.
func Rasterize(buf []byte, w, h int, fills []core.Fill, background color.RGBA) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	fill(buf[:4*w*h], background)
	for _, f := range fills {
		x0, x1 := span(f.Rect.MinX, f.Rect.MaxX, w)
		y0, y1 := span(f.Rect.MinY, f.Rect.MaxY, h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				put(buf, (y*w+x)*4, f.Color)
			}
		}
	}
}

// span converts [lo, hi) in pixel space into the covered pixel index range,
// clipped to [0, limit).
func span(lo, hi float32, limit int) (int, int) {
	lo = max(lo, 0)
	hi = min(hi, float32(limit))
	if !(hi > lo) {
		return 0, 0
	}
	return int(math.Floor(float64(lo))), int(math.Ceil(float64(hi)))
}

func fill(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		put(buf, base, c)
	}
}

func put(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
