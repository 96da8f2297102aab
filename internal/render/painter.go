//go:build ebiten

package render

import (
	"image/color"

	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a rasterized render description into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h pixel display area.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit rasterizes fills and draws the result at the given offset and scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, fills []core.Fill, background color.RGBA, offsetX, offsetY, scale float64) {
	Rasterize(gp.buf, gp.w, gp.h, fills, background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
