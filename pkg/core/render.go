package core

import (
	"image/color"
	"math"
)

// DefaultDisplaySize is the edge length in pixels of the board display area.
const DefaultDisplaySize = 512

// View describes the square pixel area a board of size N is drawn into.
type View struct {
	N           int
	DisplaySize float32
}

// NewView returns a view for an n×n board drawn into size×size pixels.
func NewView(n int, size float32) View {
	if size <= 0 {
		size = DefaultDisplaySize
	}
	return View{N: n, DisplaySize: size}
}

// CellSize returns the edge length of one cell in pixels. It may be below one
// when the board has more cells than the display has pixels.
func (v View) CellSize() float32 {
	if v.N <= 0 {
		return 0
	}
	return v.DisplaySize / float32(v.N)
}

// CellAt maps a pixel offset from the top-left of the display area to the
// interior cell under it. Each cell k owns the half-open pixel interval
// [(k-1)*cs, k*cs) on both axes, so a position exactly on a boundary belongs
// to the cell to its right or below. Offsets outside [0, DisplaySize) and NaN
// report false.
func (v View) CellAt(px, py float32) (Cell, bool) {
	cs := v.CellSize()
	if cs <= 0 {
		return Cell{}, false
	}
	x, okX := v.axis(px, cs)
	y, okY := v.axis(py, cs)
	if !okX || !okY {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}

func (v View) axis(p, cs float32) (int, bool) {
	if math.IsNaN(float64(p)) || p < 0 || p >= v.DisplaySize {
		return 0, false
	}
	k := int(math.Floor(float64(p/cs))) + 1
	if k < 1 || k > v.N {
		return 0, false
	}
	return k, true
}

// CellRect returns the pixel rectangle covered by interior cell c.
func (v View) CellRect(c Cell) Rect {
	cs := v.CellSize()
	return Rect{
		MinX: float32(c.X-1) * cs,
		MinY: float32(c.Y-1) * cs,
		MaxX: float32(c.X) * cs,
		MaxY: float32(c.Y) * cs,
	}
}

// Rect is an axis-aligned rectangle in display pixels. Min is inclusive and
// Max exclusive.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Fill pairs a rectangle with the color it should be painted.
type Fill struct {
	Rect  Rect
	Color color.RGBA
}

// LiveColor is the color used for fully populated cells.
var LiveColor = color.RGBA{R: 255, A: 255}

// GammaU8 encodes a linear intensity in [0,1] with the sRGB transfer curve.
func GammaU8(l float32) uint8 {
	switch {
	case l <= 0 || math.IsNaN(float64(l)):
		return 0
	case l <= 0.0031308:
		return uint8(math.Round(3294.6 * float64(l)))
	case l < 1:
		return uint8(math.Round(269.025*math.Pow(float64(l), 1/2.4) - 14.025))
	default:
		return 255
	}
}
