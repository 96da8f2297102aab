package core

// PaddedGrid stores an n×n interior of boolean cells surrounded by a one-cell
// border in row-major order. The border is never written by the grid's own
// methods and stays false.
type PaddedGrid struct {
	N      int
	Stride int
	data   []bool
}

// NewPaddedGrid allocates a blank grid with an n×n interior.
func NewPaddedGrid(n int) *PaddedGrid {
	if n <= 0 {
		n = 1
	}
	stride := n + 2
	return &PaddedGrid{N: n, Stride: stride, data: make([]bool, stride*stride)}
}

// Cells exposes the backing slice, border included.
func (g *PaddedGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y) in padded space.
func (g *PaddedGrid) Index(x, y int) int { return y*g.Stride + x }

// Row returns the full padded row y, border columns included.
func (g *PaddedGrid) Row(y int) []bool {
	start := y * g.Stride
	return g.data[start : start+g.Stride]
}

// Get reports whether the cell is live. Positions outside the padded area
// read as dead.
func (g *PaddedGrid) Get(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.Stride || c.Y >= g.Stride {
		return false
	}
	return g.data[g.Index(c.X, c.Y)]
}

// Set writes an interior cell and reports whether c was inside the interior.
func (g *PaddedGrid) Set(c Cell, alive bool) bool {
	if !Interior(c, g.N) {
		return false
	}
	g.data[g.Index(c.X, c.Y)] = alive
	return true
}

// Clear fills the grid with dead cells.
func (g *PaddedGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// BorderDead reports whether every border cell is dead.
func (g *PaddedGrid) BorderDead() bool {
	last := g.N + 1
	for i := 0; i < g.Stride; i++ {
		if g.data[g.Index(i, 0)] || g.data[g.Index(i, last)] ||
			g.data[g.Index(0, i)] || g.data[g.Index(last, i)] {
			return false
		}
	}
	return true
}
