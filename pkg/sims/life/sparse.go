package life

import (
	"mad-life/pkg/core"
)

// Sparse stores only live cells plus the frontier of dead interior cells that
// touch at least one of them. Step cost scales with the population rather
// than the board area.
type Sparse struct {
	n        int
	active   map[core.Cell]struct{}
	frontier map[core.Cell]struct{}
}

// NewSparse returns a blank board with an n×n interior.
func NewSparse(n int) *Sparse {
	if n <= 0 {
		n = 1
	}
	return &Sparse{
		n:        n,
		active:   map[core.Cell]struct{}{},
		frontier: map[core.Cell]struct{}{},
	}
}

// NewSparseCheckerboard returns a board whose live cells are exactly the
// interior positions with x+y even.
func NewSparseCheckerboard(n int) *Sparse {
	s := NewSparse(n)
	s.Reset(Checkerboard(s.n))
	return s
}

// Name returns the representation identifier.
func (s *Sparse) Name() string { return "sparse" }

// Size returns the interior edge length.
func (s *Sparse) Size() int { return s.n }

// Step advances the board by one generation.
func (s *Sparse) Step() {
	next := make(map[core.Cell]struct{}, len(s.active))
	for c := range s.active {
		if survives(true, s.liveNeighbors(c)) {
			next[c] = struct{}{}
		}
	}
	for c := range s.frontier {
		if survives(false, s.liveNeighbors(c)) {
			next[c] = struct{}{}
		}
	}
	s.active = next
	s.frontier = frontierOf(next, s.n)
}

func (s *Sparse) liveNeighbors(c core.Cell) int {
	count := 0
	for _, nb := range c.Neighbors() {
		if _, ok := s.active[nb]; ok {
			count++
		}
	}
	return count
}

func frontierOf(active map[core.Cell]struct{}, n int) map[core.Cell]struct{} {
	frontier := make(map[core.Cell]struct{}, len(active)*2)
	for c := range active {
		for _, nb := range c.Neighbors() {
			if !core.Interior(nb, n) {
				continue
			}
			if _, live := active[nb]; live {
				continue
			}
			frontier[nb] = struct{}{}
		}
	}
	return frontier
}

// Shift translates the live pattern by distance cells, dropping cells pushed
// past the border.
func (s *Sparse) Shift(dir core.Direction, distance int) {
	if distance <= 0 || dir > core.Right {
		return
	}
	dx, dy := dir.Delta()
	moved := make(map[core.Cell]struct{}, len(s.active))
	for c := range s.active {
		to := c.Offset(dx*distance, dy*distance)
		if core.Interior(to, s.n) {
			moved[to] = struct{}{}
		}
	}
	s.active = moved
	s.frontier = frontierOf(moved, s.n)
}

// Toggle flips an interior cell and repairs the frontier around it. Cells
// outside the interior are ignored.
func (s *Sparse) Toggle(c core.Cell) bool {
	if !core.Interior(c, s.n) {
		return false
	}
	if _, live := s.active[c]; live {
		delete(s.active, c)
	} else {
		s.active[c] = struct{}{}
	}
	s.refresh(c)
	for _, nb := range c.Neighbors() {
		s.refresh(nb)
	}
	return true
}

// refresh recomputes frontier membership of a single cell.
func (s *Sparse) refresh(c core.Cell) {
	if !core.Interior(c, s.n) {
		return
	}
	if _, live := s.active[c]; live || s.liveNeighbors(c) == 0 {
		delete(s.frontier, c)
		return
	}
	s.frontier[c] = struct{}{}
}

// Alive reports whether c is a live interior cell.
func (s *Sparse) Alive(c core.Cell) bool {
	_, ok := s.active[c]
	return ok
}

// Cells returns the live cells in row-major order.
func (s *Sparse) Cells() []core.Cell {
	return sortedKeys(s.active)
}

// Frontier returns the dead cells adjacent to live ones in row-major order.
func (s *Sparse) Frontier() []core.Cell {
	return sortedKeys(s.frontier)
}

// Population counts live cells.
func (s *Sparse) Population() int { return len(s.active) }

// Reset replaces the board with the given live cells. Cells outside the
// interior are dropped.
func (s *Sparse) Reset(cells []core.Cell) {
	active := make(map[core.Cell]struct{}, len(cells))
	for _, c := range cells {
		if core.Interior(c, s.n) {
			active[c] = struct{}{}
		}
	}
	s.active = active
	s.frontier = frontierOf(active, s.n)
}

// Render aggregates live cells into square pixel buckets when the board has
// more cells than the view has pixels. Each bucket's red channel is the
// gamma-encoded fraction of its cells that are alive.
func (s *Sparse) Render(v core.View) []core.Fill {
	v.N = s.n
	cpp := 1
	if float32(s.n) > v.DisplaySize && v.DisplaySize > 0 {
		cpp = int(float32(s.n) / v.DisplaySize)
	}
	span := v.CellSize() * float32(cpp)
	area := float32(cpp * cpp)

	buckets := map[core.Cell]int{}
	for c := range s.active {
		buckets[core.Cell{X: (c.X - 1) / cpp, Y: (c.Y - 1) / cpp}]++
	}

	fills := make([]core.Fill, 0, len(buckets))
	for _, b := range sortedKeys(buckets) {
		shade := core.LiveColor
		shade.R = core.GammaU8(float32(buckets[b]) / area)
		fills = append(fills, core.Fill{
			Rect: core.Rect{
				MinX: float32(b.X) * span,
				MinY: float32(b.Y) * span,
				MaxX: float32(b.X+1) * span,
				MaxY: float32(b.Y+1) * span,
			},
			Color: shade,
		})
	}
	return fills
}

func sortedKeys[V any](m map[core.Cell]V) []core.Cell {
	cells := make([]core.Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	core.SortCells(cells)
	return cells
}
