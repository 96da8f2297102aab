package life

import (
	"golang.org/x/sync/errgroup"

	"mad-life/pkg/core"
)

// Dense stores the board as a padded boolean grid. Step evaluates a 3×3
// stencil over every interior cell, fanning row bands out to workers.
type Dense struct {
	n       int
	workers int
	cur     *core.PaddedGrid
	nxt     *core.PaddedGrid
}

// NewDense returns a blank board with an n×n interior using one worker per CPU.
func NewDense(n int) *Dense {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewDenseWithConfig(cfg)
}

// NewDenseWithConfig returns a blank board configured from cfg.
func NewDenseWithConfig(cfg Config) *Dense {
	cur := core.NewPaddedGrid(cfg.Size)
	d := &Dense{n: cur.N, cur: cur, nxt: core.NewPaddedGrid(cur.N)}
	d.SetWorkers(cfg.Workers)
	return d
}

// NewDenseCheckerboard returns a board whose live cells are exactly the
// interior positions with x+y even.
func NewDenseCheckerboard(n int) *Dense {
	d := NewDense(n)
	d.Reset(Checkerboard(d.n))
	return d
}

// Name returns the representation identifier.
func (d *Dense) Name() string { return "dense" }

// Size returns the interior edge length.
func (d *Dense) Size() int { return d.n }

// Workers reports how many goroutines Step fans out to.
func (d *Dense) Workers() int { return d.workers }

// SetWorkers changes the Step fan-out. Values below one select the serial path.
func (d *Dense) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	d.workers = n
}

// Grid exposes the current padded grid.
func (d *Dense) Grid() *core.PaddedGrid { return d.cur }

// Step advances the board by one generation. Every interior cell of the back
// buffer is rewritten from the front buffer, so no update observes another.
func (d *Dense) Step() {
	cur, nxt := d.cur.Cells(), d.nxt.Cells()
	stride := d.cur.Stride
	workers := min(d.workers, d.n)

	if workers <= 1 {
		stepRows(cur, nxt, stride, 1, d.n+1)
	} else {
		var eg errgroup.Group
		eg.SetLimit(workers)
		band := (d.n + workers - 1) / workers
		for lo := 1; lo <= d.n; lo += band {
			hi := min(lo+band, d.n+1)
			eg.Go(func() error {
				stepRows(cur, nxt, stride, lo, hi)
				return nil
			})
		}
		_ = eg.Wait()
	}
	d.cur, d.nxt = d.nxt, d.cur
}

// stepRows writes rows [lo, hi) of nxt. Border columns are never touched.
func stepRows(cur, nxt []bool, stride, lo, hi int) {
	for y := lo; y < hi; y++ {
		up, row, down := (y-1)*stride, y*stride, (y+1)*stride
		for x := 1; x < stride-1; x++ {
			neighbors := bit(cur[up+x-1]) + bit(cur[up+x]) + bit(cur[up+x+1]) +
				bit(cur[row+x-1]) + bit(cur[row+x+1]) +
				bit(cur[down+x-1]) + bit(cur[down+x]) + bit(cur[down+x+1])
			nxt[row+x] = survives(cur[row+x], neighbors)
		}
	}
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Shift translates the live pattern by distance cells. Cells pushed past the
// border are dropped and vacated cells are dead.
func (d *Dense) Shift(dir core.Direction, distance int) {
	if distance <= 0 || dir > core.Right {
		return
	}
	n := d.n
	fresh := core.NewPaddedGrid(n)
	if distance < n {
		switch dir {
		case core.Up:
			for y := 1; y+distance <= n; y++ {
				copy(fresh.Row(y), d.cur.Row(y+distance))
			}
		case core.Down:
			for y := n; y-distance >= 1; y-- {
				copy(fresh.Row(y), d.cur.Row(y-distance))
			}
		case core.Left:
			for y := 1; y <= n; y++ {
				copy(fresh.Row(y)[1:n+1-distance], d.cur.Row(y)[1+distance:n+1])
			}
		case core.Right:
			for y := 1; y <= n; y++ {
				copy(fresh.Row(y)[1+distance:n+1], d.cur.Row(y)[1:n+1-distance])
			}
		}
	}
	d.cur = fresh
}

// Toggle flips an interior cell. Cells outside the interior are ignored.
func (d *Dense) Toggle(c core.Cell) bool {
	return d.cur.Set(c, !d.cur.Get(c))
}

// Alive reports whether c is a live interior cell.
func (d *Dense) Alive(c core.Cell) bool {
	return core.Interior(c, d.n) && d.cur.Get(c)
}

// Cells returns the live cells in row-major order.
func (d *Dense) Cells() []core.Cell {
	var cells []core.Cell
	for y := 1; y <= d.n; y++ {
		row := d.cur.Row(y)
		for x := 1; x <= d.n; x++ {
			if row[x] {
				cells = append(cells, core.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Population counts live cells.
func (d *Dense) Population() int {
	total := 0
	for y := 1; y <= d.n; y++ {
		for _, alive := range d.cur.Row(y)[1 : d.n+1] {
			total += bit(alive)
		}
	}
	return total
}

// Reset replaces the board with the given live cells. Cells outside the
// interior are dropped.
func (d *Dense) Reset(cells []core.Cell) {
	fresh := core.NewPaddedGrid(d.n)
	for _, c := range cells {
		fresh.Set(c, true)
	}
	d.cur = fresh
}

// Render describes one rectangle per live cell.
func (d *Dense) Render(v core.View) []core.Fill {
	v.N = d.n
	var fills []core.Fill
	for _, c := range d.Cells() {
		fills = append(fills, core.Fill{Rect: v.CellRect(c), Color: core.LiveColor})
	}
	return fills
}
