package life

import (
	"mad-life/pkg/core"
	"mad-life/pkg/pattern"
)

// Checkerboard returns the interior cells of an n×n board with x+y even.
func Checkerboard(n int) []core.Cell {
	cells := make([]core.Cell, 0, (n*n+1)/2)
	for y := 1; y <= n; y++ {
		for x := 1; x <= n; x++ {
			if (x+y)%2 == 0 {
				cells = append(cells, core.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Random returns a deterministic soup where each interior cell is live with
// the given probability.
func Random(n int, seed int64, density float64) []core.Cell {
	rng := core.NewRNG(seed)
	var cells []core.Cell
	for y := 1; y <= n; y++ {
		for x := 1; x <= n; x++ {
			if rng.Chance(density) {
				cells = append(cells, core.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Import decodes buf and replaces the contents of b with the pattern,
// anchored with its top-left corner on interior cell (1,1). Cells beyond the
// interior are dropped. On a decode error b is left unchanged.
func Import(b core.Board, f pattern.Format, buf []byte) error {
	n := b.Size()
	cells, err := pattern.Collect(pattern.Decode(f, buf, pattern.Bounds{W: n, H: n}))
	if err != nil {
		return err
	}
	for i := range cells {
		cells[i] = cells[i].Offset(1, 1)
	}
	b.Reset(cells)
	return nil
}

// ImportPlaintext loads a plaintext pattern into b.
func ImportPlaintext(b core.Board, buf []byte) error {
	return Import(b, pattern.FormatPlaintext, buf)
}

// ImportRLE loads a run-length encoded pattern into b.
func ImportRLE(b core.Board, buf []byte) error {
	return Import(b, pattern.FormatRLE, buf)
}

// Edit toggles the cell under the pixel offset (px, py) from the top-left of
// the view. Offsets that fall outside the board leave it unchanged and report
// false.
func Edit(b core.Board, v core.View, px, py float32) bool {
	v.N = b.Size()
	c, ok := v.CellAt(px, py)
	if !ok {
		return false
	}
	return b.Toggle(c)
}
