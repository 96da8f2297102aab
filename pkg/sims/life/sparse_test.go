package life

import (
	"slices"
	"testing"

	"mad-life/pkg/core"
)

// expectFrontier checks the frontier against a brute-force scan of the board.
func expectFrontier(t *testing.T, name string, s *Sparse) {
	t.Helper()
	var want []core.Cell
	for y := 1; y <= s.Size(); y++ {
		for x := 1; x <= s.Size(); x++ {
			c := core.Cell{X: x, Y: y}
			if s.Alive(c) {
				continue
			}
			for _, nb := range c.Neighbors() {
				if s.Alive(nb) {
					want = append(want, c)
					break
				}
			}
		}
	}
	if got := s.Frontier(); !slices.Equal(got, want) {
		t.Fatalf("%s: frontier %v, expected %v", name, got, want)
	}
}

func TestSparseFrontierTracksDeadNeighbors(t *testing.T) {
	s := NewSparse(10)
	s.Reset(Random(10, 11, 0.3))
	expectFrontier(t, "reset", s)

	for i := 0; i < 5; i++ {
		s.Step()
		expectFrontier(t, "step", s)
	}

	for _, c := range []core.Cell{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 5}, {X: 1, Y: 10}} {
		s.Toggle(c)
		expectFrontier(t, "toggle", s)
	}

	s.Shift(core.Right, 2)
	expectFrontier(t, "shift", s)
}

func TestSparseFrontierExcludesBorder(t *testing.T) {
	s := NewSparse(3)
	s.Reset([]core.Cell{{X: 1, Y: 1}})
	want := []core.Cell{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if got := s.Frontier(); !slices.Equal(got, want) {
		t.Fatalf("frontier %v, expected %v", got, want)
	}
}

func TestSparseResetDropsOutOfRange(t *testing.T) {
	s := NewSparse(4)
	s.Reset([]core.Cell{{X: 0, Y: 1}, {X: 2, Y: 2}, {X: 5, Y: 5}, {X: -1, Y: -1}})
	expectCells(t, "reset", s, core.Cell{X: 2, Y: 2})
}

func TestDenseRenderGeometry(t *testing.T) {
	d := NewDense(4)
	d.Reset([]core.Cell{{X: 2, Y: 3}})
	fills := d.Render(core.NewView(4, 8))
	want := []core.Fill{{
		Rect:  core.Rect{MinX: 2, MinY: 4, MaxX: 4, MaxY: 6},
		Color: core.LiveColor,
	}}
	if !slices.Equal(fills, want) {
		t.Fatalf("render %v, expected %v", fills, want)
	}
}

func TestSparseRenderMatchesDenseAtFullResolution(t *testing.T) {
	cells := Random(16, 3, 0.4)
	d := NewDense(16)
	s := NewSparse(16)
	d.Reset(cells)
	s.Reset(cells)
	v := core.NewView(16, 64)
	if !slices.Equal(d.Render(v), s.Render(v)) {
		t.Fatal("sparse and dense renders differ when every cell has its own pixels")
	}
}

func TestSparseRenderBucketsDensity(t *testing.T) {
	s := NewSparse(8)
	s.Reset([]core.Cell{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 8, Y: 8},
	})
	fills := s.Render(core.NewView(8, 4))
	if len(fills) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(fills))
	}

	full, quarter := fills[0], fills[1]
	if full.Rect != (core.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}) {
		t.Fatalf("unexpected first bucket rect %+v", full.Rect)
	}
	if quarter.Rect != (core.Rect{MinX: 3, MinY: 3, MaxX: 4, MaxY: 4}) {
		t.Fatalf("unexpected last bucket rect %+v", quarter.Rect)
	}
	if full.Color.R != 255 {
		t.Fatalf("fully populated bucket should saturate, got %d", full.Color.R)
	}
	if quarter.Color.R != core.GammaU8(0.25) || quarter.Color.R >= full.Color.R {
		t.Fatalf("quarter bucket intensity %d, expected %d", quarter.Color.R, core.GammaU8(0.25))
	}
}
