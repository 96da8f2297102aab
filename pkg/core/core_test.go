package core

import (
	"math"
	"slices"
	"testing"
)

func TestPaddedGridKeepsBorderDead(t *testing.T) {
	g := NewPaddedGrid(3)
	if g.Stride != 5 || len(g.Cells()) != 25 {
		t.Fatalf("unexpected layout stride=%d len=%d", g.Stride, len(g.Cells()))
	}
	for _, c := range []Cell{{0, 0}, {4, 2}, {2, 4}, {0, 3}, {-1, 1}} {
		if g.Set(c, true) {
			t.Fatalf("Set accepted border or outside cell %v", c)
		}
	}
	if !g.BorderDead() {
		t.Fatal("border must stay dead")
	}
	if !g.Set(Cell{3, 3}, true) || !g.Get(Cell{3, 3}) {
		t.Fatal("interior cell should be writable")
	}
	if g.Get(Cell{99, 99}) {
		t.Fatal("far outside cell should read dead")
	}
	if row := g.Row(3); !row[3] || len(row) != 5 {
		t.Fatalf("unexpected row %v", row)
	}
	g.Clear()
	if slices.Contains(g.Cells(), true) {
		t.Fatal("Clear should kill every cell")
	}
}

func TestNeighbors(t *testing.T) {
	seen := map[Cell]bool{}
	for _, nb := range (Cell{5, 5}).Neighbors() {
		if nb == (Cell{5, 5}) || seen[nb] {
			t.Fatalf("bad neighbor %v", nb)
		}
		if dx, dy := nb.X-5, nb.Y-5; dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("neighbor %v not adjacent", nb)
		}
		seen[nb] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 neighbors, got %d", len(seen))
	}
}

func TestSortCellsRowMajor(t *testing.T) {
	cells := []Cell{{3, 2}, {1, 2}, {9, 1}, {2, 3}}
	SortCells(cells)
	want := []Cell{{9, 1}, {1, 2}, {3, 2}, {2, 3}}
	if !slices.Equal(cells, want) {
		t.Fatalf("sorted %v, expected %v", cells, want)
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := map[Direction][2]int{Up: {0, -1}, Down: {0, 1}, Left: {-1, 0}, Right: {1, 0}, Direction(7): {0, 0}}
	for d, want := range cases {
		dx, dy := d.Delta()
		if dx != want[0] || dy != want[1] {
			t.Fatalf("%s delta (%d,%d), expected %v", d, dx, dy, want)
		}
	}
	if Direction(7).String() != "unknown" || Left.String() != "left" {
		t.Fatal("unexpected direction names")
	}
}

func TestViewCellAt(t *testing.T) {
	v := NewView(1024, 512)
	if cs := v.CellSize(); cs != 0.5 {
		t.Fatalf("cell size %v, expected 0.5", cs)
	}
	cases := []struct {
		px, py float32
		want   Cell
		ok     bool
	}{
		{0, 0, Cell{1, 1}, true},
		{0.49, 0.5, Cell{1, 2}, true},
		{511.9, 511.9, Cell{1024, 1024}, true},
		{512, 10, Cell{}, false},
		{10, -1, Cell{}, false},
		{float32(math.NaN()), 1, Cell{}, false},
		{float32(math.Inf(1)), 1, Cell{}, false},
	}
	for _, tc := range cases {
		got, ok := v.CellAt(tc.px, tc.py)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CellAt(%v, %v) = %v, %v; expected %v, %v", tc.px, tc.py, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := (View{}).CellAt(1, 1); ok {
		t.Fatal("zero view should not map any pixel")
	}
	if NewView(4, 0).DisplaySize != DefaultDisplaySize {
		t.Fatal("zero display size should fall back to the default")
	}
}

func TestViewCellRectRoundTrips(t *testing.T) {
	v := NewView(8, 64)
	r := v.CellRect(Cell{X: 3, Y: 2})
	if r != (Rect{MinX: 16, MinY: 8, MaxX: 24, MaxY: 16}) {
		t.Fatalf("unexpected rect %+v", r)
	}
	if c, ok := v.CellAt(r.MinX, r.MinY); !ok || c != (Cell{X: 3, Y: 2}) {
		t.Fatalf("rect corner maps back to %v", c)
	}
	if c, _ := v.CellAt(r.MaxX, r.MaxY); c != (Cell{X: 4, Y: 3}) {
		t.Fatalf("max corner belongs to the next cell, got %v", c)
	}
}

func TestGammaU8(t *testing.T) {
	if GammaU8(0) != 0 || GammaU8(-1) != 0 || GammaU8(float32(math.NaN())) != 0 {
		t.Fatal("non-positive intensities should be black")
	}
	if GammaU8(1) != 255 || GammaU8(3) != 255 {
		t.Fatal("saturated intensities should be 255")
	}
	if got := GammaU8(0.25); got != 137 {
		t.Fatalf("GammaU8(0.25) = %d, expected 137", got)
	}
	prev := uint8(0)
	for i := 1; i <= 16; i++ {
		got := GammaU8(float32(i) / 16)
		if got < prev {
			t.Fatalf("gamma curve not monotonic at %d/16", i)
		}
		prev = got
	}
}

func TestRNGChance(t *testing.T) {
	r := NewRNG(5)
	if r.Chance(0) || !r.Chance(1) || r.Chance(-2) || !r.Chance(7) {
		t.Fatal("chance extremes should saturate")
	}
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 32; i++ {
		if a.Bool() != b.Bool() {
			t.Fatal("equal seeds should produce equal streams")
		}
	}
}
