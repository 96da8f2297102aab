package core

import "sort"

// Cell addresses a single grid position. X is the column and Y the row.
type Cell struct {
	X int
	Y int
}

// Neighbors returns the eight Moore neighbors of c. Coordinates are not
// range checked.
func (c Cell) Neighbors() [8]Cell {
	return [8]Cell{
		{c.X - 1, c.Y - 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// Offset returns c translated by (dx, dy).
func (c Cell) Offset(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// Interior reports whether c lies inside the playable n×n region [1,n]×[1,n].
func Interior(c Cell, n int) bool {
	return c.X >= 1 && c.Y >= 1 && c.X <= n && c.Y <= n
}

// SortCells orders cells row-major (by Y, then X) in place.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}

// Direction enumerates the four axis-aligned shift directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the per-cell translation for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Board is the contract shared by every Life representation. All boards are
// N×N interiors surrounded by a permanently dead border and never wrap.
//
// A Board is not safe for concurrent use. Callers must finish one operation
// before issuing the next read or mutation.
type Board interface {
	Name() string
	Size() int
	Step()
	Shift(dir Direction, distance int)
	Toggle(c Cell) bool
	Alive(c Cell) bool
	Cells() []Cell
	Population() int
	Reset(cells []Cell)
	Render(v View) []Fill
}

// Factory constructs a Board using an optional configuration map.
type Factory func(cfg map[string]string) Board

var boards = map[string]Factory{}

// Register adds a board factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	boards[name] = f
}

// Boards exposes the registry of available board factories.
func Boards() map[string]Factory {
	return boards
}

// BoardNames returns the registered factory names in sorted order.
func BoardNames() []string {
	names := make([]string, 0, len(boards))
	for name := range boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
