// Package life implements the Game of Life board and transition rule.
// The board is a sparse set of live cells: a coordinate that is absent is
// dead. This keeps generation updates proportional to the live population
// rather than the grid area.
package life

import (
	"math/rand"
	"sort"
)

// Coord identifies a board cell by column and row.
type Coord struct {
	Col, Row int
}

// Set is a set of live cell coordinates.
type Set map[Coord]struct{}

// Board is a bounded grid holding the live-cell set.
// All mutation happens through Toggle, Clear and Replace.
type Board struct {
	width  int
	height int
	cells  Set
}

// NewBoard creates an empty board with the given dimensions in cells.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make(Set),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < b.width && c.Row >= 0 && c.Row < b.height
}

// Alive returns true if the cell at c is live.
func (b *Board) Alive(c Coord) bool {
	_, ok := b.cells[c]
	return ok
}

// Toggle flips the cell at c: live becomes dead, dead becomes live.
// Applying Toggle twice restores the original state.
func (b *Board) Toggle(c Coord) {
	if b.Alive(c) {
		delete(b.cells, c)
	} else {
		b.cells[c] = struct{}{}
	}
}

// Clear removes every live cell.
func (b *Board) Clear() {
	b.cells = make(Set)
}

// Replace substitutes the live-cell set wholesale.
// Used by randomize and by each generation advance.
func (b *Board) Replace(cells Set) {
	if cells == nil {
		cells = make(Set)
	}
	b.cells = cells
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	return len(b.cells)
}

// Each calls fn for every live cell, in no particular order.
func (b *Board) Each(fn func(Coord)) {
	for c := range b.cells {
		fn(c)
	}
}

// SortedCells returns the live cells ordered by row, then column.
// Used for deterministic snapshots.
func (b *Board) SortedCells() []Coord {
	out := make([]Coord, 0, len(b.cells))
	for c := range b.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Neighbors returns the on-board coordinates adjacent to c, in offset order
// (dx, dy over {-1, 0, 1}, skipping the cell itself). Neighbors falling
// outside [0, width) x [0, height) are excluded, so cells on an edge have
// fewer than eight.
func (b *Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		col := c.Col + dx
		if col < 0 || col >= b.width {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			row := c.Row + dy
			if row < 0 || row >= b.height {
				continue
			}
			out = append(out, Coord{Col: col, Row: row})
		}
	}
	return out
}

// Random returns a set built from n independent uniform draws over the
// board, column from [0, width) and row from [0, height). Duplicate draws
// collapse, so the result holds at most n cells.
func Random(rng *rand.Rand, width, height, n int) Set {
	cells := make(Set, n)
	for i := 0; i < n; i++ {
		cells[Coord{Col: rng.Intn(width), Row: rng.Intn(height)}] = struct{}{}
	}
	return cells
}
