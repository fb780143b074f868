// Package patterns provides a registry of named seed patterns for the
// board. Built-in patterns register themselves in init(), allowing the CLI
// to list and place them without hardcoded dependencies.
package patterns

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Pattern is a named arrangement of live cells, anchored at its own
// top-left bounding corner.
type Pattern struct {
	ID    string
	Name  string
	Cells []life.Coord
}

// Width returns the pattern's bounding width in cells.
func (p Pattern) Width() int {
	w := 0
	for _, c := range p.Cells {
		if c.Col+1 > w {
			w = c.Col + 1
		}
	}
	return w
}

// Height returns the pattern's bounding height in cells.
func (p Pattern) Height() int {
	h := 0
	for _, c := range p.Cells {
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}
	return h
}

// Centered returns the pattern's cells offset to the center of a
// width x height board. Cells that would not fit are dropped, so a pattern
// larger than the board yields its board-sized middle portion.
func (p Pattern) Centered(width, height int) life.Set {
	offsetX := (width - p.Width()) / 2
	offsetY := (height - p.Height()) / 2

	cells := make(life.Set, len(p.Cells))
	for _, c := range p.Cells {
		placed := life.Coord{Col: c.Col + offsetX, Row: c.Row + offsetY}
		if placed.Col < 0 || placed.Col >= width || placed.Row < 0 || placed.Row >= height {
			continue
		}
		cells[placed] = struct{}{}
	}
	return cells
}

var (
	registered = make(map[string]Pattern)
	mu         sync.RWMutex
)

// Register adds a pattern to the registry.
// Panics if a pattern with the same ID is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[p.ID]; exists {
		panic(fmt.Sprintf("patterns: pattern %q already registered", p.ID))
	}
	registered[p.ID] = p
}

// Get returns a pattern by its ID.
func Get(id string) (Pattern, bool) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := registered[id]
	return p, ok
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	_, ok := Get(id)
	return ok
}

// List returns all registered patterns, sorted by ID.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(registered))
	for _, p := range registered {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
