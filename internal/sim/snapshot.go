package sim

import "github.com/vovakirdan/tui-life/internal/life"

// Snapshot is a deterministic export of the session state, used by tests
// to compare runs without poking at internals.
type Snapshot struct {
	Tick       uint64
	Generation uint64
	Phase      Phase
	Counter    int
	Population int
	Cells      []life.Coord // Sorted by row, then column
}

// Snapshot captures the current session state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Generation: s.generation,
		Phase:      s.phase,
		Counter:    s.counter,
		Population: s.board.Population(),
		Cells:      s.board.SortedCells(),
	}
}

// Equal reports whether two snapshots describe identical states.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Tick != b.Tick || a.Generation != b.Generation || a.Phase != b.Phase ||
		a.Counter != b.Counter || a.Population != b.Population {
		return false
	}
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}
