package life

// NextGeneration computes the next live-cell set from the board's current
// one. Pure: the board is not modified.
//
// Two passes over the sparse set:
//  1. every live cell with exactly 2 or 3 live neighbors survives;
//  2. every neighbor of a live cell (the candidate set) with exactly 3
//     live neighbors is born, whether or not it was already live.
//
// The result replaces the prior generation wholesale; cells in neither pass
// are dead. The empty set is a fixed point.
func NextGeneration(b *Board) Set {
	next := make(Set, len(b.cells))
	candidates := make(Set, len(b.cells)*4)

	for cell := range b.cells {
		live := 0
		for _, n := range b.Neighbors(cell) {
			candidates[n] = struct{}{}
			if b.Alive(n) {
				live++
			}
		}
		if live == 2 || live == 3 {
			next[cell] = struct{}{}
		}
	}

	for cell := range candidates {
		live := 0
		for _, n := range b.Neighbors(cell) {
			if b.Alive(n) {
				live++
			}
		}
		if live == 3 {
			next[cell] = struct{}{}
		}
	}

	return next
}
