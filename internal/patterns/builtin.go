package patterns

import "github.com/vovakirdan/tui-life/internal/life"

// cells parses a picture into coordinates: '#' marks a live cell.
func cells(rows ...string) []life.Coord {
	var out []life.Coord
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				out = append(out, life.Coord{Col: x, Row: y})
			}
		}
	}
	return out
}

func init() {
	Register(Pattern{
		ID:   "block",
		Name: "Block (still life)",
		Cells: cells(
			"##",
			"##",
		),
	})
	Register(Pattern{
		ID:   "blinker",
		Name: "Blinker (period 2)",
		Cells: cells(
			"###",
		),
	})
	Register(Pattern{
		ID:   "toad",
		Name: "Toad (period 2)",
		Cells: cells(
			".###",
			"###.",
		),
	})
	Register(Pattern{
		ID:   "beacon",
		Name: "Beacon (period 2)",
		Cells: cells(
			"##..",
			"##..",
			"..##",
			"..##",
		),
	})
	Register(Pattern{
		ID:   "glider",
		Name: "Glider (spaceship)",
		Cells: cells(
			".#.",
			"..#",
			"###",
		),
	})
	Register(Pattern{
		ID:   "pulsar",
		Name: "Pulsar (period 3)",
		Cells: cells(
			"..###...###..",
			".............",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			"..###...###..",
			".............",
			"..###...###..",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			".............",
			"..###...###..",
		),
	})
}
