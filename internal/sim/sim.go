// Package sim owns the interactive simulation session: the board, the
// generation clock and the mapping from input frames to board mutations.
// It contains no terminal dependencies; the platform layer drives it one
// frame tick at a time.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Phase is the simulation clock state.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseRunning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseRunning {
		return "Running"
	}
	return "Paused"
}

// Simulation is one interactive Game of Life session.
type Simulation struct {
	cfg config.LifeConfig
	rng *rand.Rand

	board      *life.Board
	phase      Phase
	counter    int // Frame ticks toward the next generation advance
	tick       uint64
	generation uint64
	peakPop    int

	seedName  string
	seedCells life.Set

	// Board placement on screen
	screenW, screenH int
	boardX, boardY   int
	hudHeight        int
	tooSmall         bool

	// Colors resolved from config names
	cellColor core.Color
	gridColor core.Color
}

// New creates a simulation for the given session configuration.
// Reset must be called before the first Step.
func New(cfg config.LifeConfig) *Simulation {
	s := &Simulation{cfg: cfg}
	s.cellColor = resolveColor(cfg.Colors.Cells, core.ColorGreen)
	s.gridColor = resolveColor(cfg.Colors.Grid, core.ColorGray)
	return s
}

func resolveColor(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// SetSeed registers a named starting pattern applied on Reset.
func (s *Simulation) SetSeed(name string, cells life.Set) {
	s.seedName = name
	s.seedCells = cells
}

// SeedName returns the starting pattern id, or empty for a blank board.
func (s *Simulation) SeedName() string {
	return s.seedName
}

// Reset initializes or restarts the session.
func (s *Simulation) Reset(rc core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(rc.Seed))
	s.board = life.NewBoard(s.cfg.Grid.Width, s.cfg.Grid.Height)
	s.phase = PhasePaused
	s.counter = 0
	s.tick = 0
	s.generation = 0
	s.peakPop = 0
	s.hudHeight = 2

	if s.seedCells != nil {
		cells := make(life.Set, len(s.seedCells))
		for c := range s.seedCells {
			cells[c] = struct{}{}
		}
		s.board.Replace(cells)
		s.peakPop = s.board.Population()
	}

	s.layout(rc.ScreenW, rc.ScreenH)
}

// Resize updates the board placement after a terminal size change.
// Board contents are preserved.
func (s *Simulation) Resize(screenW, screenH int) {
	s.layout(screenW, screenH)
}

// layout centers the bordered board in the available screen area.
func (s *Simulation) layout(screenW, screenH int) {
	s.screenW = screenW
	s.screenH = screenH

	pixelW := s.cfg.Grid.Width * s.cfg.Grid.CellWidth
	pixelH := s.cfg.Grid.Height * s.cfg.Grid.CellHeight

	requiredW := pixelW + 2 // Border
	requiredH := pixelH + 2 + s.hudHeight
	if screenW < requiredW || screenH < requiredH {
		s.tooSmall = true
		return
	}
	s.tooSmall = false

	s.boardX = (screenW-pixelW)/2 - 1
	s.boardY = s.hudHeight
}

// Board exposes the live-cell set for rendering and tests.
func (s *Simulation) Board() *life.Board {
	return s.board
}

// Phase returns the current clock phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Generation returns the number of generations advanced this session.
func (s *Simulation) Generation() uint64 {
	return s.generation
}

// PeakPopulation returns the largest live-cell count seen this session.
func (s *Simulation) PeakPopulation() int {
	return s.peakPop
}

// State returns the observable simulation state.
func (s *Simulation) State() core.SimState {
	return core.SimState{
		Generation: s.generation,
		Population: s.board.Population(),
		Paused:     s.phase == PhasePaused,
	}
}

// Step advances the session by one frame tick. While running, the cadence
// counter moves first; reaching the update interval advances one generation.
// The frame's input is applied afterwards, matching the original loop order:
// a toggle arriving on an advancing frame lands on the new generation.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if s.phase == PhaseRunning {
		s.counter++
		if s.counter >= s.cfg.Clock.UpdateEvery {
			s.counter = 0
			s.advance()
		}
	}

	for _, p := range in.Pointer {
		if c, ok := s.cellAt(p.X, p.Y); ok {
			s.board.Toggle(c)
		}
	}

	if in.Has(core.ActionToggleRun) {
		if s.phase == PhaseRunning {
			s.phase = PhasePaused
		} else {
			s.phase = PhaseRunning
		}
	}

	if in.Has(core.ActionClear) {
		s.board.Clear()
		s.phase = PhasePaused
		s.counter = 0
	}

	if in.Has(core.ActionRandomize) {
		s.board.Replace(s.randomCells())
	}

	if in.Has(core.ActionStepOnce) && s.phase == PhasePaused {
		s.advance()
	}

	if pop := s.board.Population(); pop > s.peakPop {
		s.peakPop = pop
	}

	return core.StepResult{State: s.State()}
}

// advance replaces the board with the next generation.
func (s *Simulation) advance() {
	s.board.Replace(life.NextGeneration(s.board))
	s.generation++
	if pop := s.board.Population(); pop > s.peakPop {
		s.peakPop = pop
	}
}

// randomCells draws the randomize set: a factor in [min, max) times the
// grid width gives the number of uniform draws.
func (s *Simulation) randomCells() life.Set {
	lo := s.cfg.Seed.MinFactor
	hi := s.cfg.Seed.MaxFactor
	n := (lo + s.rng.Intn(hi-lo)) * s.cfg.Grid.Width
	return life.Random(s.rng, s.cfg.Grid.Width, s.cfg.Grid.Height, n)
}

// cellAt maps a screen position to a board coordinate. Positions on the
// border, HUD or outside the board return false.
func (s *Simulation) cellAt(x, y int) (life.Coord, bool) {
	if s.tooSmall {
		return life.Coord{}, false
	}
	col := (x - s.boardX - 1) / s.cfg.Grid.CellWidth
	row := (y - s.boardY - 1) / s.cfg.Grid.CellHeight
	if x < s.boardX+1 || y < s.boardY+1 {
		return life.Coord{}, false
	}
	c := life.Coord{Col: col, Row: row}
	if !s.board.InBounds(c) {
		return life.Coord{}, false
	}
	return c, true
}

// Render performs a full redraw of the session into the screen buffer.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()

	if s.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for the configured grid")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d",
			s.cfg.Grid.Width*s.cfg.Grid.CellWidth+2,
			s.cfg.Grid.Height*s.cfg.Grid.CellHeight+2+s.hudHeight))
		return
	}

	s.renderHUD(dst)

	cellW := s.cfg.Grid.CellWidth
	cellH := s.cfg.Grid.CellHeight
	pixelW := s.cfg.Grid.Width * cellW
	pixelH := s.cfg.Grid.Height * cellH

	dst.DrawBox(core.NewRect(s.boardX, s.boardY, pixelW+2, pixelH+2), s.gridColor)

	// Grid dots mark dead cells; one dot per cell origin.
	for row := 0; row < s.cfg.Grid.Height; row++ {
		for col := 0; col < s.cfg.Grid.Width; col++ {
			dst.SetCell(s.boardX+1+col*cellW, s.boardY+1+row*cellH, '·', s.gridColor)
		}
	}

	s.board.Each(func(c life.Coord) {
		rect := core.NewRect(s.boardX+1+c.Col*cellW, s.boardY+1+c.Row*cellH, cellW, cellH)
		dst.FillRect(rect, '█', s.cellColor)
	})
}

// renderHUD draws the status and key-help lines above the board.
func (s *Simulation) renderHUD(dst *core.Screen) {
	status := fmt.Sprintf("Game of Life [%s] gen %d | pop %d", s.phase, s.generation, s.board.Population())
	dst.DrawText(s.boardX, 0, status)
	help := "[space] run/pause  [n] step  [g] seed  [c] clear  [click] toggle  [q] quit"
	dst.DrawTextColored(s.boardX, 1, help, core.ColorGray)
}
