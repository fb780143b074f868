package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Model is the Bubble Tea model running one simulation session.
type Model struct {
	sim        *sim.Simulation
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	simState   core.SimState
	startedAt  time.Time
	quitting   bool
	saved      bool // Whether the session record has been written
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s *sim.Simulation, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s.Reset(cfg)

	return Model{
		sim:        s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		simState:   s.State(),
		startedAt:  time.Now(),
	}
}

// Init starts the frame tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse records pointer presses for the next frame tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.AddPointer(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
// The board contents survive a resize; only the placement changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.sim.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.sim.Step(m.inputFrame)
	m.simState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveSession writes the session record, once, if anything happened.
func (m *Model) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	if m.sim.Generation() == 0 && m.sim.PeakPopulation() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(storage.SessionEntry{
		Pattern:         m.sim.SeedName(),
		Generations:     int(m.sim.Generation()),
		PeakPopulation:  m.sim.PeakPopulation(),
		FinalPopulation: m.sim.Board().Population(),
		DurationSecs:    int(time.Since(m.startedAt).Seconds()),
	})
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one simulation session.
func Run(s *sim.Simulation, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(s, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cell toggling by mouse
	)

	_, err := p.Run()
	return err
}
