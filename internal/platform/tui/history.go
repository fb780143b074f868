package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// maxHistoryRows limits how many session records the history view loads.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/longest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historySort selects which ordering the table shows.
type historySort int

const (
	sortRecent historySort = iota
	sortLongest
)

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	store    *storage.Store
	entries  []storage.SessionEntry
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	sort     historySort
	width    int
	height   int
	quitting bool
}

var historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the session table with fixed columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Pattern", Width: 10},
		{Title: "Gens", Width: 8},
		{Title: "Peak", Width: 8},
		{Title: "Final", Width: 8},
		{Title: "Time", Width: 8},
	}

	height := m.height - 6 // Title, help, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("10"))
	t.SetStyles(styles)

	return t
}

// load queries the store and fills the table rows.
func (m *HistoryModel) load() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	var err error
	if m.sort == sortLongest {
		m.entries, err = m.store.LongestRuns(maxHistoryRows)
	} else {
		m.entries, err = m.store.RecentSessions(maxHistoryRows)
	}
	if err != nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		pattern := e.Pattern
		if pattern == "" {
			pattern = "-"
		}
		rows = append(rows, table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			pattern,
			fmt.Sprintf("%d", e.Generations),
			fmt.Sprintf("%d", e.PeakPopulation),
			fmt.Sprintf("%d", e.FinalPopulation),
			(time.Duration(e.DurationSecs) * time.Second).String(),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.sort == sortRecent {
				m.sort = sortLongest
			} else {
				m.sort = sortRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Session History - Recent"
	if m.sort == sortLongest {
		title = "Session History - Longest Runs"
	}

	body := historyTitleStyle.Render(title) + "\n\n"
	if len(m.entries) == 0 {
		body += "No sessions recorded yet.\n\nPlay 'life play' to record the first one."
	} else {
		body += m.table.View()
	}
	body += "\n" + m.help.View(m.keys)

	return body
}

// RunHistory starts the interactive session-history view.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
