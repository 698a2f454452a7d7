package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/floodlock/internal/engine"
	"github.com/mkravets/floodlock/internal/storage"
)

// maxResults is how many recent results the stats screen loads.
const maxResults = 100

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the results screen.
type StatsModel struct {
	store    *storage.Store
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model backed by the given store.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadResults()
	return m
}

// createTable creates the results table.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Puzzle", Width: 14},
		{Title: "Result", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Par", Width: 5},
		{Title: "Hints", Width: 6},
		{Title: "Date", Width: 16},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults fills the table and summary from storage.
func (m *StatsModel) loadResults() {
	if m.store == nil {
		return
	}

	if stats, err := m.store.GetStats(); err == nil {
		m.stats = stats
	}

	results, err := m.store.RecentResults(maxResults)
	if err != nil {
		return
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		label := "lost"
		if r.Status == engine.StatusSolved {
			label = "solved"
		}
		rows[i] = table.Row{
			r.PuzzleID,
			label,
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Par),
			fmt.Sprintf("%d", r.HintsUsed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.loadResults()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("FLOODLOCK RESULTS"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Played: %d   Solved: %d   Lost: %d", m.stats.Played, m.stats.Solved, m.stats.Lost)
	if m.stats.BestMoves > 0 {
		summary += fmt.Sprintf("   Best: %d moves", m.stats.BestMoves)
	}
	if m.stats.Played > 0 {
		summary += fmt.Sprintf("   Avg: %.1f moves", m.stats.AvgMoves)
	}
	b.WriteString(summary)
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No results recorded yet.\nPlay a puzzle to get on the board!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunStats runs the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
