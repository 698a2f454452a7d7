// Package tui provides the Bubble Tea terminal front end for Floodlock,
// including SSH server support via Wish.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/floodlock/internal/config"
	"github.com/mkravets/floodlock/internal/engine"
	"github.com/mkravets/floodlock/internal/puzzle"
	"github.com/mkravets/floodlock/internal/storage"
)

// PlayModel is the Bubble Tea model for playing one puzzle.
type PlayModel struct {
	def     puzzle.Definition
	session *engine.Session
	cfg     config.Config
	theme   Theme
	store   *storage.Store

	keys KeyMap
	help help.Model

	cursor    engine.Coord
	hint      *engine.Hint
	hintsUsed int
	notice    string

	width  int
	height int

	saved    bool
	quitting bool
}

// NewPlayModel creates a play model for the given puzzle.
// store may be nil; results are then simply not recorded.
func NewPlayModel(def puzzle.Definition, cfg config.Config, store *storage.Store, seed int64) PlayModel {
	return PlayModel{
		def:     def,
		session: def.NewSession(seed),
		cfg:     cfg,
		theme:   NewTheme(cfg.Theme),
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor.Row < engine.Size-1 {
			m.cursor.Row++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor.Col < engine.Size-1 {
			m.cursor.Col++
		}

	case key.Matches(msg, m.keys.Color):
		m.applyColorKey(msg.String())

	case key.Matches(msg, m.keys.Hint):
		m.requestHint()

	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.hint = nil
		m.hintsUsed = 0
		m.notice = ""
		m.saved = false
	}
	return m, nil
}

// applyColorKey translates a digit key into a move at the cursor.
func (m *PlayModel) applyColorKey(keyStr string) {
	idx := int(keyStr[0] - '1')
	if idx < 0 || idx >= engine.NumColors {
		return
	}

	_, err := m.session.Move(m.cursor, engine.Color(idx))
	if err != nil {
		m.notice = rejectNotice(err)
		return
	}

	m.hint = nil
	m.notice = ""
	m.saveIfFinished()
}

// requestHint asks the session for a suggested move.
func (m *PlayModel) requestHint() {
	if !m.cfg.Gameplay.HintsEnabled {
		m.notice = "hints are disabled"
		return
	}

	hint, ok := m.session.Hint()
	if !ok {
		m.hint = nil
		m.notice = "no hint available"
		return
	}

	m.hint = &hint
	m.hintsUsed++
	m.cursor = hint.Cell
	m.notice = fmt.Sprintf("hint: make (%d,%d) %s", hint.Cell.Row, hint.Cell.Col, hint.Color)
}

// saveIfFinished records the result once the session reaches a terminal state.
func (m *PlayModel) saveIfFinished() {
	if m.saved || m.session.Status() == engine.StatusInProgress {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveResult(storage.Result{
			PuzzleID:  m.def.ID,
			Moves:     m.session.Moves(),
			Par:       m.def.Par(),
			Status:    m.session.Status(),
			HintsUsed: m.hintsUsed,
		})
	}
	m.saved = true
}

// rejectNotice maps a move rejection to a short message.
func rejectNotice(err error) string {
	switch {
	case errors.Is(err, engine.ErrLockedCell):
		return "that cell is locked"
	case errors.Is(err, engine.ErrNoOpMove):
		return "cell already has that color"
	case errors.Is(err, engine.ErrGameOver):
		return "game is over - press r to restart"
	case errors.Is(err, engine.ErrOutOfBounds):
		return "out of bounds"
	default:
		return err.Error()
	}
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "FLOODLOCK"
	if m.def.Name != "" {
		title = fmt.Sprintf("FLOODLOCK - %s", m.def.Name)
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")

	moves := fmt.Sprintf("Moves: %d", m.session.Moves())
	if m.cfg.Gameplay.ShowPar && m.def.Par() > 0 {
		moves = fmt.Sprintf("Moves: %d / Par: %d", m.session.Moves(), m.def.Par())
	}
	target := m.theme.Swatches[m.session.Target()].Render(m.session.Target().String())
	b.WriteString(m.theme.Status.Render(moves) + "   Target: " + target)
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderPalette())
	b.WriteString("\n\n")

	switch m.session.Status() {
	case engine.StatusSolved:
		b.WriteString(m.theme.Win.Render(fmt.Sprintf("Solved in %d moves!", m.session.Moves())))
		b.WriteString("\n")
	case engine.StatusLost:
		b.WriteString(m.theme.Loss.Render("Locked out - the board can no longer reach the target color."))
		b.WriteString("\n")
	default:
		if m.notice != "" {
			b.WriteString(m.theme.Notice.Render(m.notice))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderGrid draws the board with lock markers and the cursor.
func (m PlayModel) renderGrid() string {
	grid := m.session.Grid()
	locked := m.session.Locked()

	var b strings.Builder
	for row := 0; row < engine.Size; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < engine.Size; col++ {
			at := engine.At(row, col)
			isCursor := at == m.cursor && m.session.Status() == engine.StatusInProgress
			b.WriteString(m.theme.cell(grid.Get(at), locked.Has(at), isCursor))
		}
	}
	return b.String()
}

// renderPalette draws the color key legend (1-6).
func (m PlayModel) renderPalette() string {
	parts := make([]string, 0, engine.NumColors)
	for i, color := range engine.AllColors() {
		label := fmt.Sprintf("%d:%s", i+1, color)
		if m.hint != nil && m.hint.Color == color {
			label += "*"
		}
		parts = append(parts, m.theme.Swatches[color].Render(label))
	}
	return strings.Join(parts, "  ")
}

// Finished reports whether the session reached a terminal state.
func (m PlayModel) Finished() bool {
	return m.session.Status() != engine.StatusInProgress
}

// RunPlay runs the play screen until the user quits.
func RunPlay(def puzzle.Definition, cfg config.Config, store *storage.Store, seed int64) error {
	model := NewPlayModel(def, cfg, store, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
