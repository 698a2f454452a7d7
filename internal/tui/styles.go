package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/floodlock/internal/config"
	"github.com/mkravets/floodlock/internal/engine"
)

// cellWidth is how many terminal columns one board cell occupies.
const cellWidth = 2

// Theme holds the resolved lipgloss styles for rendering a session.
type Theme struct {
	// Cells maps a palette color to the style of a filled board cell.
	Cells map[engine.Color]lipgloss.Style
	// Swatches maps a palette color to the style of its palette-bar label.
	Swatches map[engine.Color]lipgloss.Style

	LockMarker string

	Cursor lipgloss.Style
	Title  lipgloss.Style
	Status lipgloss.Style
	Win    lipgloss.Style
	Loss   lipgloss.Style
	Notice lipgloss.Style
	Help   lipgloss.Style
}

// NewTheme builds a theme from the configured ANSI color values.
func NewTheme(cfg config.ThemeConfig) Theme {
	values := map[engine.Color]string{
		engine.ColorRed:    cfg.Red,
		engine.ColorOrange: cfg.Orange,
		engine.ColorYellow: cfg.Yellow,
		engine.ColorGreen:  cfg.Green,
		engine.ColorBlue:   cfg.Blue,
		engine.ColorPurple: cfg.Purple,
	}

	cells := make(map[engine.Color]lipgloss.Style, len(values))
	swatches := make(map[engine.Color]lipgloss.Style, len(values))
	for color, v := range values {
		cells[color] = lipgloss.NewStyle().Background(lipgloss.Color(v))
		swatches[color] = lipgloss.NewStyle().Foreground(lipgloss.Color(v)).Bold(true)
	}

	marker := cfg.LockMarker
	if marker == "" {
		marker = "#"
	}

	return Theme{
		Cells:      cells,
		Swatches:   swatches,
		LockMarker: marker,
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Cursor)).Bold(true),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Win:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Loss:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// cell renders one board cell: colored block, lock marker on locked cells,
// cursor brackets around the cell under the cursor.
func (t Theme) cell(color engine.Color, locked, cursor bool) string {
	style, ok := t.Cells[color]
	if !ok {
		style = lipgloss.NewStyle()
	}

	content := "  "
	if locked {
		content = t.LockMarker + t.LockMarker
	}
	block := style.Render(content)

	if cursor {
		return t.Cursor.Render("[") + block + t.Cursor.Render("]")
	}
	return " " + block + " "
}
