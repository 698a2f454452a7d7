// Package config provides YAML-based configuration for the Floodlock UI.
// Engine rules (board size, lock threshold) are invariants and deliberately
// not configurable here.
package config

// Config contains all user-tunable settings.
type Config struct {
	Theme    ThemeConfig    `yaml:"theme"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ThemeConfig defines how the board is drawn. Color values are ANSI 256
// palette codes as understood by lipgloss.
type ThemeConfig struct {
	Red    string `yaml:"red"`
	Orange string `yaml:"orange"`
	Yellow string `yaml:"yellow"`
	Green  string `yaml:"green"`
	Blue   string `yaml:"blue"`
	Purple string `yaml:"purple"`

	LockMarker string `yaml:"lock_marker"` // Drawn over locked cells
	Cursor     string `yaml:"cursor"`      // Border color of the cursor cell
}

// GameplayConfig defines optional gameplay helpers.
type GameplayConfig struct {
	HintsEnabled bool `yaml:"hints_enabled"`
	ShowPar      bool `yaml:"show_par"`
}
