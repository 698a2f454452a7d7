package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Red:        "196",
			Orange:     "208",
			Yellow:     "220",
			Green:      "40",
			Blue:       "33",
			Purple:     "129",
			LockMarker: "#",
			Cursor:     "15",
		},
		Gameplay: GameplayConfig{
			HintsEnabled: true,
			ShowPar:      true,
		},
	}
}
