package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the default Pipes configuration.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Board: BoardConfig{
			CellWidth:  5,
			CellHeight: 3,
		},
		Theme: ThemeConfig{
			Back:      "default",
			Empty:     "dark-gray",
			Highlight: "gray",
			Cursor:    "bright-white",
			Groups: []string{
				"bright-red",
				"bright-green",
				"bright-blue",
				"bright-yellow",
				"bright-magenta",
				"bright-cyan",
				"orange",
				"white",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pipes":
		return defaultPipesYAML
	default:
		return nil
	}
}
