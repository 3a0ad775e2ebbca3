// Package config provides YAML-based game configuration loading for the
// puzzle platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// PipesConfig contains all configuration for the Pipes puzzle.
type PipesConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Theme  ThemeConfig  `yaml:"theme"`
	Levels LevelsConfig `yaml:"levels"`
}

// BoardConfig defines how large each tile is drawn.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per tile
	CellHeight int `yaml:"cell_height"` // Terminal rows per tile
}

// ThemeConfig names the colors used on the board.
type ThemeConfig struct {
	Back      string   `yaml:"back"`
	Empty     string   `yaml:"empty"`
	Highlight string   `yaml:"highlight"`
	Cursor    string   `yaml:"cursor"`
	Groups    []string `yaml:"groups"`
}

// LevelsConfig points at an optional directory of extra level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// Palette is a ThemeConfig with color names resolved.
type Palette struct {
	Back      core.Color
	Empty     core.Color
	Highlight core.Color
	Cursor    core.Color
	Groups    []core.Color
}

// Palette resolves the configured color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	named := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"back", t.Back, &p.Back},
		{"empty", t.Empty, &p.Empty},
		{"highlight", t.Highlight, &p.Highlight},
		{"cursor", t.Cursor, &p.Cursor},
	}
	for _, n := range named {
		c, ok := core.ParseColor(n.name)
		if !ok {
			return Palette{}, fmt.Errorf("theme.%s: unknown color %q", n.field, n.name)
		}
		*n.dst = c
	}

	if len(t.Groups) == 0 {
		return Palette{}, fmt.Errorf("theme.groups: at least one color required")
	}
	for i, name := range t.Groups {
		c, ok := core.ParseColor(name)
		if !ok {
			return Palette{}, fmt.Errorf("theme.groups[%d]: unknown color %q", i, name)
		}
		p.Groups = append(p.Groups, c)
	}
	return p, nil
}

// normalize fills missing or unusable values with defaults.
func (c *PipesConfig) normalize() {
	def := DefaultPipesConfig()
	if c.Board.CellWidth <= 0 {
		c.Board.CellWidth = def.Board.CellWidth
	}
	if c.Board.CellHeight <= 0 {
		c.Board.CellHeight = def.Board.CellHeight
	}

	fill := func(dst *string, val string) {
		if *dst == "" {
			*dst = val
		}
	}
	fill(&c.Theme.Back, def.Theme.Back)
	fill(&c.Theme.Empty, def.Theme.Empty)
	fill(&c.Theme.Highlight, def.Theme.Highlight)
	fill(&c.Theme.Cursor, def.Theme.Cursor)
	if len(c.Theme.Groups) == 0 {
		c.Theme.Groups = def.Theme.Groups
	}
}
