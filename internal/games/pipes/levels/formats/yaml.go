// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Grid rows are listed top to bottom, as they appear on screen.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Grid     [][]int           `yaml:"grid"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     [][]int // Rows[y][x], y = 0 is the bottom row
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows := make([][]int, len(yl.Grid))
	for i, row := range yl.Grid {
		rows[len(yl.Grid)-1-i] = append([]int(nil), row...)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     rows,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
