// Package levels provides level loading functionality for Pipes.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     [][]int // Rows[y][x], y = 0 is the bottom row
	Metadata map[string]string
	FilePath string
}

// Width returns the number of columns.
func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.Rows)
}

// Pairs returns the number of distinct groups.
func (l *Level) Pairs() int {
	return len(groupCounts(l.Rows))
}

// NewController creates the puzzle controller for this level.
func (l *Level) NewController(theme core.Theme, opts ...core.Option) (*core.Controller, error) {
	c, err := core.NewController(l.Rows, theme, opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return c, nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader reading from the root of fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, root: "."}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// LoadAll recursively scans and loads all valid level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	SortByID(levels)
	return levels, nil
}

// SortByID orders levels by ID in place.
func SortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: p,
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if err := Validate(level); err != nil {
		return Level{}, fmt.Errorf("file %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
