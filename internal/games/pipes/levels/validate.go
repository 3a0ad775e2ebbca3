package levels

import (
	"errors"
	"fmt"
	"sort"
)

// Validation errors.
var (
	ErrLevelNotFound = errors.New("level not found")
	ErrEmptyGrid     = errors.New("grid is empty")
	ErrRaggedGrid    = errors.New("grid rows have different lengths")
	ErrNegativeGroup = errors.New("negative group id")
	ErrNoPairs       = errors.New("level has no pairs")
	ErrUnpairedGroup = errors.New("group must have exactly two endpoints")
)

// Validate checks that a level is playable: a non-empty rectangular grid where
// every group id appears exactly twice.
func Validate(l Level) error {
	if len(l.Rows) == 0 || len(l.Rows[0]) == 0 {
		return ErrEmptyGrid
	}

	width := len(l.Rows[0])
	for y, row := range l.Rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		for x, g := range row {
			if g < 0 {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeGroup, g, x, y)
			}
		}
	}

	counts := groupCounts(l.Rows)
	if len(counts) == 0 {
		return ErrNoPairs
	}

	groups := make([]int, 0, len(counts))
	for g := range counts {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	for _, g := range groups {
		if counts[g] != 2 {
			return fmt.Errorf("%w: group %d has %d", ErrUnpairedGroup, g, counts[g])
		}
	}

	return nil
}

// groupCounts tallies cells per positive group id.
func groupCounts(rows [][]int) map[int]int {
	counts := make(map[int]int)
	for _, row := range rows {
		for _, g := range row {
			if g > 0 {
				counts[g]++
			}
		}
	}
	return counts
}
