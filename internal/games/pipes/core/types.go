// Package core provides the drag-and-connect logic for the Pipes puzzle.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// Dir is the orientation of a tile's outgoing connector.
// Grid y grows upward, so Up means toward larger y.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) grid offset one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction. DirNone stays DirNone.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Coord is a grid position. X grows to the right, Y grows upward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// DirTo returns the direction from c to an orthogonal neighbour.
// Diagonal or distant targets are not neighbours and yield DirNone.
func (c Coord) DirTo(to Coord) Dir {
	dx, dy := to.X-c.X, to.Y-c.Y
	switch {
	case dx == 0 && dy == 1:
		return DirUp
	case dx == 1 && dy == 0:
		return DirRight
	case dx == 0 && dy == -1:
		return DirDown
	case dx == -1 && dy == 0:
		return DirLeft
	default:
		return DirNone
	}
}
