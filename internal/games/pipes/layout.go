package pipes

import (
	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// Layout maps between screen cells and grid coordinates. The grid's y axis
// grows upward, so grid row 0 is drawn at the bottom of the board.
type Layout struct {
	X, Y  int // Screen position of the board's top-left character
	CellW int
	CellH int
	Cols  int
	Rows  int
}

// Size returns the board's width and height in screen cells.
func (l Layout) Size() (w, h int) {
	return l.Cols * l.CellW, l.Rows * l.CellH
}

// CellAt converts a screen position to a grid coordinate. The second result
// is false when the position lies outside the board; the coordinate is then
// still returned and is out of the grid's bounds.
func (l Layout) CellAt(sx, sy int) (core.Coord, bool) {
	col := platformcore.FloorDiv(sx-l.X, l.CellW)
	row := platformcore.FloorDiv(sy-l.Y, l.CellH)
	p := core.C(col, l.Rows-1-row)
	inside := col >= 0 && col < l.Cols && row >= 0 && row < l.Rows
	return p, inside
}

// CellRect returns the screen area covered by the tile at p.
func (l Layout) CellRect(p core.Coord) platformcore.Rect {
	row := l.Rows - 1 - p.Y
	return platformcore.NewRect(l.X+p.X*l.CellW, l.Y+row*l.CellH, l.CellW, l.CellH)
}

// fitLayout centres a cols x rows board inside area, shrinking cells from the
// preferred size when needed. Returns false if even the smallest cells
// (3x1) do not fit.
func fitLayout(area platformcore.Rect, cols, rows, prefW, prefH int) (Layout, bool) {
	cellW := platformcore.Min(prefW, area.W/cols)
	cellH := platformcore.Min(prefH, area.H/rows)
	if cellW < 3 || cellH < 1 {
		return Layout{}, false
	}

	l := Layout{CellW: cellW, CellH: cellH, Cols: cols, Rows: rows}
	w, h := l.Size()
	l.X = area.X + (area.W-w)/2
	l.Y = area.Y + (area.H-h)/2
	return l, true
}
