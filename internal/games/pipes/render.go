package pipes

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

var directions = []core.Dir{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Cannot load level", g.loadErr.Error())
		return
	case g.ctrl == nil:
		g.renderOverlay(dst, "No levels found", "Check the levels directory")
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	w, h := g.layout.Size()
	dst.DrawBox(platformcore.NewRect(g.layout.X-1, g.layout.Y-1, w+2, h+2), platformcore.ColorGray)

	for x := 0; x < g.ctrl.Width(); x++ {
		for y := 0; y < g.ctrl.Height(); y++ {
			g.renderTile(dst, g.ctrl.Tile(x, y))
		}
	}
	if g.cursorVisible {
		g.renderCursor(dst)
	}

	g.renderFooter(dst)
}

// renderHUD draws the title bar with level and progress.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.ctrl != nil {
		name := g.level.Name
		if name == "" {
			name = g.level.ID
		}
		hud += fmt.Sprintf(" | %s (%d/%d) | Pairs: %d/%d",
			name, g.levelIndex+1, len(g.allLevels), g.ctrl.Solved(), g.ctrl.Total())
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, platformcore.Cell{Rune: '─', Color: platformcore.ColorGray})
	}
}

// renderFooter draws the status line under the board.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := dst.Height() - 1
	switch {
	case g.complete && g.hasNext():
		dst.DrawTextCentered(y, "Puzzle complete! N: next level  R: replay", platformcore.ColorBrightGreen)
	case g.complete:
		dst.DrawTextCentered(y, "All levels complete! R: replay", platformcore.ColorBrightGreen)
	case g.flash > 0:
		msg := fmt.Sprintf("Pair %c connected", markRune(g.lastGroup))
		dst.DrawTextCentered(y, msg, g.theme.GroupColor(g.lastGroup))
	case g.level.Metadata["hint"] != "":
		dst.DrawTextCentered(y, g.level.Metadata["hint"], platformcore.ColorGray)
	}
}

// renderOverlay draws a centered two-line message.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, title, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(mid+1, subtitle, platformcore.ColorGray)
}

// renderTile fills the tile's area with its back color and draws its mark
// and pipe segments. A tile shows an arm toward the tile its connector points
// at and toward every neighbour whose connector points back at it.
func (g *Game) renderTile(dst *platformcore.Screen, t *core.Tile) {
	r := g.layout.CellRect(t.Pos())
	back := t.Back()
	dst.FillRect(r, platformcore.Cell{Rune: ' ', Back: back})

	arms := make(map[core.Dir]platformcore.Color, 2)
	if conn := t.Connector(); conn.Active {
		arms[conn.Dir] = conn.Color
	}
	for _, d := range directions {
		p := t.Pos().Step(d)
		n := g.ctrl.Tile(p.X, p.Y)
		if n == nil {
			continue
		}
		if conn := n.Connector(); conn.Active && conn.Dir == d.Opposite() {
			arms[d] = conn.Color
		}
	}

	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	for d, color := range arms {
		cell := platformcore.Cell{Color: color, Back: back}
		switch d {
		case core.DirUp:
			cell.Rune = '│'
			dst.FillRect(platformcore.NewRect(cx, r.Y, 1, cy-r.Y), cell)
		case core.DirDown:
			cell.Rune = '│'
			dst.FillRect(platformcore.NewRect(cx, cy+1, 1, r.Bottom()-cy-1), cell)
		case core.DirLeft:
			cell.Rune = '─'
			dst.FillRect(platformcore.NewRect(r.X, cy, cx-r.X, 1), cell)
		case core.DirRight:
			cell.Rune = '─'
			dst.FillRect(platformcore.NewRect(cx+1, cy, r.Right()-cx-1, 1), cell)
		}
	}

	center := platformcore.Cell{Back: back}
	switch {
	case t.Mark().Visible:
		center.Rune = markRune(t.Group())
		center.Color = t.Mark().Color
	case len(arms) > 0:
		center.Rune = junction(arms)
		center.Color = t.ConnectionColor()
	default:
		center.Rune = '·'
		center.Color = g.theme.Empty
	}
	dst.SetCell(cx, cy, center)
}

// renderCursor brackets the tile under the keyboard cursor.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	t := g.ctrl.Tile(g.cursor.X, g.cursor.Y)
	if t == nil {
		return
	}
	r := g.layout.CellRect(g.cursor)
	cy := r.Y + r.H/2
	dst.SetCell(r.X, cy, platformcore.Cell{Rune: '[', Color: g.cursorC, Back: t.Back()})
	dst.SetCell(r.Right()-1, cy, platformcore.Cell{Rune: ']', Color: g.cursorC, Back: t.Back()})
}

// markRune returns the symbol drawn for a group: 1-9, then A-Z.
func markRune(group int) rune {
	switch {
	case group >= 1 && group <= 9:
		return rune('0' + group)
	case group >= 10 && group < 36:
		return rune('A' + group - 10)
	default:
		return '#'
	}
}

// junction returns the box-drawing rune joining the given arms.
func junction(arms map[core.Dir]platformcore.Color) rune {
	has := func(d core.Dir) bool {
		_, ok := arms[d]
		return ok
	}
	up, right, down, left := has(core.DirUp), has(core.DirRight), has(core.DirDown), has(core.DirLeft)
	switch {
	case up && right:
		return '└'
	case up && left:
		return '┘'
	case down && right:
		return '┌'
	case down && left:
		return '┐'
	case left || right:
		return '─'
	default:
		return '│'
	}
}
