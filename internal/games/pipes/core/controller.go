package core

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
)

// Construction errors. A level that triggers one of these is malformed.
var (
	ErrEmptyLevel    = errors.New("pipes: level has no cells")
	ErrRaggedRows    = errors.New("pipes: rows have different lengths")
	ErrNegativeGroup = errors.New("pipes: negative group id")
)

// Controller owns the tile grid and the drag in progress. It validates each
// proposed extension of the path, commits a connection when the path reaches
// the second tile of the anchor's group, and tracks which groups remain.
//
// All methods must be called from a single goroutine; tile selection events
// are handled synchronously inside Tile.PointerDown/PointerUp.
type Controller struct {
	grid   [][]*Tile // [x][y]
	width  int
	height int

	path    []*Tile // path[0] is the anchor
	anchor  *Tile
	drawing bool

	remaining map[int]int // group id -> unsolved tiles
	total     int
	complete  bool

	onSolved   func(group int)
	onComplete func()
	logger     *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController builds the grid from rows of group ids, where rows[y][x] is
// the tile at (x, y). Every row must have the same length.
func NewController(rows [][]int, theme Theme, opts ...Option) (*Controller, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLevel
	}

	c := &Controller{
		width:     len(rows[0]),
		height:    len(rows),
		remaining: make(map[int]int),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.grid = make([][]*Tile, c.width)
	for x := range c.grid {
		c.grid[x] = make([]*Tile, c.height)
	}

	for y, row := range rows {
		if len(row) != c.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), c.width)
		}
		for x, group := range row {
			if group < Unplayable {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeGroup, group, x, y)
			}
			tile := NewTile(C(x, y), group, theme.Visuals(group))
			tile.OnSelected(c.onTileSelected)
			if tile.Playable() {
				c.remaining[group]++
			}
			c.grid[x][y] = tile
		}
	}
	c.total = len(c.remaining)

	c.logger.Debug("grid ready", "width", c.width, "height", c.height, "groups", c.total)
	c.logger.Debug("grid layout\n" + c.String())
	return c, nil
}

// OnSolved registers a handler called each time a group is connected.
func (c *Controller) OnSolved(fn func(group int)) {
	c.onSolved = fn
}

// OnComplete registers the handler called once, when the last group is solved.
func (c *Controller) OnComplete(fn func()) {
	c.onComplete = fn
}

// Width returns the number of columns.
func (c *Controller) Width() int { return c.width }

// Height returns the number of rows.
func (c *Controller) Height() int { return c.height }

// InBounds reports whether p addresses a tile.
func (c *Controller) InBounds(p Coord) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (c *Controller) Tile(x, y int) *Tile {
	if !c.InBounds(C(x, y)) {
		return nil
	}
	return c.grid[x][y]
}

// Drawing reports whether a drag is in progress.
func (c *Controller) Drawing() bool { return c.drawing }

// Anchor returns the tile the current drag started on, or nil.
func (c *Controller) Anchor() *Tile { return c.anchor }

// Path returns a copy of the tiles connected by the current drag.
func (c *Controller) Path() []*Tile {
	return append([]*Tile(nil), c.path...)
}

// Remaining returns a copy of the unsolved tile count per group.
func (c *Controller) Remaining() map[int]int {
	out := make(map[int]int, len(c.remaining))
	for g, n := range c.remaining {
		out[g] = n
	}
	return out
}

// Total returns the number of groups on the board.
func (c *Controller) Total() int { return c.total }

// Solved returns the number of groups connected so far.
func (c *Controller) Solved() int { return c.total - len(c.remaining) }

// Complete reports whether every group has been solved.
func (c *Controller) Complete() bool { return c.complete }

// onTileSelected handles press and release events reported by tiles.
func (c *Controller) onTileSelected(tile *Tile) {
	c.logger.Debug("tile selected", "pos", tile.Pos(), "group", tile.Group(), "pressed", tile.Selected())

	if tile.Selected() {
		if c.drawing {
			c.resetPath()
			if c.anchor != tile {
				c.anchor.selected = false
			}
		}
		c.anchor = tile
		c.path = []*Tile{tile}
		c.drawing = true
		tile.Highlight()
		return
	}

	defer c.endDrag()
	if !c.drawing {
		return
	}

	if tile == c.anchor && len(c.path) == 1 {
		tile.Unhighlight()
		return
	}
	// Released anywhere else before the path closed: the attempt failed.
	c.logger.Debug("released before closing", "group", tile.Group(), "anchor", c.anchor.Group())
	c.resetPath()
}

// Cancel abandons the drag in progress, clearing every tile it touched.
// Used when the pointer is released where no tile reports it.
func (c *Controller) Cancel() {
	if !c.drawing {
		return
	}
	c.resetPath()
	c.endDrag()
}

// Update extends the drag toward the tile under the pointer. Called once per
// tick; any move that is not a legal extension is ignored.
func (c *Controller) Update(pointer Coord) {
	if !c.drawing || !c.InBounds(pointer) {
		return
	}

	hover := c.grid[pointer.X][pointer.Y]
	anchor := c.path[0]
	otherGroup := hover.Group() > Unplayable && hover.Group() != anchor.Group()
	if hover.Highlighted() || hover.Solved() || otherGroup {
		return
	}

	tail := c.path[len(c.path)-1]
	from := tail.Pos()
	if pointer == from {
		return
	}

	dx := platformcore.Abs(from.X - pointer.X)
	dy := platformcore.Abs(from.Y - pointer.Y)
	if dx > 1 || dy > 1 || (dx > 0 && dy > 0) {
		return
	}

	hover.Highlight()
	hover.SetConnectionColor(tail.ConnectionColor())
	tail.ConnectToward(from.DirTo(pointer))
	c.path = append(c.path, hover)
	c.logger.Debug("path extended", "from", from, "to", pointer, "length", len(c.path))

	if hover.Group() > Unplayable && hover.Group() == anchor.Group() && hover != anchor {
		c.commit(anchor.Group())
	}
}

// commit marks the path solved and retires its group.
func (c *Controller) commit(group int) {
	for _, t := range c.path {
		t.solve()
	}
	c.endDrag()
	delete(c.remaining, group)
	c.logger.Debug("group solved", "group", group, "left", len(c.remaining))

	if c.onSolved != nil {
		c.onSolved(group)
	}
	if len(c.remaining) == 0 && !c.complete {
		c.complete = true
		c.logger.Info("puzzle complete")
		if c.onComplete != nil {
			c.onComplete()
		}
	}
}

// resetPath clears connection and highlight on every tile of the path.
func (c *Controller) resetPath() {
	c.logger.Debug("path reset", "length", len(c.path))
	for _, t := range c.path {
		t.ResetConnection()
		t.Unhighlight()
	}
}

func (c *Controller) endDrag() {
	if c.anchor != nil {
		c.anchor.selected = false
	}
	c.drawing = false
	c.path = nil
	c.anchor = nil
}

// String renders the group ids row by row, top row first.
func (c *Controller) String() string {
	var b strings.Builder
	for y := c.height - 1; y >= 0; y-- {
		b.WriteByte('{')
		for x := 0; x < c.width; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(c.grid[x][y].Group()))
		}
		b.WriteString("}\n")
	}
	return b.String()
}
