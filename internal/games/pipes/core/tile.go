package core

// Connector is the pipe segment drawn from a tile toward the next tile in a path.
type Connector struct {
	Active bool
	Dir    Dir
	Color  Color
}

// Mark is the group marker drawn on playable tiles.
type Mark struct {
	Visible bool
	Color   Color
}

// Tile is a single grid cell. Playable tiles (group > 0) report pointer
// presses and releases to the handler registered with OnSelected.
type Tile struct {
	pos      Coord
	group    int
	playable bool

	selected    bool
	highlighted bool
	solved      bool

	back          Color
	originalBack  Color
	highlightBack Color
	connector     Connector
	mark          Mark

	onSelected func(*Tile)
}

// NewTile creates a tile at pos. Playable tiles take their mark color as the
// connector color; unplayable tiles have no mark.
func NewTile(pos Coord, group int, v Visuals) *Tile {
	t := &Tile{
		pos:           pos,
		group:         group,
		playable:      group > Unplayable,
		back:          v.Back,
		originalBack:  v.Back,
		highlightBack: v.Highlight,
		connector:     Connector{Color: v.Connector},
	}
	if t.playable {
		t.mark = Mark{Visible: true, Color: v.Mark}
		t.connector.Color = v.Mark
	}
	return t
}

// OnSelected registers the single selection handler. A later call replaces it.
func (t *Tile) OnSelected(fn func(*Tile)) {
	t.onSelected = fn
}

// Pos returns the tile's grid coordinate.
func (t *Tile) Pos() Coord { return t.pos }

// Group returns the connection group id; 0 means unplayable.
func (t *Tile) Group() int { return t.group }

// Playable reports whether the tile belongs to a group.
func (t *Tile) Playable() bool { return t.playable }

// Selected reports whether the pointer is held down on this tile.
func (t *Tile) Selected() bool { return t.selected }

// Highlighted reports whether the tile is part of the current drag.
func (t *Tile) Highlighted() bool { return t.highlighted }

// Solved reports whether the tile is part of a completed connection.
func (t *Tile) Solved() bool { return t.solved }

// Back returns the current back color.
func (t *Tile) Back() Color { return t.back }

// Connector returns the connector state.
func (t *Tile) Connector() Connector { return t.connector }

// ConnectionColor returns the connector color.
func (t *Tile) ConnectionColor() Color { return t.connector.Color }

// Mark returns the group mark.
func (t *Tile) Mark() Mark { return t.mark }

// PointerDown selects the tile and notifies the handler.
// Unplayable and solved tiles ignore it.
func (t *Tile) PointerDown() {
	if !t.playable || t.solved {
		return
	}
	t.selected = true
	t.emit()
}

// PointerUp deselects the tile and notifies the handler.
// Unplayable and solved tiles ignore it.
func (t *Tile) PointerUp() {
	if !t.playable || t.solved {
		return
	}
	t.selected = false
	t.emit()
}

func (t *Tile) emit() {
	if t.onSelected != nil {
		t.onSelected(t)
	}
}

// Highlight marks the tile as part of the drag and overrides its back color.
func (t *Tile) Highlight() {
	t.highlighted = true
	t.back = t.highlightBack
}

// Unhighlight restores the original back color.
func (t *Tile) Unhighlight() {
	t.highlighted = false
	t.back = t.originalBack
}

// ConnectToward activates the connector pointing in dir.
func (t *Tile) ConnectToward(dir Dir) {
	t.connector.Active = true
	t.connector.Dir = dir
}

// ResetConnection hides the connector and clears the solved flag.
func (t *Tile) ResetConnection() {
	t.connector.Active = false
	t.connector.Dir = DirNone
	t.solved = false
}

// SetConnectionColor paints the connector.
func (t *Tile) SetConnectionColor(c Color) {
	t.connector.Color = c
}

// solve marks the tile as part of a completed connection.
func (t *Tile) solve() {
	t.solved = true
	t.selected = false
}
