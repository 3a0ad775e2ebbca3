package core

import platformcore "github.com/vovakirdan/tui-pipes/internal/core"

// Color is a terminal color shared with the platform renderer.
type Color = platformcore.Color

// Unplayable is the group id of an empty cell.
const Unplayable = 0

// Visuals are the renderable parts a tile is built with.
type Visuals struct {
	Back      Color // Back fill when not highlighted
	Highlight Color // Back fill while the tile is part of a drag
	Mark      Color // Group mark; also the initial connector color
	Connector Color // Connector color of unplayable tiles
}

// Theme assigns visuals to tiles by group id.
type Theme struct {
	Back      Color
	Empty     Color
	Highlight Color
	Groups    []Color // Cycled by group id
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Back:      platformcore.ColorDefault,
		Empty:     platformcore.ColorDarkGray,
		Highlight: platformcore.ColorGray,
		Groups: []Color{
			platformcore.ColorBrightRed,
			platformcore.ColorBrightGreen,
			platformcore.ColorBrightBlue,
			platformcore.ColorBrightYellow,
			platformcore.ColorBrightMagenta,
			platformcore.ColorBrightCyan,
			platformcore.ColorOrange,
			platformcore.ColorWhite,
		},
	}
}

// GroupColor returns the mark color for a group id.
func (t Theme) GroupColor(group int) Color {
	if group <= Unplayable || len(t.Groups) == 0 {
		return t.Empty
	}
	return t.Groups[(group-1)%len(t.Groups)]
}

// Visuals returns the visuals for a tile of the given group.
func (t Theme) Visuals(group int) Visuals {
	return Visuals{
		Back:      t.Back,
		Highlight: t.Highlight,
		Mark:      t.GroupColor(group),
		Connector: t.Empty,
	}
}
