package pipes

import "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Level      string
	LevelIndex int
	Solved     int
	Total      int
	Complete   bool
	Drawing    bool
	Path       []core.Coord
	Cursor     core.Coord
	TooSmall   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Level:      g.level.ID,
		LevelIndex: g.levelIndex,
		Complete:   g.complete,
		Cursor:     g.cursor,
		TooSmall:   g.tooSmall,
	}
	if g.ctrl != nil {
		s.Solved = g.ctrl.Solved()
		s.Total = g.ctrl.Total()
		s.Drawing = g.ctrl.Drawing()
		for _, t := range g.ctrl.Path() {
			s.Path = append(s.Path, t.Pos())
		}
	}
	return s
}
