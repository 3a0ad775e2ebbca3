package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// newController builds a controller from rows[y][x] with the default theme.
func newController(t *testing.T, rows [][]int) *core.Controller {
	t.Helper()
	c, err := core.NewController(rows, core.DefaultTheme())
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return c
}

// drag presses at the first coordinate and feeds the rest as pointer ticks.
func drag(c *core.Controller, coords ...core.Coord) {
	start := coords[0]
	c.Tile(start.X, start.Y).PointerDown()
	for _, p := range coords[1:] {
		c.Update(p)
	}
}

func pathCoords(c *core.Controller) []core.Coord {
	var out []core.Coord
	for _, t := range c.Path() {
		out = append(out, t.Pos())
	}
	return out
}

func TestNewControllerCountsGroups(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want map[int]int
	}{
		{
			name: "single pair",
			rows: [][]int{{5, 0, 5}},
			want: map[int]int{5: 2},
		},
		{
			name: "two pairs 3x3",
			rows: [][]int{
				{1, 0, 2},
				{0, 0, 0},
				{1, 0, 2},
			},
			want: map[int]int{1: 2, 2: 2},
		},
		{
			name: "uneven counts",
			rows: [][]int{
				{3, 3, 3, 0},
				{7, 0, 0, 7},
			},
			want: map[int]int{3: 3, 7: 2},
		},
		{
			name: "all empty",
			rows: [][]int{{0, 0}, {0, 0}},
			want: map[int]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t, tc.rows)

			if c.Width() != len(tc.rows[0]) || c.Height() != len(tc.rows) {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), len(tc.rows[0]), len(tc.rows))
			}

			got := c.Remaining()
			if len(got) != len(tc.want) {
				t.Fatalf("Remaining() = %v, want %v", got, tc.want)
			}
			for g, n := range tc.want {
				if got[g] != n {
					t.Errorf("Remaining()[%d] = %d, want %d", g, got[g], n)
				}
			}
			if c.Total() != len(tc.want) {
				t.Errorf("Total() = %d, want %d", c.Total(), len(tc.want))
			}
		})
	}
}

func TestNewControllerIndexesByXY(t *testing.T) {
	c := newController(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	if got := c.Tile(2, 0).Group(); got != 3 {
		t.Errorf("Tile(2,0).Group() = %d, want 3", got)
	}
	if got := c.Tile(0, 1).Group(); got != 4 {
		t.Errorf("Tile(0,1).Group() = %d, want 4", got)
	}
	if got := c.Tile(1, 1).Pos(); got != core.C(1, 1) {
		t.Errorf("Tile(1,1).Pos() = %v, want (1,1)", got)
	}
	if c.Tile(3, 0) != nil || c.Tile(0, -1) != nil {
		t.Error("out of bounds Tile() should be nil")
	}
}

func TestNewControllerRejectsMalformedLevels(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"no rows", nil, core.ErrEmptyLevel},
		{"empty row", [][]int{{}}, core.ErrEmptyLevel},
		{"ragged", [][]int{{1, 0, 1}, {0, 0}}, core.ErrRaggedRows},
		{"negative", [][]int{{1, -1, 1}}, core.ErrNegativeGroup},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewController(tc.rows, core.DefaultTheme())
			if !errors.Is(err, tc.want) {
				t.Errorf("NewController error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPressStartsDrag(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 5}})
	anchor := c.Tile(0, 0)

	anchor.PointerDown()

	if !c.Drawing() {
		t.Fatal("expected drag to be active")
	}
	if c.Anchor() != anchor {
		t.Error("anchor should be the pressed tile")
	}
	if got := pathCoords(c); len(got) != 1 || got[0] != core.C(0, 0) {
		t.Errorf("path = %v, want [(0,0)]", got)
	}
	if !anchor.Highlighted() || !anchor.Selected() {
		t.Error("anchor should be selected and highlighted")
	}

	// Pressing again restarts with a fresh singleton path.
	anchor.PointerDown()
	if got := pathCoords(c); len(got) != 1 || got[0] != core.C(0, 0) {
		t.Errorf("path after second press = %v, want [(0,0)]", got)
	}
	if !anchor.Highlighted() {
		t.Error("anchor should stay highlighted after second press")
	}
}

func TestPressOnUnplayableTileIgnored(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 5}})

	c.Tile(1, 0).PointerDown()

	if c.Drawing() {
		t.Error("pressing an empty tile must not start a drag")
	}
	if c.Tile(1, 0).Selected() || c.Tile(1, 0).Highlighted() {
		t.Error("empty tile must never be selected or highlighted")
	}
}

func TestUpdateWithoutDragIgnored(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 5}})

	c.Update(core.C(1, 0))

	if c.Tile(1, 0).Highlighted() {
		t.Error("update without a drag must not highlight")
	}
}

func TestNonNeighbourExtensionIgnored(t *testing.T) {
	c := newController(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
	})
	drag(c, core.C(0, 2), core.C(1, 2), core.C(2, 2))
	before := pathCoords(c)

	tests := []struct {
		name string
		to   core.Coord
	}{
		{"diagonal", core.C(3, 3)},
		{"two steps right", core.C(4, 2)},
		{"two steps up", core.C(2, 4)},
		{"knight move", core.C(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.Update(tc.to)

			if got := pathCoords(c); len(got) != len(before) {
				t.Fatalf("path = %v, want %v", got, before)
			}
			if c.Tile(tc.to.X, tc.to.Y).Highlighted() {
				t.Error("rejected tile must not be highlighted")
			}
			if c.Tile(2, 2).Connector().Active {
				t.Error("tail connector must stay inactive")
			}
		})
	}
}

func TestOutOfBoundsPointerIgnored(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 5}})
	drag(c, core.C(0, 0))

	for _, p := range []core.Coord{core.C(-1, 0), core.C(3, 0), core.C(0, 1), core.C(0, -1)} {
		c.Update(p)
	}

	if got := len(c.Path()); got != 1 {
		t.Errorf("path length = %d, want 1", got)
	}
}

func TestSameCellIgnored(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 0, 5}})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(1, 0), core.C(1, 0))

	if got := len(c.Path()); got != 2 {
		t.Errorf("path length = %d, want 2", got)
	}
}

func TestHoverOtherGroupRejected(t *testing.T) {
	c := newController(t, [][]int{{1, 0, 2, 1, 2}})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	if got := pathCoords(c); len(got) != 2 {
		t.Errorf("path = %v, want to stop before group 2", got)
	}
	if c.Tile(2, 0).Highlighted() {
		t.Error("tile of another group must not be highlighted")
	}
}

func TestHighlightedTileNotRevisited(t *testing.T) {
	c := newController(t, [][]int{
		{0, 0, 0},
		{1, 0, 1},
	})
	// (0,1) -> (0,0) -> (1,0) -> (1,1) then back down to (1,0).
	drag(c, core.C(0, 1), core.C(0, 0), core.C(1, 0), core.C(1, 1), core.C(1, 0))

	if got := len(c.Path()); got != 4 {
		t.Errorf("path length = %d, want 4", got)
	}
}

func TestExtensionDirections(t *testing.T) {
	tests := []struct {
		name string
		to   core.Coord
		want core.Dir
	}{
		{"up", core.C(1, 2), core.DirUp},
		{"right", core.C(2, 1), core.DirRight},
		{"down", core.C(1, 0), core.DirDown},
		{"left", core.C(0, 1), core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t, [][]int{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			})
			drag(c, core.C(1, 1), tc.to)

			conn := c.Tile(1, 1).Connector()
			if !conn.Active || conn.Dir != tc.want {
				t.Errorf("anchor connector = %+v, want active %v", conn, tc.want)
			}
			if c.Tile(tc.to.X, tc.to.Y).Connector().Active {
				t.Error("new tail should not have an outgoing connector yet")
			}
		})
	}
}

func TestExtensionCopiesConnectionColor(t *testing.T) {
	c := newController(t, [][]int{{3, 0, 0, 3}})
	want := c.Tile(0, 0).ConnectionColor()

	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	for x := 1; x <= 2; x++ {
		if got := c.Tile(x, 0).ConnectionColor(); got != want {
			t.Errorf("Tile(%d,0) color = %v, want %v", x, got, want)
		}
	}
}

func TestSolvePair(t *testing.T) {
	c := newController(t, [][]int{
		{5, 0, 5},
		{0, 0, 0},
		{0, 0, 0},
	})
	completed := 0
	var solved []int
	c.OnComplete(func() { completed++ })
	c.OnSolved(func(g int) { solved = append(solved, g) })

	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	for x := 0; x < 3; x++ {
		if !c.Tile(x, 0).Solved() {
			t.Errorf("Tile(%d,0) should be solved", x)
		}
	}
	if c.Drawing() {
		t.Error("drag should end when the pair connects")
	}
	if len(c.Path()) != 0 {
		t.Error("path should be empty once the drag ends")
	}
	if _, ok := c.Remaining()[5]; ok {
		t.Error("group 5 should be removed from remaining")
	}
	if completed != 1 || !c.Complete() {
		t.Errorf("completion fired %d times, want 1", completed)
	}
	if len(solved) != 1 || solved[0] != 5 {
		t.Errorf("solved groups = %v, want [5]", solved)
	}
	if c.Solved() != 1 || c.Total() != 1 {
		t.Errorf("Solved/Total = %d/%d, want 1/1", c.Solved(), c.Total())
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	c := newController(t, [][]int{
		{1, 0, 1},
		{2, 0, 2},
	})
	completed := 0
	c.OnComplete(func() { completed++ })

	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))
	if completed != 0 {
		t.Fatal("completion must wait for the last group")
	}

	drag(c, core.C(0, 1), core.C(1, 1), core.C(2, 1))
	if completed != 1 {
		t.Fatalf("completion fired %d times, want 1", completed)
	}

	// Further input on a finished board changes nothing.
	for i := 0; i < 5; i++ {
		c.Tile(0, 0).PointerDown()
		c.Update(core.C(1, 0))
		c.Tile(2, 1).PointerUp()
	}
	if completed != 1 {
		t.Errorf("completion fired %d times, want 1", completed)
	}
	if c.Drawing() {
		t.Error("solved tiles must not start a drag")
	}
}

func TestReleaseAnchorWithoutDrag(t *testing.T) {
	c := newController(t, [][]int{{5, 0, 5}})
	anchor := c.Tile(0, 0)
	before := c.Remaining()

	anchor.PointerDown()
	anchor.PointerUp()

	if anchor.Highlighted() || anchor.Selected() {
		t.Error("anchor should be released and unhighlighted")
	}
	if c.Drawing() {
		t.Error("release should end the drag")
	}
	after := c.Remaining()
	if len(after) != len(before) || after[5] != before[5] {
		t.Errorf("Remaining() = %v, want %v", after, before)
	}
}

func TestReleaseOnOtherGroupResetsPath(t *testing.T) {
	c := newController(t, [][]int{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{1, 0, 0, 2},
	})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	c.Tile(3, 0).PointerUp()

	for x := 0; x < 3; x++ {
		tile := c.Tile(x, 0)
		if tile.Highlighted() {
			t.Errorf("Tile(%d,0) should be unhighlighted", x)
		}
		if tile.Connector().Active || tile.Connector().Dir != core.DirNone {
			t.Errorf("Tile(%d,0) connector should be cleared, got %+v", x, tile.Connector())
		}
		if tile.Solved() {
			t.Errorf("Tile(%d,0) must not be solved", x)
		}
	}
	if c.Drawing() {
		t.Error("release should end the drag")
	}
	if c.Anchor() != nil {
		t.Error("anchor should be cleared")
	}
	if got := c.Remaining(); got[1] != 2 || got[2] != 2 {
		t.Errorf("Remaining() = %v, want both groups intact", got)
	}
}

func TestReleaseOnAnchorAfterDragResetsPath(t *testing.T) {
	c := newController(t, [][]int{{4, 0, 0, 4}})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	c.Tile(0, 0).PointerUp()

	for x := 0; x < 3; x++ {
		if c.Tile(x, 0).Highlighted() {
			t.Errorf("Tile(%d,0) should be unhighlighted", x)
		}
	}
	if c.Drawing() {
		t.Error("release should end the drag")
	}
}

func TestReleaseOnUnreachedTwinResetsPath(t *testing.T) {
	c := newController(t, [][]int{{3, 0, 0, 3}})
	drag(c, core.C(0, 0), core.C(1, 0))

	// The pointer jumped to the twin, so the path never reached it.
	c.Tile(3, 0).PointerUp()

	for x := 0; x < 4; x++ {
		tile := c.Tile(x, 0)
		if tile.Highlighted() || tile.Solved() {
			t.Errorf("Tile(%d,0) highlighted=%v solved=%v, want both false", x, tile.Highlighted(), tile.Solved())
		}
	}
	if c.Drawing() {
		t.Error("release should end the drag")
	}
	if got := c.Remaining()[3]; got != 2 {
		t.Errorf("Remaining()[3] = %d, want 2", got)
	}
	if c.Solved() != 0 {
		t.Errorf("Solved() = %d, want 0", c.Solved())
	}
}

func TestReleaseAfterSolveKeepsSolution(t *testing.T) {
	c := newController(t, [][]int{
		{1, 0, 1},
		{2, 0, 2},
	})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	// Pointer comes up over a tile of another group.
	c.Tile(0, 1).PointerUp()

	for x := 0; x < 3; x++ {
		if !c.Tile(x, 0).Solved() {
			t.Errorf("Tile(%d,0) should stay solved", x)
		}
	}
}

func TestNewPressAbandonsOpenDrag(t *testing.T) {
	c := newController(t, [][]int{
		{1, 0, 1},
		{2, 0, 2},
	})
	drag(c, core.C(0, 0), core.C(1, 0))

	c.Tile(0, 1).PointerDown()

	if c.Tile(1, 0).Highlighted() || c.Tile(0, 0).Highlighted() {
		t.Error("previous drag should be cleared")
	}
	if c.Tile(0, 0).Connector().Active {
		t.Error("previous anchor connector should be cleared")
	}
	if c.Anchor() != c.Tile(0, 1) {
		t.Error("new press should become the anchor")
	}
}

func TestCancel(t *testing.T) {
	c := newController(t, [][]int{{6, 0, 0, 6}})
	drag(c, core.C(0, 0), core.C(1, 0), core.C(2, 0))

	c.Cancel()

	if c.Drawing() || len(c.Path()) != 0 {
		t.Error("cancel should end the drag")
	}
	for x := 0; x < 3; x++ {
		if c.Tile(x, 0).Highlighted() || c.Tile(x, 0).Connector().Active {
			t.Errorf("Tile(%d,0) should be cleared", x)
		}
	}
	if c.Tile(0, 0).Selected() {
		t.Error("anchor should be deselected")
	}

	// Cancel with no drag is a no-op.
	c.Cancel()
}

func TestControllerString(t *testing.T) {
	c := newController(t, [][]int{
		{1, 0},
		{0, 1},
	})

	want := "{0,1}\n{1,0}\n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
