// Package pipes provides the pipe-connection puzzle for the platform.
package pipes

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/config"
	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

const (
	hudHeight    = 2
	footerHeight = 2
)

// Game implements the pipe-connection puzzle.
type Game struct {
	cfg     config.PipesConfig
	theme   core.Theme
	cursorC platformcore.Color
	logger  *log.Logger

	// Campaign
	startLevel string // Overrides the package-level start level when set
	allLevels  []levels.Level
	levelIndex int
	level      levels.Level
	ctrl       *core.Controller
	loadErr    error

	// Screen
	screenW  int
	screenH  int
	layout   Layout
	tooSmall bool

	// Input
	pointer       core.Coord // Last pointer position in grid coordinates
	cursor        core.Coord
	cursorVisible bool // Keyboard cursor shown until the mouse is used

	complete  bool
	lastGroup int // Most recently solved group, for the status line
	flash     int // Ticks left to show the solved message
}

// Package-level variables for configuration
var (
	selectedStartLevel string
	levelsDir          string
	configPath         string
	gameLogger         *log.Logger
)

// SetStartLevel sets the ID of the level to start on. Empty means the first.
func SetStartLevel(id string) {
	selectedStartLevel = id
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() string {
	return selectedStartLevel
}

// SetLevelsDir adds a directory of level files to the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger new games write diagnostics to.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

func init() {
	registry.Register("pipes", func() registry.Game {
		return New()
	})
}

// New creates a new game. Levels and configuration are loaded by Reset.
func New() *Game {
	logger := gameLogger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		logger: logger.WithPrefix("pipes"),
		cfg:    config.DefaultPipesConfig(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pipes"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipe Connect"
}

// Reset loads configuration and levels and starts the selected level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.loadErr = nil
	g.ctrl = nil

	pc, err := config.LoadPipes(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		pc = config.DefaultPipesConfig()
	}
	g.applyConfig(pc)

	all, err := LoadLevels(g.cfg.Levels.Dir)
	if err == nil && len(all) == 0 {
		err = levels.ErrLevelNotFound
	}
	if err != nil {
		g.logger.Error("loading levels", "err", err)
		g.loadErr = err
		return
	}
	g.allLevels = all

	start := g.startLevel
	if start == "" {
		start = selectedStartLevel
		selectedStartLevel = "" // Reset after use
	}
	g.levelIndex = 0
	for i, l := range all {
		if l.ID == start {
			g.levelIndex = i
			break
		}
	}

	g.loadCurrentLevel()
}

// StartAt makes the next Reset start on the level with the given ID.
// Unlike SetStartLevel it only affects this game, so concurrent sessions
// do not interfere.
func (g *Game) StartAt(id string) {
	g.startLevel = id
}

// AvailableLevels returns the levels a new game would offer: the built-in
// set plus the configured levels directory.
func AvailableLevels() ([]levels.Level, error) {
	dir := levelsDir
	if dir == "" {
		cfg, err := config.LoadPipes(configPath)
		if err != nil {
			return nil, err
		}
		dir = cfg.Levels.Dir
	}
	return LoadLevels(dir)
}

// applyConfig stores cfg and resolves its palette. An invalid palette falls
// back to the defaults.
func (g *Game) applyConfig(cfg config.PipesConfig) {
	if levelsDir != "" {
		cfg.Levels.Dir = levelsDir
	}
	g.cfg = cfg

	palette, err := cfg.Theme.Palette()
	if err != nil {
		g.logger.Warn("invalid theme, using defaults", "err", err)
		palette, _ = config.DefaultPipesConfig().Theme.Palette()
	}
	g.theme = core.Theme{
		Back:      palette.Back,
		Empty:     palette.Empty,
		Highlight: palette.Highlight,
		Groups:    palette.Groups,
	}
	g.cursorC = palette.Cursor
}

// LoadLevels returns the built-in levels merged with those found in dir.
// Levels from dir replace built-in levels with the same ID.
func LoadLevels(dir string) ([]levels.Level, error) {
	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return builtin, nil
	}

	extra, err := levels.NewDirLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(builtin))
	for i, l := range builtin {
		byID[l.ID] = i
	}
	for _, l := range extra {
		if i, ok := byID[l.ID]; ok {
			builtin[i] = l
			continue
		}
		byID[l.ID] = len(builtin)
		builtin = append(builtin, l)
	}
	levels.SortByID(builtin)
	return builtin, nil
}

// loadCurrentLevel builds a fresh controller for the level at levelIndex.
func (g *Game) loadCurrentLevel() {
	g.level = g.allLevels[g.levelIndex]
	g.complete = false
	g.flash = 0
	g.lastGroup = 0

	ctrl, err := g.level.NewController(g.theme, core.WithLogger(g.logger.With("level", g.level.ID)))
	if err != nil {
		g.logger.Error("building level", "err", err)
		g.loadErr = err
		g.ctrl = nil
		return
	}
	ctrl.OnSolved(func(group int) {
		g.lastGroup = group
		g.flash = 90
	})
	ctrl.OnComplete(func() {
		g.complete = true
		g.logger.Info("level complete", "level", g.level.ID)
	})
	g.ctrl = ctrl
	g.loadErr = nil

	g.cursor = core.C(0, ctrl.Height()-1)
	g.pointer = g.cursor
	g.calculateLayout()
}

// calculateLayout positions the board between the HUD and the footer.
func (g *Game) calculateLayout() {
	if g.ctrl == nil {
		return
	}
	// One character of border on each side of the board
	area := platformcore.NewRect(1, hudHeight+1, g.screenW-2, g.screenH-hudHeight-footerHeight-2)
	if area.W <= 0 || area.H <= 0 {
		g.tooSmall = true
		return
	}
	layout, ok := fitLayout(area, g.ctrl.Width(), g.ctrl.Height(), g.cfg.Board.CellWidth, g.cfg.Board.CellHeight)
	g.layout = layout
	g.tooSmall = !ok
}

// Resize adapts the layout to a new screen size without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// Controller exposes the running puzzle. Nil when no level is loaded.
func (g *Game) Controller() *core.Controller {
	return g.ctrl
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Layout returns the current board placement.
func (g *Game) Layout() Layout {
	return g.layout
}

// Step advances the game by one tick.
//
// Pointer events are delivered one at a time in arrival order. Every event
// first moves the drag toward its cell, so a release can still extend or
// close the path. A release over no playable tile cancels the drag. The
// keyboard cursor acts as one more pointer after the mouse events.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.flash > 0 {
		g.flash--
	}
	if g.ctrl == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionRestart) {
		g.loadCurrentLevel()
		return platformcore.StepResult{State: g.State()}
	}
	if input.Has(platformcore.ActionNext) && g.complete && g.hasNext() {
		g.levelIndex++
		g.loadCurrentLevel()
		return platformcore.StepResult{State: g.State()}
	}

	for _, ev := range input.Pointer {
		cell, _ := g.layout.CellAt(ev.X, ev.Y)
		g.pointer = cell
		g.cursorVisible = false
		switch ev.Kind {
		case platformcore.PointerPress:
			g.press(cell)
		case platformcore.PointerMove:
			g.ctrl.Update(cell)
		case platformcore.PointerRelease:
			g.release(cell)
		}
	}

	if g.moveCursor(input) {
		g.pointer = g.cursor
		g.ctrl.Update(g.cursor)
	}
	if input.Has(platformcore.ActionConfirm) {
		g.cursorVisible = true
		g.pointer = g.cursor
		if g.ctrl.Drawing() {
			g.release(g.cursor)
		} else {
			g.press(g.cursor)
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// press delivers a pointer press at p.
func (g *Game) press(p core.Coord) {
	if t := g.ctrl.Tile(p.X, p.Y); t != nil {
		t.PointerDown()
	}
	g.ctrl.Update(p)
}

// release delivers a pointer release at p. Tiles that do not report
// releases leave the drag open, so it is cancelled here.
func (g *Game) release(p core.Coord) {
	g.ctrl.Update(p)
	if t := g.ctrl.Tile(p.X, p.Y); t != nil {
		t.PointerUp()
	}
	if g.ctrl.Drawing() {
		g.ctrl.Cancel()
	}
}

// moveCursor applies directional actions to the keyboard cursor.
// Up moves toward the top of the board, which is the larger y.
func (g *Game) moveCursor(input platformcore.InputFrame) bool {
	dx, dy := 0, 0
	if input.Has(platformcore.ActionUp) {
		dy++
	}
	if input.Has(platformcore.ActionDown) {
		dy--
	}
	if input.Has(platformcore.ActionLeft) {
		dx--
	}
	if input.Has(platformcore.ActionRight) {
		dx++
	}
	if dx == 0 && dy == 0 {
		return false
	}

	// One axis per tick keeps keyboard drags orthogonal
	if dx != 0 && dy != 0 {
		dy = 0
	}
	g.cursor = core.C(
		platformcore.Clamp(g.cursor.X+dx, 0, g.ctrl.Width()-1),
		platformcore.Clamp(g.cursor.Y+dy, 0, g.ctrl.Height()-1),
	)
	g.cursorVisible = true
	return true
}

func (g *Game) hasNext() bool {
	return g.levelIndex+1 < len(g.allLevels)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	s := platformcore.GameState{
		Complete: g.complete,
		Level:    g.level.ID,
		HasNext:  g.hasNext(),
	}
	if g.ctrl != nil {
		s.Solved = g.ctrl.Solved()
		s.Total = g.ctrl.Total()
	}
	return s
}
