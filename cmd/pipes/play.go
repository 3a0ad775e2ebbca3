package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the puzzle",
	Long: `Start playing, on the given level or the first one.

Controls:
  Mouse            - Press on a mark and drag to its partner
  Arrows/WASD      - Move the cursor
  Space/Enter      - Grab or drop at the cursor
  R                - Restart the level
  N                - Next level (after completing one)
  ?                - More help
  Q/Esc/Ctrl+C     - Quit

Examples:
  pipes play
  pipes play lvl03
  pipes play --config ./my-pipes.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := checkLevel(args[0]); err != nil {
			return err
		}
		pipes.SetStartLevel(args[0])
	}

	game, err := registry.Create(tui.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// checkLevel reports an error if no available level has the given ID.
func checkLevel(id string) error {
	lvls, err := pipes.AvailableLevels()
	if err != nil {
		return err
	}
	for _, l := range lvls {
		if l.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown level %q (run 'pipes list' to see available levels)", id)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
