package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a level.
Press Esc while playing to return to the menu.

Examples:
  pipes menu
  pipes menu --levels ./my-levels
  pipes menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	lvls, err := pipes.AvailableLevels()
	if err != nil {
		return err
	}
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(lvls, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(tui.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if g, ok := game.(*pipes.Game); ok {
			g.StartAt(menuResult.LevelID)
		}

		goBack, err := tui.RunFromMenu(game, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !goBack {
			return nil
		}
	}
}
