package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus any found in the configured levels directory.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	lvls, err := pipes.AvailableLevels()
	if err != nil {
		return err
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Pairs")
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "-----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width(), l.Height())
		fmt.Printf("  %-*s  %-*s  %-5s  %d\n", maxIDLen, l.ID, maxNameLen, l.Name, size, l.Pairs())
	}

	fmt.Println()
	fmt.Println("Run 'pipes play <id>' to play a level.")
	return nil
}
