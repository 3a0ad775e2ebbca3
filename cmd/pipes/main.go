// pipes is a terminal pipe-connection puzzle: drag a path between each pair
// of matching marks until every pair is connected.
//
// Usage:
//
//	pipes list               - List available levels
//	pipes play [level-id]    - Play, starting on a level
//	pipes menu               - Pick levels interactively
//	pipes serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Custom config YAML
//	--levels <dir>    - Extra directory of level files
//	--log <path>      - Write logs to a file
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLevels  string
	flagLogPath string
	flagDebug   bool

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipes - connect matching pairs in your terminal",
	Long: `Pipes is a terminal puzzle. Each level is a grid with pairs of
matching marks; drag a path from one mark to its partner, moving only
up, down, left or right. Paths cannot cross other marks or each other.
The level is complete when every pair is connected.

Available commands:
  list     - Show all available levels
  play     - Play, optionally starting on a level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play

Examples:
  pipes list
  pipes play lvl03
  pipes menu --levels ./my-levels
  pipes serve --ssh :2222`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and passes global flags to the game package.
// The terminal belongs to the UI, so logs are discarded unless --log is set.
func setup(_ *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		out = f
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	pipes.SetLogger(logger)
	pipes.SetConfigPath(flagConfig)
	pipes.SetLevelsDir(flagLevels)
	return nil
}
