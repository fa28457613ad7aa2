// platformer is a tile-based platformer for the terminal.
//
// Usage:
//
//	platformer play          - Play the campaign, or one level with --level
//	platformer menu          - Start the level picker menu
//	platformer levels        - List available levels
//	platformer scores        - Show run history
//	platformer serve         - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.platformer/runs.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - Run, jump and collect coins in your terminal",
	Long: `Platformer is a tile-based platform game for the terminal.
Collect every coin in a level to reach the next one and keep away
from the patrolling enemies.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive level picker menu
  levels   - Show all available levels
  scores   - View run history and high scores
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --level level2 --preset hard
  platformer menu --levels ./my-levels
  platformer serve --port 2222
  platformer scores --limit 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// logger is shared by all commands. Interactive commands own the terminal,
// so it discards output unless --log-file is set.
var logger = log.New(io.Discard)

// setupLogging builds the logger from the global flags.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	platformer.SetLogger(logger.WithPrefix("game"))
	return nil
}
