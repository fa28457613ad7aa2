package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and high scores",
	Long: `Display the best runs, or the most recent ones with --recent.

Examples:
  platformer scores
  platformer scores --limit 20
  platformer scores --recent
  platformer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", flagLimit)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(platformer.GameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		logger.Info("runs cleared", "db", flagDBPath)
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.RunRecord
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(platformer.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - Platformer\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %-8s  %-8s  %s\n", "Rank", "Score", "Level", "Coins", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		result := "quit"
		if r.Outcome == storage.OutcomeComplete {
			result = "cleared"
		}
		played := (time.Duration(r.Duration) * time.Second).String()
		fmt.Printf("  %-4d  %-8d  %-10s  %-5d  %-8s  %-8s  %s\n",
			i+1, r.Score, r.Level, r.Coins, result, played, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Summary
	fmt.Println()
	if stats, err := store.GetGameStats(platformer.GameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Cleared: %d  |  Average: %.0f\n",
			stats.HighScore, stats.RunsCount, stats.Completed, stats.AvgScore)
	}
	return nil
}
