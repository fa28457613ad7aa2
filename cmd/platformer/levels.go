package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and any maps found in --levels,
in the order the campaign plays them.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level maps (.txt, .map, .yaml)")
}

func runLevels(_ *cobra.Command, _ []string) error {
	platformer.SetLevelsDir(flagLevelsDir)

	all, err := platformer.Catalogue()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %-7s  %5s  %7s  %s\n", maxIDLen, "ID", "Name", "Size", "Coins", "Enemies", "Source")
	fmt.Printf("  %-*s  %-12s  %-7s  %5s  %7s  %s\n", maxIDLen, "--", "----", "----", "-----", "-------", "------")

	for _, l := range all {
		source := l.Path
		if source == "" {
			source = "builtin"
		}
		size := fmt.Sprintf("%dx%d", l.Grid.Width(), l.Grid.Height())
		fmt.Printf("  %-*s  %-12s  %-7s  %5d  %7d  %s\n", maxIDLen, l.ID, l.Name, size,
			l.Grid.Count(engine.TileCoin), l.Grid.Count(engine.TileEnemy), source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id>' to start on a level.")
	return nil
}
