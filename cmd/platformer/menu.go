package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start the platformer in interactive menu mode.

Pick the whole campaign or a single starting level. When you leave
a level you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels ./my-levels --preset easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, opts, err := applyGameFlags()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(platformer.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if ls, ok := game.(registry.LevelSelector); ok {
			ls.SelectLevel(menuResult.LevelID)
		}

		logger.Info("starting game", "level", menuResult.LevelID)
		result, err := tui.Run(game, store, cfg, opts)
		if err != nil {
			return describeGameError(err)
		}
		if !result.BackToMenu {
			// Quit from inside the game
			return nil
		}
		if result.State.Won {
			fmt.Printf("Campaign complete! Score: %d\n", result.State.Score)
		}
	}
}
