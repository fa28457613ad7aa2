package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLevel     string
	flagLevelsDir string
	flagConfig    string
	flagPreset    string
	flagSeed      int64
	flagFPS       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start playing the campaign, or a single starting level with --level.

Controls:
  A/D, Left/Right  - Walk
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart the level
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - More lives, slower enemies
  normal - Default tuning
  hard   - Fewer lives, faster enemies that speed up with every coin
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play --level level2
  platformer play --preset hard
  platformer play --levels ./my-levels --level cave
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start on (default: first level)")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level maps (.txt, .map, .yaml)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

// applyGameFlags pushes the game flags into the platformer package and
// returns the runtime config and game options for the current terminal.
func applyGameFlags() (core.RuntimeConfig, tui.GameOptions, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, tui.GameOptions{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagPreset)
	platformer.SetLevelsDir(flagLevelsDir)

	// The hold window lives in the game config; a bad config is reported
	// by the game itself.
	opts := tui.GameOptions{Logger: logger.WithPrefix("tui")}
	if cfg, err := config.LoadPlatformer(flagConfig); err == nil {
		opts.HoldWindow = time.Duration(cfg.Input.HoldWindowMS) * time.Millisecond
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return rc, opts, nil
}

// openStore opens the runs database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// describeGameError turns a game error into a message for the terminal.
func describeGameError(err error) error {
	if platformer.IsLevelMissing(err) {
		return fmt.Errorf("%w\nRun 'platformer levels' to see available levels", err)
	}
	return err
}

func runPlay(_ *cobra.Command, _ []string) error {
	rc, opts, err := applyGameFlags()
	if err != nil {
		return err
	}

	// Create game instance
	game, err := registry.Create(platformer.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if ls, ok := game.(registry.LevelSelector); ok {
		ls.SelectLevel(flagLevel)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "level", flagLevel, "preset", flagPreset, "seed", rc.Seed)
	result, err := tui.Run(game, store, rc, opts)
	if err != nil {
		return describeGameError(err)
	}

	if result.State.Won {
		fmt.Printf("Campaign complete! Score: %d\n", result.State.Score)
	}
	return nil
}
