package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagHost        string
	flagPort        int
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the platformer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker menu.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.platformer/host_key

Examples:
  platformer serve                           # Listen on :23234 with auto-generated key
  platformer serve --port 2222               # Listen on port 2222
  platformer serve --host-key ./my_host_key  # Use specific host key
  platformer serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", "", "Interface to listen on (default: all)")
	serveCmd.Flags().IntVar(&flagPort, "port", 23234, "SSH port")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level maps (.txt, .map, .yaml)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	serveCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagPort <= 0 || flagPort > 65535 {
		return fmt.Errorf("--port must be between 1 and 65535, got %d", flagPort)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagPreset)
	platformer.SetLevelsDir(flagLevelsDir)

	// The server logs to stderr unless --log-file was given.
	srvLogger := logger
	if flagLogFile == "" {
		srvLogger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           logger.GetLevel(),
			ReportTimestamp: true,
		})
		platformer.SetLogger(srvLogger.WithPrefix("game"))
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = net.JoinHostPort(flagHost, strconv.Itoa(flagPort))
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = srvLogger
	if gc, err := config.LoadPlatformer(flagConfig); err == nil {
		cfg.HoldWindow = time.Duration(gc.Input.HoldWindowMS) * time.Millisecond
	} else {
		srvLogger.Warn("using default hold window", "err", err)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting platformer SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", flagPort)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
