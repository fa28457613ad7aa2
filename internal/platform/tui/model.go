package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 150 * time.Millisecond

// GameOptions tune a GameModel.
type GameOptions struct {
	// HoldWindow is how long a movement key stays held after its last event.
	HoldWindow time.Duration

	// ExitOnBack quits the program when the player leaves the level instead
	// of handing control back to a menu.
	ExitOnBack bool

	Logger *log.Logger
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	holds      *HoldTracker
	clock      *frameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
	err        error
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	clock := newFrameClock(cfg.TickRate)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     opts.Logger,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldWindow),
		clock:      &clock,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game follows the screen size on its next render.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	// After the run, Back leaves without another simulation step.
	if action == core.ActionBack && m.gameState.GameOver {
		return m.leave()
	}

	m.inputFrame.Set(action)
	if action == core.ActionLeft || action == core.ActionRight {
		m.holds.Press(action, time.Now())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.next(now)

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.started = now
		m.inputFrame.Clear()
		m.holds.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Err != nil {
		m.logger.Error("game stopped", "game", m.game.ID(), "err", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	// Record the run once it is over.
	if m.gameState.GameOver && !m.runSaved {
		outcome := storage.OutcomeQuit
		if m.gameState.Won {
			outcome = storage.OutcomeComplete
		}
		m.saveRun(outcome)
	}

	if result.BackToMenu {
		m.saveRun(storage.OutcomeQuit)
		return m.leave()
	}

	return m, tickCmd(m.config.TickRate)
}

// leave ends the game and returns to the menu, or exits when there is none.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.opts.ExitOnBack {
		return m, tea.Quit
	}
	return m, nil
}

// saveRun records the current run once.
func (m *GameModel) saveRun(outcome string) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	st := m.gameState
	if st.Score == 0 && !st.Won {
		return
	}

	rec := storage.RunRecord{
		GameID:   m.game.ID(),
		Level:    st.Level,
		Score:    st.Score,
		Coins:    st.Collected,
		Lives:    st.Lives,
		Restarts: st.Restarts,
		Outcome:  outcome,
		Duration: int(time.Since(m.started).Seconds()),
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "game", rec.GameID, "err", err)
		return
	}
	m.logger.Info("run saved", "game", rec.GameID, "score", rec.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Err returns the error that stopped the game, if any.
func (m GameModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a standalone game ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts a Bubble Tea program for a single game. The program exits when
// the player quits or leaves the level.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (RunResult, error) {
	opts.ExitOnBack = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), BackToMenu: m.BackToMenu()}, m.Err()
}
