// Package platformer implements a tile-based platformer: run and jump
// through a campaign of levels, collect every coin and avoid the
// patrolling enemies.
package platformer

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry and score-table ID of the game.
const GameID = "platformer"

// Terminal cells per world unit. Terminal cells are about twice as tall as
// they are wide.
const (
	cellW     = 2
	cellH     = 1
	hudHeight = 1
)

// Package-level variables for configuration set via CLI
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       string
	logger           = log.New(io.Discard)
)

// SetLogger sets the logger for level loads and transitions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir adds a directory of level files to the built-in campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the level ID the next run starts on. Empty starts
// from the first level.
func SetStartLevel(id string) {
	startLevel = id
}

// StartLevel returns the currently selected start level.
func StartLevel() string {
	return startLevel
}

// Catalogue returns the levels available with the current settings.
func Catalogue() ([]levels.Level, error) {
	return levels.Catalogue(levelsDir)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts a campaign of engine sessions to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	rng     *rand.Rand

	start   string // level chosen for this instance, overrides startLevel
	levels  []levels.Level
	index   int
	session *engine.Session

	banked   int // points from finished levels
	coins    int // coins from finished levels
	restarts int
	gameOver bool
	won      bool
	paused   bool
	err      error

	viewW, viewH int
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// SelectLevel sets the level this instance starts on at the next Reset.
func (g *Game) SelectLevel(id string) {
	g.start = id
}

// Reset loads the configuration and the level catalogue and starts a new
// run on the selected start level.
func (g *Game) Reset(rc core.RuntimeConfig) {
	*g = Game{runtime: rc, start: g.start, rng: rand.New(rand.NewSource(rc.Seed))}

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.fail(err)
		return
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	all, err := Catalogue()
	if err != nil {
		g.fail(err)
		return
	}
	if len(all) == 0 {
		g.fail(fmt.Errorf("platformer: %w: no levels available", levels.ErrNotFound))
		return
	}
	g.levels = all

	first := g.start
	if first == "" {
		first = startLevel
	}
	if first != "" {
		idx := levels.Index(all, first)
		if idx < 0 {
			g.fail(fmt.Errorf("platformer: %w: %s", levels.ErrNotFound, first))
			return
		}
		g.index = idx
	}
	g.loadLevel()
}

// loadLevel starts a fresh session on the current level.
func (g *Game) loadLevel() {
	lvl := g.levels[g.index]
	s, err := engine.NewSession(lvl.Grid, g.cfg, g.rng)
	if err != nil {
		g.fail(fmt.Errorf("platformer: level %s: %w", lvl.ID, err))
		return
	}
	g.session = s
	g.viewW, g.viewH = 0, 0
	logger.Info("level loaded", "level", lvl.ID, "coins", s.Coins(), "lives", s.Lives())
}

func (g *Game) fail(err error) {
	logger.Error("run stopped", "err", err)
	g.err = err
	g.gameOver = true
	g.session = nil
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), BackToMenu: in.Has(core.ActionBack)}
	}
	if in.Has(core.ActionRestart) {
		g.restarts++
		g.loadLevel()
		return core.StepResult{State: g.State(), Err: g.err}
	}

	g.session.Update(engine.Input{
		Left:   in.IsHeld(core.ActionLeft),
		Right:  in.IsHeld(core.ActionRight),
		Jump:   in.Has(core.ActionJump),
		Escape: in.Has(core.ActionBack),
	}, dt)

	tr := g.session.Transition()
	if tr != engine.TransitionNone {
		logger.Debug("transition", "level", g.levels[g.index].ID, "to", tr)
	}
	switch tr {
	case engine.TransitionRestart:
		g.restarts++
		g.loadLevel()
	case engine.TransitionNextLevel:
		g.banked += g.session.Collected() * g.cfg.Hero.CoinPoints
		g.coins += g.session.Collected()
		if g.index == len(g.levels)-1 {
			g.banked += g.session.Lives() * g.cfg.Hero.LifeBonus
			g.won = true
			g.gameOver = true
			logger.Info("campaign complete", "score", g.banked, "restarts", g.restarts)
			break
		}
		g.index++
		g.loadLevel()
	case engine.TransitionMenu, engine.TransitionQuit:
		return core.StepResult{State: g.State(), BackToMenu: true}
	}

	return core.StepResult{State: g.State(), Err: g.err}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:     g.Score(),
		GameOver:  g.gameOver,
		Won:       g.won,
		Paused:    g.paused,
		Collected: g.coins,
		Restarts:  g.restarts,
	}
	if len(g.levels) > 0 {
		st.Level = g.levels[g.index].ID
	}
	if g.session != nil {
		st.Lives = g.session.Lives()
		st.Coins = g.session.Coins()
		if !g.won {
			st.Collected += g.session.Collected()
		}
	}
	return st
}

// Score returns the banked points plus the coins collected in the current
// level.
func (g *Game) Score() int {
	score := g.banked
	if g.session != nil && !g.won {
		score += g.session.Collected() * g.cfg.Hero.CoinPoints
	}
	return score
}

// Err returns the error that ended the run, if any.
func (g *Game) Err() error {
	return g.err
}

// IsLevelMissing reports whether the run ended because a level was not found.
func IsLevelMissing(err error) bool {
	return errors.Is(err, levels.ErrNotFound)
}

// Snapshot captures the observable state for tests and replays.
type Snapshot struct {
	Level      string
	Lives      int
	Coins      int
	Score      int
	Restarts   int
	HeroX      float64
	HeroY      float64
	Particles  int
	Transition engine.Transition
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Level:    st.Level,
		Lives:    st.Lives,
		Coins:    st.Coins,
		Score:    st.Score,
		Restarts: g.restarts,
	}
	if g.session != nil {
		h := g.session.Hero()
		snap.HeroX, snap.HeroY = h.Pos.X, h.Pos.Y
		snap.Particles = g.session.Particles().Len()
		snap.Transition = g.session.Transition()
	}
	return snap
}
