package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrNoHero is returned when a map has no hero spawn.
var ErrNoHero = errors.New("engine: map has no hero spawn")

// Transition is the state change a session requests from its owner.
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionRestart
	TransitionQuit
	TransitionNextLevel
	TransitionMenu
)

// String returns the string representation of a transition.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "None"
	case TransitionRestart:
		return "Restart"
	case TransitionQuit:
		return "Quit"
	case TransitionNextLevel:
		return "NextLevel"
	case TransitionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Input is the per-frame control state. Left and Right are held keys,
// Jump and Escape are presses in this frame.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Escape bool
}

// Session is one loaded level: the grid, every pool and the counters the
// frame pipeline works on. A session is owned by a single goroutine.
type Session struct {
	cfg       config.PlatformerConfig
	grid      *MapGrid
	templates TemplateSet
	pool      *Pool
	particles *ParticlePool
	emitter   Emitter
	views     []View

	hero  *Instance
	spawn core.Vec2

	lives      int
	coins      int
	collected  int
	elapsed    float64
	transition Transition

	camera     Camera
	difficulty *config.DifficultyManager
	enemySpeed float64
	idleTime   float64
}

// NewSession populates a level from grid. The grid is cloned, so the
// caller may reuse it to build a fresh session later. A nil rng seeds one
// from the clock.
func NewSession(grid *MapGrid, cfg config.PlatformerConfig, rng *rand.Rand) (*Session, error) {
	if grid == nil {
		return nil, fmt.Errorf("engine: new session: %w: nil grid", ErrInvalidMap)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: new session: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	templates := DefaultTemplates()
	s := &Session{
		cfg:        cfg,
		grid:       grid.Clone(),
		templates:  templates,
		pool:       NewPool(cfg.Pools.Instances),
		particles:  NewParticlePool(cfg.Pools.Particles, templates.Particles(), cfg.Particles, rng),
		lives:      cfg.Hero.Lives,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	if cfg.Particles.Enabled {
		s.emitter = NewEmitter(cfg.Particles.EmissionRate)
	}
	s.populate()
	if s.hero == nil {
		return nil, ErrNoHero
	}

	s.refreshDifficulty()
	s.camera = Camera{ViewW: float64(s.grid.Width()), ViewH: float64(s.grid.Height())}
	s.pool.Each(func(inst *Instance) {
		inst.UpdateBox(s.cfg.Physics.BoundingSize)
		inst.UpdateTransform()
	})
	s.camera.Follow(s.hero.Pos, float64(s.grid.Width()), float64(s.grid.Height()))
	return s, nil
}

// populate spawns an instance for every hero, enemy and coin tile, scanning
// columns left to right and each column bottom to top. Only the first hero
// tile spawns the hero. Spawns that find the pool full are dropped.
func (s *Session) populate() {
	for x := 0; x < s.grid.Width(); x++ {
		for y := 0; y < s.grid.Height(); y++ {
			t := s.grid.Tile(x, y)
			center := core.V(float64(x)+0.5, float64(y)+0.5)
			switch t {
			case TileHero:
				if s.hero != nil {
					continue
				}
				s.hero = s.pool.Create(Spawn{Template: s.templates.Get(t), Scale: 1, Pos: center})
				s.spawn = center
			case TileEnemy:
				s.pool.Create(Spawn{Template: s.templates.Get(t), Scale: 1, Pos: center, Patrol: NewPatrol(DirRight)})
			case TileCoin:
				if s.pool.Create(Spawn{Template: s.templates.Get(t), Scale: 1, Pos: center}) != nil {
					s.coins++
				}
			}
		}
	}
}

// refreshDifficulty recomputes the enemy tuning from the current progress.
func (s *Session) refreshDifficulty() {
	s.enemySpeed = s.difficulty.EnemySpeed(s.cfg.Enemy.PatrolSpeed, s.collected, s.elapsed)
	s.idleTime = s.difficulty.IdleTime(s.cfg.Enemy.IdleTime, s.collected, s.elapsed)
}

// SetViewport sets the camera size in world units.
func (s *Session) SetViewport(w, h float64) {
	s.camera.ViewW, s.camera.ViewH = w, h
	s.camera.Follow(s.hero.Pos, float64(s.grid.Width()), float64(s.grid.Height()))
}

// Grid returns the session's map.
func (s *Session) Grid() *MapGrid { return s.grid }

// Pool returns the instance pool.
func (s *Session) Pool() *Pool { return s.pool }

// Particles returns the particle pool.
func (s *Session) Particles() *ParticlePool { return s.particles }

// Hero returns the hero instance.
func (s *Session) Hero() *Instance { return s.hero }

// Spawn returns the hero's spawn position.
func (s *Session) Spawn() core.Vec2 { return s.spawn }

// Lives returns the remaining hero lives.
func (s *Session) Lives() int { return s.lives }

// Coins returns the number of coins still in the level.
func (s *Session) Coins() int { return s.coins }

// Collected returns the number of coins picked up this session.
func (s *Session) Collected() int { return s.collected }

// Elapsed returns the simulated time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Transition returns the pending transition request.
func (s *Session) Transition() Transition { return s.transition }

// Camera returns the current camera.
func (s *Session) Camera() Camera { return s.camera }

// EnemySpeed returns the current patrol speed after difficulty scaling.
func (s *Session) EnemySpeed() float64 { return s.enemySpeed }

// RequestQuit asks the owner to leave the game.
func (s *Session) RequestQuit() {
	s.transition = TransitionQuit
}
