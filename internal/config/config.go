// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all tuning for the platformer.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Hero       HeroConfig       `yaml:"hero" toml:"hero"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Pools      PoolConfig       `yaml:"pools" toml:"pools"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PhysicsConfig defines world-wide physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`               // units/s², negative pulls down
	MaxFrameTime float64 `yaml:"max_frame_time" toml:"max_frame_time"` // dt upper bound in seconds
	BoundingSize float64 `yaml:"bounding_size" toml:"bounding_size"`   // box edge per unit of scale
}

// HeroConfig defines the player character.
type HeroConfig struct {
	MoveVelocity float64 `yaml:"move_velocity" toml:"move_velocity"`
	JumpVelocity float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	Lives        int     `yaml:"lives" toml:"lives"`
	CoinPoints   int     `yaml:"coin_points" toml:"coin_points"`
	LifeBonus    int     `yaml:"life_bonus" toml:"life_bonus"` // points per life left at the end of a run
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	PatrolSpeed float64 `yaml:"patrol_speed" toml:"patrol_speed"`
	IdleTime    float64 `yaml:"idle_time" toml:"idle_time"` // pause in seconds before turning around
}

// PoolConfig sets fixed pool capacities.
type PoolConfig struct {
	Instances int `yaml:"instances" toml:"instances"`
	Particles int `yaml:"particles" toml:"particles"`
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// ParticleConfig defines the hero trail emitter.
type ParticleConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	EmissionRate float64 `yaml:"emission_rate" toml:"emission_rate"` // particles per second
	DriftSpeed   float64 `yaml:"drift_speed" toml:"drift_speed"`     // horizontal drift along hero facing
	Alpha        Range   `yaml:"alpha" toml:"alpha"`
	Scale        Range   `yaml:"scale" toml:"scale"`
	Lifespan     Range   `yaml:"lifespan" toml:"lifespan"`
	Velocity     Range   `yaml:"velocity" toml:"velocity"` // upward speed
	JitterX      Range   `yaml:"jitter_x" toml:"jitter_x"`
	JitterY      Range   `yaml:"jitter_y" toml:"jitter_y"`
}

// InputConfig tunes how terminal key events become held keys.
type InputConfig struct {
	// HoldWindowMS is how long a key counts as held after its last event.
	// Terminals only report presses and auto-repeat, never releases.
	HoldWindowMS int `yaml:"hold_window_ms" toml:"hold_window_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "coins", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // coins or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // added to enemy speed at max difficulty
	IdleReduction   float64 `yaml:"idle_reduction" toml:"idle_reduction"`     // fraction of idle time removed at max difficulty
}

// Validate reports every setting that would make the simulation unusable.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if c.Physics.MaxFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_frame_time must be positive, got %v", c.Physics.MaxFrameTime))
	}
	if c.Physics.BoundingSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.bounding_size must be positive, got %v", c.Physics.BoundingSize))
	}
	if c.Hero.MoveVelocity <= 0 {
		errs = append(errs, fmt.Errorf("hero.move_velocity must be positive, got %v", c.Hero.MoveVelocity))
	}
	if c.Hero.JumpVelocity <= 0 {
		errs = append(errs, fmt.Errorf("hero.jump_velocity must be positive, got %v", c.Hero.JumpVelocity))
	}
	if c.Enemy.PatrolSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enemy.patrol_speed must be positive, got %v", c.Enemy.PatrolSpeed))
	}
	if c.Hero.Lives <= 0 {
		errs = append(errs, fmt.Errorf("hero.lives must be positive, got %d", c.Hero.Lives))
	}
	if c.Enemy.IdleTime < 0 {
		errs = append(errs, fmt.Errorf("enemy.idle_time must not be negative, got %v", c.Enemy.IdleTime))
	}
	if c.Pools.Instances <= 0 {
		errs = append(errs, fmt.Errorf("pools.instances must be positive, got %d", c.Pools.Instances))
	}
	if c.Pools.Particles < 0 {
		errs = append(errs, fmt.Errorf("pools.particles must not be negative, got %d", c.Pools.Particles))
	}
	if c.Particles.Enabled && c.Particles.EmissionRate <= 0 {
		errs = append(errs, fmt.Errorf("particles.emission_rate must be positive, got %v", c.Particles.EmissionRate))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"alpha", c.Particles.Alpha},
		{"scale", c.Particles.Scale},
		{"lifespan", c.Particles.Lifespan},
		{"velocity", c.Particles.Velocity},
		{"jitter_x", c.Particles.JitterX},
		{"jitter_y", c.Particles.JitterY},
	}
	for _, nr := range ranges {
		if nr.r.Max < nr.r.Min {
			errs = append(errs, fmt.Errorf("particles.%s: max %v below min %v", nr.name, nr.r.Max, nr.r.Min))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid platformer config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}
