package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning. It matches
// defaults/platformer.yaml and is used when the embedded file cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      -20,
			MaxFrameTime: 0.01667,
			BoundingSize: 1.0,
		},
		Hero: HeroConfig{
			MoveVelocity: 4,
			JumpVelocity: 11,
			Lives:        3,
			CoinPoints:   100,
			LifeBonus:    50,
		},
		Enemy: EnemyConfig{
			PatrolSpeed: 7.5,
			IdleTime:    2.0,
		},
		Pools: PoolConfig{
			Instances: 2048,
			Particles: 200,
		},
		Particles: ParticleConfig{
			Enabled:      true,
			EmissionRate: 20,
			DriftSpeed:   0.5,
			Alpha:        Range{Min: 0.5, Max: 1.0},
			Scale:        Range{Min: 0.2, Max: 0.5},
			Lifespan:     Range{Min: 0.4, Max: 1.2},
			Velocity:     Range{Min: 0.5, Max: 1.5},
			JitterX:      Range{Min: -0.25, Max: 0.25},
			JitterY:      Range{Min: 0.0, Max: 0.25},
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				IdleReduction:   0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
