package config

import "math"

// DifficultyManager calculates dynamic enemy parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the number of
// coins collected so far and the seconds played.
func (d *DifficultyManager) Level(coins int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "coins":
		progress = float64(coins) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales the base patrol speed by the current level.
func (d *DifficultyManager) EnemySpeed(base float64, coins int, elapsed float64) float64 {
	level := d.Level(coins, elapsed)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// IdleTime shortens the enemy turn-around pause as the level rises.
func (d *DifficultyManager) IdleTime(base float64, coins int, elapsed float64) float64 {
	level := d.Level(coins, elapsed)
	reduction := clampF(level*d.cfg.Scaling.IdleReduction, 0.0, 1.0)
	return base * (1.0 - reduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
