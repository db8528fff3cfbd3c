package config

import "math"

// DifficultyManager calculates wave parameters based on level or score.
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

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// gameLevel is the 1-based session level.
func (d *DifficultyManager) Level(score int, gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "level":
		progress = float64(gameLevel-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the hazard speed cap for the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, gameLevel int) float64 {
	level := d.Level(score, gameLevel)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// WaveSize returns the hazard count of a wave for the current difficulty.
func (d *DifficultyManager) WaveSize(base int, score int, gameLevel int) int {
	level := d.Level(score, gameLevel)
	result := base + int(level*float64(d.cfg.Scaling.WaveBonus))
	if result < 1 {
		result = 1
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
