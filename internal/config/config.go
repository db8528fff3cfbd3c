// Package config provides YAML-based game configuration loading and
// difficulty management for astro sessions.
package config

import "time"

// AstroConfig contains all tunables of an astro session.
// Durations are expressed in milliseconds of game time.
type AstroConfig struct {
	World      AstroWorld       `yaml:"world"`
	Ship       AstroShip        `yaml:"ship"`
	Projectile AstroProjectile  `yaml:"projectile"`
	Hazards    AstroHazards     `yaml:"hazards"`
	Pickups    AstroPickups     `yaml:"pickups"`
	Inventory  AstroInventory   `yaml:"inventory"`
	Progress   AstroProgress    `yaml:"progress"`
	Machine    AstroMachine     `yaml:"machine"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AstroWorld defines the simulated playfield.
type AstroWorld struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CountdownTicks int     `yaml:"countdown_ticks"` // READY_TO_PLAY countdown length
}

// AstroShip defines the player ship handling.
type AstroShip struct {
	Radius       float64 `yaml:"radius"`
	RotateSpeed  float64 `yaml:"rotate_speed"` // radians per tick
	Thrust       float64 `yaml:"thrust"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"max_speed"`
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
}

// AstroProjectile defines projectiles fired by the ship.
type AstroProjectile struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	TTLMs  int     `yaml:"ttl_ms"`
}

// AstroHazards defines the asteroid waves.
type AstroHazards struct {
	Radii    []float64 `yaml:"radii"`  // radius per tier, largest first
	Scores   []int     `yaml:"scores"` // score per tier
	Split    int       `yaml:"split"`  // fragments produced when a hazard breaks
	BaseWave int       `yaml:"base_wave"`
	PerLevel int       `yaml:"per_level"`
	MaxSpeed float64   `yaml:"max_speed"`
}

// AstroPickups defines token and pill drops.
type AstroPickups struct {
	IntervalMs  int     `yaml:"interval_ms"`
	TTLMs       int     `yaml:"ttl_ms"`
	Radius      float64 `yaml:"radius"`
	MaxSpeed    float64 `yaml:"max_speed"`
	TokenWeight int     `yaml:"token_weight"`
	PillWeight  int     `yaml:"pill_weight"`
	TokenValue  int     `yaml:"token_value"` // tokens awarded per collected token
	ShieldMs    int     `yaml:"shield_ms"`
}

// AstroInventory defines ledger capacities and reset values.
type AstroInventory struct {
	ShipsCapacity  int `yaml:"ships_capacity"`
	ShipsDefault   int `yaml:"ships_default"`
	TokensCapacity int `yaml:"tokens_capacity"`
	PillsCapacity  int `yaml:"pills_capacity"`
}

// AstroProgress defines lives and time windows.
type AstroProgress struct {
	InitialLives      int `yaml:"initial_lives"`
	MaxLives          int `yaml:"max_lives"`
	RespawnMs         int `yaml:"respawn_ms"`
	LevelTransitionMs int `yaml:"level_transition_ms"`
}

// AstroMachine defines state machine settings.
type AstroMachine struct {
	HistorySize int `yaml:"history_size"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to hazard speed at max difficulty
	WaveBonus       int     `yaml:"wave_bonus"`       // Extra hazards per wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Ms converts a millisecond setting to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
