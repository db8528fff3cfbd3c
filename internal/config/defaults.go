package config

import (
	_ "embed"
)

//go:embed defaults/astro.yaml
var defaultAstroYAML []byte

// DefaultAstroConfig returns the hardcoded astro configuration.
func DefaultAstroConfig() AstroConfig {
	return AstroConfig{
		World: AstroWorld{
			Width:          800,
			Height:         600,
			CountdownTicks: 180,
		},
		Ship: AstroShip{
			Radius:       12,
			RotateSpeed:  0.1,
			Thrust:       0.15,
			Friction:     0.99,
			MaxSpeed:     6,
			FireCooldown: 10,
		},
		Projectile: AstroProjectile{
			Radius: 2,
			Speed:  8,
			TTLMs:  1000,
		},
		Hazards: AstroHazards{
			Radii:    []float64{40, 20, 10},
			Scores:   []int{20, 50, 100},
			Split:    2,
			BaseWave: 4,
			PerLevel: 2,
			MaxSpeed: 1.5,
		},
		Pickups: AstroPickups{
			IntervalMs:  8000,
			TTLMs:       15000,
			Radius:      10,
			MaxSpeed:    1.5,
			TokenWeight: 3,
			PillWeight:  1,
			TokenValue:  1,
			ShieldMs:    5000,
		},
		Inventory: AstroInventory{
			ShipsCapacity:  5,
			ShipsDefault:   3,
			TokensCapacity: 99,
			PillsCapacity:  99,
		},
		Progress: AstroProgress{
			InitialLives:      3,
			MaxLives:          5,
			RespawnMs:         3000,
			LevelTransitionMs: 3000,
		},
		Machine: AstroMachine{
			HistorySize: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				WaveBonus:       4,
			},
		},
	}
}
