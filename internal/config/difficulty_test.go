package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultAstroConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		name      string
		gameLevel int
		expected  float64
	}{
		{"first level", 1, 0.0},
		{"midway", 6, 0.5},
		{"max", 11, 1.0},
		{"beyond max", 40, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(0, tc.gameLevel); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(0, %d) = %v, expected %v", tc.gameLevel, got, tc.expected)
			}
		})
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	if got := d.Level(500, 1); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(500, 1) = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultAstroConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.4)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true when disabled")
	}
	if got := d.Level(99999, 50); got != 0.4 {
		t.Errorf("Level() = %v, expected initial level 0.4", got)
	}
}

func TestDifficultySpeedAndWave(t *testing.T) {
	d := NewDifficultyManager(DefaultAstroConfig().Difficulty)

	if got := d.Speed(1.5, 0, 1); got != 1.5 {
		t.Errorf("Speed() at level 1 = %v, expected 1.5", got)
	}
	if got := d.Speed(1.5, 0, 11); got != 3.0 {
		t.Errorf("Speed() at max = %v, expected 3.0", got)
	}
	if got := d.WaveSize(4, 0, 1); got != 4 {
		t.Errorf("WaveSize() at level 1 = %d, expected 4", got)
	}
	if got := d.WaveSize(4, 0, 11); got != 8 {
		t.Errorf("WaveSize() at max = %d, expected 8", got)
	}
	if got := d.WaveSize(0, 0, 1); got != 1 {
		t.Errorf("WaveSize() floor = %d, expected 1", got)
	}
}
