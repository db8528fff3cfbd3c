package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg AstroConfig
	if err := yaml.Unmarshal(defaultAstroYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAstroConfig()) {
		t.Errorf("embedded defaults differ from DefaultAstroConfig()\n got: %+v\nwant: %+v", cfg, DefaultAstroConfig())
	}
}

func TestLoadAstroCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astro.yaml")
	data := []byte("progress:\n  initial_lives: 4\npickups:\n  interval_ms: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAstro(path)
	if err != nil {
		t.Fatalf("LoadAstro() error = %v", err)
	}
	if cfg.Progress.InitialLives != 4 || cfg.Pickups.IntervalMs != 500 {
		t.Errorf("overrides not applied: lives=%d interval=%d", cfg.Progress.InitialLives, cfg.Pickups.IntervalMs)
	}
	if cfg.World.Width != 800 || cfg.Pickups.TTLMs != 15000 {
		t.Errorf("defaults lost: width=%v ttl=%d", cfg.World.Width, cfg.Pickups.TTLMs)
	}
}

func TestLoadAstroErrors(t *testing.T) {
	if _, err := LoadAstro(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadAstro() on missing file returned nil error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAstro(path)
	if err == nil {
		t.Error("LoadAstro() on malformed file returned nil error")
	}
	if cfg.World.Width != 800 {
		t.Error("LoadAstro() should return defaults alongside a parse error")
	}
}

func TestApplyAstroPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		lives   int
		initial float64
	}{
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.3},
		{DifficultyHard, true, 2, 0.7},
		{DifficultyFixed, false, 3, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAstroConfig()
			ApplyAstroPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Progress.InitialLives != tc.lives {
				t.Errorf("InitialLives = %d, expected %d", cfg.Progress.InitialLives, tc.lives)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Progress.MaxLives < cfg.Progress.InitialLives {
				t.Error("MaxLives below InitialLives")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}
