package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAstro loads the astro configuration. Files overlay the hardcoded
// defaults, so a partial YAML only overrides the keys it names.
// Search order: customPath -> ~/.astro/configs/astro.yaml -> ./configs/astro.yaml -> embedded default
func LoadAstro(customPath string) (AstroConfig, error) {
	cfg := DefaultAstroConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultAstroConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("astro.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultAstroConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/astro.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultAstroConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAstroYAML, &cfg); err != nil {
		return DefaultAstroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astro", "configs", filename)
}

// ApplyAstroPreset modifies the config based on a difficulty preset.
func ApplyAstroPreset(cfg *AstroConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Progress.InitialLives = 5
		cfg.Progress.RespawnMs = 4000
		cfg.Hazards.MaxSpeed = 1.0
	case DifficultyHard:
		cfg.Progress.InitialLives = 2
		cfg.Progress.RespawnMs = 2000
		cfg.Hazards.MaxSpeed = 2.0
		cfg.Pickups.IntervalMs = 12000
	}
	if cfg.Progress.MaxLives < cfg.Progress.InitialLives {
		cfg.Progress.MaxLives = cfg.Progress.InitialLives
	}
}
