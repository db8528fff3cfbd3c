package sim

import (
	"github.com/vovakirdan/astro-arcade/internal/clock"
	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
	"github.com/vovakirdan/astro-arcade/internal/progress"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

// Mode selects a rule set.
type Mode int

const (
	ModeClassic  Mode = iota // Stock lives and waves
	ModeHardcore             // One life, faster hazards, no spare ships
)

// ID returns the registry identifier of the mode.
func (m Mode) ID() string {
	if m == ModeHardcore {
		return "hardcore"
	}
	return "classic"
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	if m == ModeHardcore {
		return "Astro (Hardcore)"
	}
	return "Astro"
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a classic session. Configuration is loaded on Reset.
func New() *Session {
	return &Session{mode: ModeClassic, wall: clock.System{}}
}

// NewHardcore creates a hardcore session.
func NewHardcore() *Session {
	return &Session{mode: ModeHardcore, wall: clock.System{}}
}

func loadConfig(mode Mode) config.AstroConfig {
	cfg, err := config.LoadAstro(configPath)
	if err != nil {
		cfg = config.DefaultAstroConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAstroPreset(&cfg, difficultyPreset)
	}
	if mode == ModeHardcore {
		config.ApplyAstroPreset(&cfg, config.DifficultyHard)
		cfg.Progress.InitialLives = 1
		cfg.Inventory.ShipsDefault = 0
	}
	return cfg
}

func ledgerLimits(c config.AstroInventory) map[inventory.Kind]inventory.Limits {
	return map[inventory.Kind]inventory.Limits{
		inventory.Ships:  {Capacity: c.ShipsCapacity, Default: c.ShipsDefault},
		inventory.Tokens: {Capacity: c.TokensCapacity},
		inventory.Pills:  {Capacity: c.PillsCapacity},
	}
}

func trackerConfig(c config.AstroProgress) progress.Config {
	return progress.Config{
		InitialLives:    c.InitialLives,
		MaxLives:        c.MaxLives,
		RespawnWindow:   config.Ms(c.RespawnMs),
		LevelTransition: config.Ms(c.LevelTransitionMs),
	}
}

func profiles(cfg config.AstroConfig) map[entity.Kind]entity.Profile {
	p := entity.DefaultProfiles()
	set := func(k entity.Kind, radius float64, ttlMs int) {
		prof := p[k]
		if radius > 0 {
			prof.Radius = radius
		}
		prof.TTL = config.Ms(ttlMs)
		p[k] = prof
	}

	set(entity.KindShip, cfg.Ship.Radius, 0)
	set(entity.KindProjectile, cfg.Projectile.Radius, cfg.Projectile.TTLMs)
	set(entity.KindToken, cfg.Pickups.Radius, cfg.Pickups.TTLMs)
	set(entity.KindPill, cfg.Pickups.Radius, cfg.Pickups.TTLMs)
	if len(cfg.Hazards.Radii) > 0 {
		set(entity.KindHazard, cfg.Hazards.Radii[0], 0)
	}

	speed := func(k entity.Kind, v float64) {
		prof := p[k]
		prof.MaxSpeed = v
		p[k] = prof
	}
	speed(entity.KindToken, cfg.Pickups.MaxSpeed)
	speed(entity.KindPill, cfg.Pickups.MaxSpeed)
	speed(entity.KindHazard, cfg.Hazards.MaxSpeed)
	return p
}

// Register the modes with the registry
func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("hardcore", func() registry.Game {
		return NewHardcore()
	})
}
