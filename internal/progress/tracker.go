// Package progress tracks level, lives, and the time-gated respawn and
// level-transition windows of a session.
package progress

import "time"

// Config holds tracker timings and limits.
type Config struct {
	InitialLives    int
	MaxLives        int
	RespawnWindow   time.Duration
	LevelTransition time.Duration
}

// DefaultConfig returns the stock tracker settings.
func DefaultConfig() Config {
	return Config{
		InitialLives:    3,
		MaxLives:        5,
		RespawnWindow:   3000 * time.Millisecond,
		LevelTransition: 3000 * time.Millisecond,
	}
}

// Tracker holds level and lives. All deadlines are game-clock times,
// so they freeze while the session is paused.
type Tracker struct {
	Config Config

	Level             int
	Lives             int
	IsLevelTransition bool
	IsRespawning      bool
	InvulnerableUntil time.Duration // zero means none

	transitionUntil time.Duration
}

// New creates a tracker at level 1 with the initial lives.
func New(cfg Config) *Tracker {
	if cfg.InitialLives <= 0 {
		cfg.InitialLives = DefaultConfig().InitialLives
	}
	if cfg.MaxLives < cfg.InitialLives {
		cfg.MaxLives = cfg.InitialLives
	}
	t := &Tracker{Config: cfg}
	t.ResetLevel()
	return t
}

// ResetLevel restores level 1, initial lives and clears all windows.
func (t *Tracker) ResetLevel() {
	t.Level = 1
	t.Lives = t.Config.InitialLives
	t.IsLevelTransition = false
	t.IsRespawning = false
	t.InvulnerableUntil = 0
	t.transitionUntil = 0
}

// HandlePlayerDeath consumes a life. It returns false when no lives remain,
// otherwise it opens the respawn window and returns true.
func (t *Tracker) HandlePlayerDeath(now time.Duration) bool {
	if t.Lives > 0 {
		t.Lives--
	}
	if t.Lives == 0 {
		t.IsRespawning = false
		return false
	}
	t.IsRespawning = true
	t.InvulnerableUntil = now + t.Config.RespawnWindow
	return true
}

// IncrementLevel advances the level and opens the transition window.
func (t *Tracker) IncrementLevel(now time.Duration) int {
	t.Level++
	t.IsLevelTransition = true
	t.transitionUntil = now + t.Config.LevelTransition
	return t.Level
}

// TransitionUntil returns the end of the current level transition.
func (t *Tracker) TransitionUntil() time.Duration {
	return t.transitionUntil
}

// Update clears windows whose deadlines have passed.
// Returns true if a level transition ended on this call.
func (t *Tracker) Update(now time.Duration) bool {
	if t.IsRespawning && now >= t.InvulnerableUntil {
		t.IsRespawning = false
	}
	if t.InvulnerableUntil != 0 && now >= t.InvulnerableUntil {
		t.InvulnerableUntil = 0
	}
	if t.IsLevelTransition && now >= t.transitionUntil {
		t.IsLevelTransition = false
		t.transitionUntil = 0
		return true
	}
	return false
}

// IsInvulnerable reports whether ship collisions are suppressed at now.
func (t *Tracker) IsInvulnerable(now time.Duration) bool {
	return t.IsRespawning || now < t.InvulnerableUntil
}

// GrantShield extends invulnerability to at least now+d.
func (t *Tracker) GrantShield(now, d time.Duration) {
	if until := now + d; until > t.InvulnerableUntil {
		t.InvulnerableUntil = until
	}
}

// AddLife grants one life up to MaxLives. Returns false at the cap.
func (t *Tracker) AddLife() bool {
	if t.Lives >= t.Config.MaxLives {
		return false
	}
	t.Lives++
	return true
}

// Terminal reports whether the session has run out of lives.
func (t *Tracker) Terminal() bool {
	return t.Lives == 0
}
