package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses this to size its viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Wallet   string // Wallet address gating the play session
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Phase    string // Lifecycle state name
	Score    int    // Current score
	Level    int    // Current level
	Lives    int    // Remaining lives
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the session is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
