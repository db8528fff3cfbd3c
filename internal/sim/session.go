// Package sim implements the astro session: the lifecycle machine, the
// per-frame simulation tick and the coupling between entities, the
// inventory ledger and the progress tracker.
//
// A Session is owned by a single goroutine. Other components observe it
// through Hooks and snapshots, never by mutating its state.
package sim

import (
	"time"

	"github.com/vovakirdan/astro-arcade/internal/clock"
	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
	"github.com/vovakirdan/astro-arcade/internal/machine"
	"github.com/vovakirdan/astro-arcade/internal/progress"
)

// Summary is the final result of a run, captured on entering GAME_OVER.
type Summary struct {
	Wallet       string
	Mode         string
	Score        int
	LevelReached int
	TokensEarned []int
	Duration     time.Duration // active game time
}

// Hooks are optional notifications fired synchronously from Step.
// Implementations must not block; hand work off to another goroutine.
type Hooks struct {
	OnStateChange  func(current, previous machine.State)
	OnEntityEvent  func(kind entity.Kind, e entity.Entity, ev entity.Event)
	OnLifeLost     func(livesRemaining int)
	OnSessionEnd   func(summary Summary)
	OnLevelChange  func(newLevel int)
	OnTokenAwarded func(amount int)
}

// Session is one wallet's astro game.
type Session struct {
	mode     Mode
	cfg      config.AstroConfig
	fixedCfg bool
	runtime  core.RuntimeConfig
	hooks    Hooks
	wall     clock.TimeProvider

	machine    *machine.Machine
	clock      *clock.GameClock
	ledger     *inventory.Ledger
	tracker    *progress.Tracker
	difficulty *config.DifficultyManager
	spawner    *entity.Spawner
	bounds     core.Bounds

	// Entities by kind, in creation order. Pending entities join at the
	// end of the tick.
	ship        *entity.Entity
	projectiles []*entity.Entity
	pickups     []*entity.Entity
	hazards     []*entity.Entity
	pending     []*entity.Entity

	runs         uint64 // Runs started since Reset
	score        int
	tokensEarned []int
	ticks        uint64
	countdown    int
	fireCooldown int
	nextPickupAt time.Duration
	last         *Summary
}

// NewWithConfig creates a session that always uses cfg instead of loading
// configuration files on Reset.
func NewWithConfig(cfg config.AstroConfig) *Session {
	return &Session{mode: ModeClassic, cfg: cfg, fixedCfg: true, wall: clock.System{}}
}

// SetHooks replaces the notification hooks.
func (s *Session) SetHooks(h Hooks) {
	s.hooks = h
}

// SetTimeProvider sets the wall clock used for transition history.
// Takes effect on the next Reset.
func (s *Session) SetTimeProvider(tp clock.TimeProvider) {
	s.wall = tp
}

// ID returns the unique identifier for this game mode.
func (s *Session) ID() string {
	return s.mode.ID()
}

// Title returns the display name for this game mode.
func (s *Session) Title() string {
	return s.mode.Title()
}

// Reset initializes the session in the INITIAL state.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	if !s.fixedCfg {
		s.cfg = loadConfig(s.mode)
	}
	cfg := s.cfg
	if s.wall == nil {
		s.wall = clock.System{}
	}

	s.bounds = core.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}
	s.clock = clock.New(runtime.TickRate)
	s.ledger = inventory.New(ledgerLimits(cfg.Inventory))
	s.tracker = progress.New(trackerConfig(cfg.Progress))
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.spawner = entity.NewSpawner(runtime.Seed)
	s.spawner.Profiles = profiles(cfg)

	s.machine = machine.New(
		machine.WithHistorySize(cfg.Machine.HistorySize),
		machine.WithTimeProvider(s.wall),
	)
	s.machine.Subscribe(s.onTransition)

	s.clearRun()
	s.runs = 0
	s.last = nil
}

// onTransition couples lifecycle changes to the subsystems.
func (s *Session) onTransition(cur, prev machine.State) {
	switch cur {
	case machine.Playing:
		if prev == machine.Paused {
			s.clock.Resume()
		} else {
			s.startRun()
		}
	case machine.Paused:
		s.clock.Pause()
	case machine.GameOver:
		s.clock.Pause()
		s.finish()
	case machine.ReadyToPlay, machine.Initial:
		s.clearRun()
	}

	if s.hooks.OnStateChange != nil {
		s.hooks.OnStateChange(cur, prev)
	}
}

// clearRun drops all per-run state. Persisted scores are not touched.
func (s *Session) clearRun() {
	s.ship = nil
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	clear(s.pickups)
	s.pickups = s.pickups[:0]
	clear(s.hazards)
	s.hazards = s.hazards[:0]
	clear(s.pending)
	s.pending = s.pending[:0]

	s.ledger.Reset()
	s.tracker.ResetLevel()
	s.clock.Reset()

	s.score = 0
	s.tokensEarned = nil
	s.ticks = 0
	s.countdown = 0
	s.fireCooldown = 0
	s.nextPickupAt = 0
}

// startRun spawns the ship and the first wave.
func (s *Session) startRun() {
	s.clock.Reset()
	s.spawner.Reset(runSeed(s.runtime.Seed, s.runs))
	s.runs++
	s.queue(s.newShip(0))
	s.spawnWave()
	s.nextPickupAt = config.Ms(s.cfg.Pickups.IntervalMs)
	s.flush()
}

// runSeed derives the seed of the n-th run since Reset. Run 0 uses the
// configured seed; later runs differ but stay reproducible.
func runSeed(seed int64, n uint64) int64 {
	return int64(uint64(seed) + n*0x9E3779B97F4A7C15) //#nosec G115 -- wrapping is intended
}

// finish snapshots the run result and reports it.
func (s *Session) finish() {
	sum := Summary{
		Wallet:       s.runtime.Wallet,
		Mode:         s.ID(),
		Score:        s.score,
		LevelReached: s.tracker.Level,
		TokensEarned: append([]int(nil), s.tokensEarned...),
		Duration:     s.clock.Now(),
	}
	s.last = &sum
	if s.hooks.OnSessionEnd != nil {
		s.hooks.OnSessionEnd(sum)
	}
}

// Step advances the session by one frame. Commands not valid in the
// current state are ignored.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.dispatch(in)

	if s.machine.Current() == machine.ReadyToPlay && s.countdown > 0 {
		s.countdown--
		if s.countdown == 0 {
			_ = s.machine.To(machine.Playing)
		}
	}

	if s.machine.Current() == machine.Playing {
		s.tick()
	}

	return core.StepResult{State: s.State()}
}

// dispatch applies lifecycle commands first, then item use, then controls.
func (s *Session) dispatch(in core.InputFrame) {
	switch s.machine.Current() {
	case machine.Initial:
		if in.Has(core.ActionStart) && s.runtime.Wallet != "" {
			_ = s.machine.To(machine.ReadyToPlay)
		}

	case machine.ReadyToPlay:
		switch {
		case in.Has(core.ActionBack):
			_ = s.machine.To(machine.Initial)
		case in.Has(core.ActionStart) && s.countdown == 0:
			s.countdown = max(s.cfg.World.CountdownTicks, 1)
		}

	case machine.Playing:
		if in.Has(core.ActionPause) {
			_ = s.machine.To(machine.Paused)
			return
		}
		s.useItems(in)
		s.control(in)

	case machine.Paused:
		switch {
		case in.Has(core.ActionBack):
			_ = s.machine.To(machine.Initial)
		case in.Has(core.ActionResume), in.Has(core.ActionPause):
			_ = s.machine.To(machine.Playing)
		}

	case machine.GameOver:
		switch {
		case in.Has(core.ActionBack):
			_ = s.machine.To(machine.Initial)
		case in.Has(core.ActionRestart):
			_ = s.machine.To(machine.ReadyToPlay)
		}
	}
}

// HandlePlayerDeath consumes a life. With lives left the ship respawns at
// the center behind an invulnerability window and true is returned;
// otherwise the session moves to GAME_OVER and false is returned.
func (s *Session) HandlePlayerDeath() bool {
	if s.machine.Current() != machine.Playing {
		return false
	}

	now := s.clock.Now()
	alive := s.tracker.HandlePlayerDeath(now)
	if s.ship != nil && s.ship.Destroy() {
		s.emit(s.ship, entity.EventDestroyed)
	}
	if s.hooks.OnLifeLost != nil {
		s.hooks.OnLifeLost(s.tracker.Lives)
	}

	if !alive {
		_ = s.machine.To(machine.GameOver)
		return false
	}
	s.queue(s.newShip(now))
	return true
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	cur := s.machine.Current()
	return core.GameState{
		Phase:    cur.String(),
		Score:    s.score,
		Level:    s.tracker.Level,
		Lives:    s.tracker.Lives,
		GameOver: cur == machine.GameOver,
		Paused:   cur == machine.Paused,
	}
}

// Phase returns the lifecycle state.
func (s *Session) Phase() machine.State {
	return s.machine.Current()
}

// History returns the retained lifecycle transitions.
func (s *Session) History() []machine.Transition {
	return s.machine.History()
}

// Wallet returns the wallet the session is gated on.
func (s *Session) Wallet() string {
	return s.runtime.Wallet
}

// Inventory returns a copy of the ledger counts.
func (s *Session) Inventory() map[inventory.Kind]int {
	return s.ledger.Counts()
}

// LastSummary returns the result of the most recent finished run.
func (s *Session) LastSummary() (Summary, bool) {
	if s.last == nil {
		return Summary{}, false
	}
	return *s.last, true
}
