package sim

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
	"github.com/vovakirdan/astro-arcade/internal/machine"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

func testConfig() config.AstroConfig {
	cfg := config.DefaultAstroConfig()
	cfg.World.CountdownTicks = 3
	return cfg
}

func newSession(t *testing.T, cfg config.AstroConfig) *Session {
	t.Helper()
	s := NewWithConfig(cfg)
	s.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
		Wallet:   "wallet-1",
	})
	return s
}

// play drives a fresh session into PLAYING.
func play(t *testing.T, s *Session) {
	t.Helper()
	s.Step(core.Frame(core.ActionStart))
	s.Step(core.Frame(core.ActionStart))
	for i := 0; i < 1000 && s.Phase() != machine.Playing; i++ {
		s.Step(core.NewInputFrame())
	}
	if s.Phase() != machine.Playing {
		t.Fatalf("session did not reach PLAYING, got %s", s.Phase())
	}
}

// recorder captures hook calls.
type recorder struct {
	states  []machine.Transition
	events  map[entity.Event][]entity.Entity
	lives   []int
	ends    []Summary
	levels  []int
	awarded []int
}

func (r *recorder) hooks() Hooks {
	r.events = make(map[entity.Event][]entity.Entity)
	return Hooks{
		OnStateChange: func(cur, prev machine.State) {
			r.states = append(r.states, machine.Transition{From: prev, To: cur})
		},
		OnEntityEvent: func(_ entity.Kind, e entity.Entity, ev entity.Event) {
			r.events[ev] = append(r.events[ev], e)
		},
		OnLifeLost:     func(n int) { r.lives = append(r.lives, n) },
		OnSessionEnd:   func(sum Summary) { r.ends = append(r.ends, sum) },
		OnLevelChange:  func(lvl int) { r.levels = append(r.levels, lvl) },
		OnTokenAwarded: func(n int) { r.awarded = append(r.awarded, n) },
	}
}

func TestSessionReset(t *testing.T) {
	s := newSession(t, testConfig())

	if s.Phase() != machine.Initial {
		t.Errorf("Phase() = %s, expected INITIAL", s.Phase())
	}
	st := s.State()
	if st.Score != 0 || st.Level != 1 || st.Lives != 3 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v after Reset", st)
	}
	inv := s.Inventory()
	if inv[inventory.Ships] != 3 || inv[inventory.Tokens] != 0 || inv[inventory.Pills] != 0 {
		t.Errorf("Inventory() = %v after Reset", inv)
	}
}

func TestStartRequiresWallet(t *testing.T) {
	s := NewWithConfig(testConfig())
	s.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	s.Step(core.Frame(core.ActionStart))
	if s.Phase() != machine.Initial {
		t.Errorf("Phase() = %s without wallet, expected INITIAL", s.Phase())
	}
}

func TestCountdown(t *testing.T) {
	cfg := testConfig()
	cfg.World.CountdownTicks = 180
	s := newSession(t, cfg)

	s.Step(core.Frame(core.ActionStart))
	if s.Phase() != machine.ReadyToPlay {
		t.Fatalf("Phase() = %s, expected READY_TO_PLAY", s.Phase())
	}

	// Idle frames do not arm the countdown.
	for range 10 {
		s.Step(core.NewInputFrame())
	}
	if s.Phase() != machine.ReadyToPlay || s.Snapshot().Countdown != 0 {
		t.Fatal("countdown armed without Start")
	}

	s.Step(core.Frame(core.ActionStart))
	for range 178 {
		s.Step(core.Frame(core.ActionStart))
	}
	if s.Phase() != machine.ReadyToPlay {
		t.Fatalf("Phase() = %s before countdown end", s.Phase())
	}
	s.Step(core.NewInputFrame())
	if s.Phase() != machine.Playing {
		t.Errorf("Phase() = %s after countdown, expected PLAYING", s.Phase())
	}
}

func TestStartRunSpawnsShipAndWave(t *testing.T) {
	s := newSession(t, testConfig())
	rec := &recorder{}
	s.SetHooks(rec.hooks())
	play(t, s)

	if s.ship == nil || !s.ship.Active {
		t.Fatal("no ship after start")
	}
	if s.ship.Pos != s.bounds.Center() {
		t.Errorf("ship at %+v, expected center", s.ship.Pos)
	}
	if len(s.hazards) != 4 {
		t.Errorf("len(hazards) = %d, expected 4", len(s.hazards))
	}
	if got := len(rec.events[entity.EventSpawned]); got != 5 {
		t.Errorf("spawned events = %d, expected 5", got)
	}
}

func TestCommandsIgnoredInWrongState(t *testing.T) {
	s := newSession(t, testConfig())

	tests := []struct {
		name   string
		action core.Action
	}{
		{"pause", core.ActionPause},
		{"resume", core.ActionResume},
		{"fire", core.ActionFire},
		{"restart", core.ActionRestart},
		{"back", core.ActionBack},
		{"use ship", core.ActionUseShip},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Step(core.Frame(tc.action))
			if s.Phase() != machine.Initial {
				t.Errorf("%s in INITIAL moved to %s", tc.action, s.Phase())
			}
		})
	}
	if s.machine.Err() != nil {
		t.Errorf("ignored commands recorded error %v", s.machine.Err())
	}

	play(t, s)
	s.Step(core.Frame(core.ActionRestart, core.ActionBack, core.ActionStart))
	if s.Phase() != machine.Playing {
		t.Errorf("lifecycle command in PLAYING moved to %s", s.Phase())
	}
}

func TestPauseFreezesSession(t *testing.T) {
	s := newSession(t, testConfig())
	play(t, s)
	s.tracker.GrantShield(0, time.Hour)

	for range 30 {
		s.Step(core.Frame(core.ActionThrustUp))
	}
	s.Step(core.Frame(core.ActionPause))
	if s.Phase() != machine.Paused || !s.clock.Paused() {
		t.Fatalf("Phase() = %s, expected PAUSED with frozen clock", s.Phase())
	}

	before := s.Snapshot()
	for range 120 {
		s.Step(core.Frame(core.ActionFire, core.ActionThrustUp, core.ActionUseShip))
	}
	after := s.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}
	if before.Now != after.Now {
		t.Errorf("game time advanced while paused: %v -> %v", before.Now, after.Now)
	}
}

func TestPauseResumeMatchesUninterruptedRun(t *testing.T) {
	inputs := func(i int) core.InputFrame {
		f := core.NewInputFrame()
		if i%3 == 0 {
			f.Set(core.ActionThrustUp)
		}
		if i%40 < 8 {
			f.Set(core.ActionThrustLeft)
		}
		if i%11 == 0 {
			f.Set(core.ActionFire)
		}
		return f
	}

	a := newSession(t, testConfig())
	play(t, a)
	a.tracker.GrantShield(0, time.Hour)
	b := newSession(t, testConfig())
	play(t, b)
	b.tracker.GrantShield(0, time.Hour)

	for i := range 120 {
		a.Step(inputs(i))
		b.Step(inputs(i))
	}

	a.Step(core.Frame(core.ActionPause))
	for range 200 {
		a.Step(core.NewInputFrame())
	}
	a.Step(core.Frame(core.ActionResume))
	b.Step(core.NewInputFrame())

	for i := 120; i < 240; i++ {
		a.Step(inputs(i))
		b.Step(inputs(i))
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Errorf("pause/resume diverged: %d vs %d", sa.Hash(), sb.Hash())
	}
	if sa.Now != sb.Now {
		t.Errorf("game time diverged: %v vs %v", sa.Now, sb.Now)
	}
}

func TestHandlePlayerDeath(t *testing.T) {
	t.Run("last life ends session", func(t *testing.T) {
		s := newSession(t, testConfig())
		rec := &recorder{}
		s.SetHooks(rec.hooks())
		play(t, s)
		s.score = 140
		s.tracker.Lives = 1

		if s.HandlePlayerDeath() {
			t.Fatal("HandlePlayerDeath() = true with one life")
		}
		if s.Phase() != machine.GameOver {
			t.Errorf("Phase() = %s, expected GAME_OVER", s.Phase())
		}
		if len(rec.ends) != 1 || rec.ends[0].Score != 140 || rec.ends[0].LevelReached != 1 {
			t.Errorf("OnSessionEnd calls = %+v", rec.ends)
		}
		if sum, ok := s.LastSummary(); !ok || sum.Wallet != "wallet-1" || sum.Mode != "classic" {
			t.Errorf("LastSummary() = %+v, %v", sum, ok)
		}
		if len(rec.lives) != 1 || rec.lives[0] != 0 {
			t.Errorf("OnLifeLost calls = %v, expected [0]", rec.lives)
		}
	})

	t.Run("respawn with lives left", func(t *testing.T) {
		s := newSession(t, testConfig())
		play(t, s)

		if !s.HandlePlayerDeath() {
			t.Fatal("HandlePlayerDeath() = false with three lives")
		}
		if s.tracker.Lives != 2 || !s.tracker.IsRespawning {
			t.Errorf("lives=%d respawning=%v", s.tracker.Lives, s.tracker.IsRespawning)
		}
		if s.Phase() != machine.Playing {
			t.Errorf("Phase() = %s, expected PLAYING", s.Phase())
		}

		s.Step(core.NewInputFrame())
		if s.ship == nil || !s.ship.Active {
			t.Fatal("ship did not respawn")
		}
	})

	t.Run("ignored outside play", func(t *testing.T) {
		s := newSession(t, testConfig())
		if s.HandlePlayerDeath() || s.tracker.Lives != 3 {
			t.Error("HandlePlayerDeath() acted in INITIAL")
		}
	})
}

func TestRestartAndBackClearRun(t *testing.T) {
	s := newSession(t, testConfig())
	play(t, s)

	s.ledger.AddItem(inventory.Tokens, 7)
	s.score = 300
	for s.HandlePlayerDeath() {
	}
	if s.Phase() != machine.GameOver {
		t.Fatalf("Phase() = %s, expected GAME_OVER", s.Phase())
	}

	// Entities stay visible on the game over screen.
	s.Step(core.NewInputFrame())
	if len(s.hazards) == 0 {
		t.Error("world cleared on GAME_OVER")
	}

	s.Step(core.Frame(core.ActionRestart))
	if s.Phase() != machine.ReadyToPlay {
		t.Fatalf("Phase() = %s after restart, expected READY_TO_PLAY", s.Phase())
	}
	snap := s.Snapshot()
	if snap.Score != 0 || snap.Tokens != 0 || snap.Ships != 3 || snap.Lives != 3 || snap.Level != 1 || len(snap.Entities) != 0 {
		t.Errorf("restart left %+v", snap)
	}
	if _, ok := s.LastSummary(); !ok {
		t.Error("restart dropped the last summary")
	}

	s.Step(core.Frame(core.ActionBack))
	if s.Phase() != machine.Initial {
		t.Errorf("Phase() = %s after back, expected INITIAL", s.Phase())
	}
}

func TestPausedBackReturnsToMenu(t *testing.T) {
	s := newSession(t, testConfig())
	play(t, s)
	s.Step(core.Frame(core.ActionPause))
	s.Step(core.Frame(core.ActionBack))

	if s.Phase() != machine.Initial {
		t.Fatalf("Phase() = %s, expected INITIAL", s.Phase())
	}
	if s.clock.Paused() || s.clock.Now() != 0 {
		t.Error("clock not reset on return to menu")
	}
	if s.ship != nil || len(s.hazards) != 0 {
		t.Error("entities survived return to menu")
	}
}

func TestStateChangeHook(t *testing.T) {
	s := newSession(t, testConfig())
	rec := &recorder{}
	s.SetHooks(rec.hooks())

	play(t, s)
	s.Step(core.Frame(core.ActionPause))
	s.Step(core.Frame(core.ActionResume))

	expected := []machine.Transition{
		{From: machine.Initial, To: machine.ReadyToPlay},
		{From: machine.ReadyToPlay, To: machine.Playing},
		{From: machine.Playing, To: machine.Paused},
		{From: machine.Paused, To: machine.Playing},
	}
	if len(rec.states) != len(expected) {
		t.Fatalf("OnStateChange calls = %v", rec.states)
	}
	for i := range expected {
		if rec.states[i] != expected[i] {
			t.Errorf("call %d = %v, expected %v", i, rec.states[i], expected[i])
		}
	}
	if h := s.History(); len(h) != len(expected) {
		t.Errorf("len(History()) = %d, expected %d", len(h), len(expected))
	}
}

func TestSessionDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%4 == 0 {
			inputs[i].Set(core.ActionThrustUp)
		}
		if i%60 < 15 {
			inputs[i].Set(core.ActionThrustRight)
		}
		if i%9 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		s := newSession(t, testConfig())
		play(t, s)
		for _, in := range inputs {
			if s.Step(in).State.GameOver {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestSessionRender(t *testing.T) {
	s := newSession(t, testConfig())
	screen := core.NewScreen(80, 24)

	s.Render(screen)
	if !strings.Contains(screen.String(), "ASTRO") {
		t.Error("title not rendered in INITIAL")
	}

	play(t, s)
	s.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Ships 3") {
		t.Errorf("HUD missing:\n%s", out)
	}

	s.Step(core.Frame(core.ActionPause))
	s.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	small := core.NewScreen(24, 8)
	s.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small window message missing")
	}
}

func TestRegistryModes(t *testing.T) {
	for _, id := range []string{"classic", "hardcore"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestHardcoreConfig(t *testing.T) {
	cfg := loadConfig(ModeHardcore)
	if cfg.Progress.InitialLives != 1 || cfg.Inventory.ShipsDefault != 0 {
		t.Errorf("hardcore lives=%d ships=%d", cfg.Progress.InitialLives, cfg.Inventory.ShipsDefault)
	}
}
