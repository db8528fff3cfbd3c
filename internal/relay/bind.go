package relay

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/machine"
	"github.com/vovakirdan/astro-arcade/internal/sim"
)

// binding turns one session's hooks into relay events.
// Every run between READY_TO_PLAY and GAME_OVER gets its own session ID.
type binding struct {
	r      *Relay
	wallet string
	mode   string
	state  func() core.GameState
	id     string
}

// Bind returns hooks reporting a session of wallet in mode. state is read
// from inside the hooks, on the session's goroutine.
func (r *Relay) Bind(wallet, mode string, state func() core.GameState) sim.Hooks {
	b := &binding{r: r, wallet: wallet, mode: mode, state: state}
	return sim.Hooks{
		OnStateChange:  b.onStateChange,
		OnEntityEvent:  b.onEntityEvent,
		OnLifeLost:     func(int) { b.progress() },
		OnLevelChange:  func(int) { b.progress() },
		OnTokenAwarded: b.onTokenAwarded,
		OnSessionEnd:   b.onSessionEnd,
	}
}

func (b *binding) onStateChange(cur, prev machine.State) {
	switch {
	case cur == machine.Playing && prev == machine.ReadyToPlay:
		b.id = uuid.NewString()
		b.r.Send(StartedEvent{SessionID: b.id, Wallet: b.wallet, Mode: b.mode, At: b.r.wall.Now()})
	case cur == machine.Initial && b.id != "":
		b.r.Send(EndedEvent{SessionID: b.id, Abandoned: true, At: b.r.wall.Now()})
		b.id = ""
	}
}

func (b *binding) onEntityEvent(kind entity.Kind, _ entity.Entity, ev entity.Event) {
	if kind == entity.KindHazard && ev == entity.EventDestroyed {
		b.progress()
	}
}

func (b *binding) onTokenAwarded(amount int) {
	if b.id == "" {
		return
	}
	b.r.Send(TokenAwardedEvent{SessionID: b.id, Wallet: b.wallet, Amount: amount, At: b.r.wall.Now()})
}

func (b *binding) onSessionEnd(sum sim.Summary) {
	if b.id == "" {
		return
	}
	b.r.Send(EndedEvent{SessionID: b.id, Summary: sum, At: b.r.wall.Now()})
	b.id = ""
}

func (b *binding) progress() {
	if b.id == "" || b.state == nil {
		return
	}
	st := b.state()
	b.r.Send(ProgressEvent{SessionID: b.id, Score: st.Score, Level: st.Level, At: b.r.wall.Now()})
}
