package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
)

// EntityState is the observable part of one entity.
type EntityState struct {
	ID     uint64
	Kind   entity.Kind
	X, Y   float64
	VX, VY float64
	Radius float64
	Tier   int
	Active bool
}

// Snapshot contains the session state for determinism checks and observers.
type Snapshot struct {
	Tick      uint64
	Now       time.Duration
	State     string
	Score     int
	Level     int
	Lives     int
	Ships     int
	Tokens    int
	Pills     int
	Countdown int

	// Entities in update order: ship, projectiles, pickups, hazards, pending.
	Entities []EntityState
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		Now:       s.clock.Now(),
		State:     s.machine.Current().String(),
		Score:     s.score,
		Level:     s.tracker.Level,
		Lives:     s.tracker.Lives,
		Ships:     s.ledger.Count(inventory.Ships),
		Tokens:    s.ledger.Count(inventory.Tokens),
		Pills:     s.ledger.Count(inventory.Pills),
		Countdown: s.countdown,
	}

	add := func(e *entity.Entity) {
		snap.Entities = append(snap.Entities, EntityState{
			ID:     e.ID,
			Kind:   e.Kind,
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			VX:     e.Vel.X,
			VY:     e.Vel.Y,
			Radius: e.Radius,
			Tier:   e.Tier,
			Active: e.Active,
		})
	}
	if s.ship != nil {
		add(s.ship)
	}
	for _, list := range [][]*entity.Entity{s.projectiles, s.pickups, s.hazards, s.pending} {
		for _, e := range list {
			add(e)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Now)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ships)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tokens)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pills)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Countdown) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, e := range snap.Entities {
		h = h*31 + e.ID
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
		h = h*31 + math.Float64bits(e.Radius)
		h = h*31 + uint64(e.Tier) //#nosec G115 -- hash computation
		if e.Active {
			h = h*31 + 1
		}
	}
	return h
}
