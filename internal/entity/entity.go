// Package entity implements the per-frame simulated objects of an astro
// session and the edge spawner that produces them.
package entity

import (
	"math"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// PhaseStep is the cosmetic pulse advance per tick.
const PhaseStep = 0.05

// pulseAmplitude is the fraction by which the render radius oscillates.
const pulseAmplitude = 0.15

// Kind identifies the variant of an entity.
type Kind int

const (
	KindShip Kind = iota
	KindToken
	KindPill
	KindProjectile
	KindHazard
)

// Kinds lists every entity kind in fixed update order.
var Kinds = []Kind{KindShip, KindProjectile, KindToken, KindPill, KindHazard}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindToken:
		return "token"
	case KindPill:
		return "pill"
	case KindProjectile:
		return "projectile"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// IsPickup reports whether the kind can be collected by the ship.
func (k Kind) IsPickup() bool {
	return k == KindToken || k == KindPill
}

// Event describes what happened to an entity.
type Event int

const (
	EventSpawned Event = iota
	EventCollected
	EventExpired
	EventDestroyed
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventSpawned:
		return "spawned"
	case EventCollected:
		return "collected"
	case EventExpired:
		return "expired"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Entity is anything simulated per frame.
// Inactive entities are skipped by collisions and rendering and are removed
// by the session sweep at the end of the tick.
type Entity struct {
	ID        uint64
	Kind      Kind
	Pos       core.Vec2
	Vel       core.Vec2
	Radius    float64
	CreatedAt time.Duration // game time
	TTL       time.Duration // 0 means the entity never expires
	Active    bool
	Phase     float64
	Heading   float64
	Color     core.Color
	Tier      int
}

// Expired reports whether the lifetime has elapsed at now.
func (e *Entity) Expired(now time.Duration) bool {
	return e.TTL > 0 && now-e.CreatedAt > e.TTL
}

// Destroy marks the entity for removal.
// Returns false if it was already inactive; entities never come back.
func (e *Entity) Destroy() bool {
	if !e.Active {
		return false
	}
	e.Active = false
	return true
}

// RenderRadius is the pulsed radius used for drawing only.
func (e *Entity) RenderRadius() float64 {
	return e.Radius * (1 + pulseAmplitude*math.Sin(e.Phase))
}

// Tick advances the entity by one fixed frame:
// integrate, wrap each axis, check expiry, advance the pulse.
// Returns true when the entity expired during this tick.
func Tick(e *Entity, now time.Duration, b core.Bounds) bool {
	if !e.Active {
		return false
	}

	e.Pos = e.Pos.Add(e.Vel)
	e.Pos.X = core.WrapAxis(e.Pos.X, b.Width, e.Radius)
	e.Pos.Y = core.WrapAxis(e.Pos.Y, b.Height, e.Radius)

	if e.Expired(now) {
		e.Active = false
		return true
	}

	e.Phase += PhaseStep
	return false
}

// Collides reports whether two active entities overlap using base radii.
func Collides(a, b *Entity) bool {
	if !a.Active || !b.Active {
		return false
	}
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	r := a.Radius + b.Radius
	return dx*dx+dy*dy <= r*r
}
