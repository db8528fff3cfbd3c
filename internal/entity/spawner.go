package entity

import (
	"time"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// DefaultMaxSpeed bounds each velocity component of an edge spawn (units/frame).
const DefaultMaxSpeed = 1.5

// Edge is a side of the screen.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Profile holds the per-kind spawn attributes.
type Profile struct {
	Radius   float64
	TTL      time.Duration
	Color    core.Color
	MaxSpeed float64 // Velocity bound of edge spawns, 0 = DefaultMaxSpeed
}

// DefaultProfiles returns the stock attributes for every kind.
func DefaultProfiles() map[Kind]Profile {
	return map[Kind]Profile{
		KindShip:       {Radius: 12, Color: core.ColorBrightWhite},
		KindToken:      {Radius: 10, TTL: 15 * time.Second, Color: core.ColorBrightYellow, MaxSpeed: DefaultMaxSpeed},
		KindPill:       {Radius: 10, TTL: 15 * time.Second, Color: core.ColorBrightMagenta, MaxSpeed: DefaultMaxSpeed},
		KindProjectile: {Radius: 2, TTL: time.Second, Color: core.ColorBrightCyan},
		KindHazard:     {Radius: 40, Color: core.ColorGray, MaxSpeed: DefaultMaxSpeed},
	}
}

// Spawner creates entities with session-unique IDs.
type Spawner struct {
	Profiles map[Kind]Profile

	rng    *RNG
	nextID uint64
}

// NewSpawner creates a spawner with default profiles and the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		Profiles: DefaultProfiles(),
		rng:      NewRNG(seed),
	}
}

// Reset reseeds the RNG and restarts ID allocation.
func (s *Spawner) Reset(seed int64) {
	s.rng = NewRNG(seed)
	s.nextID = 0
}

// RNG exposes the spawner's random source so callers share one sequence.
func (s *Spawner) RNG() *RNG {
	return s.rng
}

// New creates an active entity of kind at pos with the kind's profile.
func (s *Spawner) New(kind Kind, pos, vel core.Vec2, now time.Duration) *Entity {
	p := s.Profiles[kind]
	s.nextID++
	return &Entity{
		ID:        s.nextID,
		Kind:      kind,
		Pos:       pos,
		Vel:       vel,
		Radius:    p.Radius,
		CreatedAt: now,
		TTL:       p.TTL,
		Active:    true,
		Color:     p.Color,
	}
}

// speed returns the velocity bound of kind.
func (s *Spawner) speed(kind Kind) float64 {
	if v := s.Profiles[kind].MaxSpeed; v > 0 {
		return v
	}
	return DefaultMaxSpeed
}

// Spawn places a new entity just outside a uniformly chosen screen edge,
// moving no faster than the kind's profile allows.
func (s *Spawner) Spawn(kind Kind, b core.Bounds, now time.Duration) *Entity {
	return s.SpawnWithSpeed(kind, b, now, s.speed(kind))
}

// SpawnWithSpeed is Spawn with an explicit velocity bound, for callers
// that scale speed at runtime.
func (s *Spawner) SpawnWithSpeed(kind Kind, b core.Bounds, now time.Duration, maxSpeed float64) *Entity {
	return s.spawnAt(kind, Edge(s.rng.Intn(4)), b, now, maxSpeed)
}

// SpawnAt places a new entity just outside the given edge, at a random
// position along it, with each velocity component in [-max, max) where
// max is the kind's profile speed.
func (s *Spawner) SpawnAt(kind Kind, edge Edge, b core.Bounds, now time.Duration) *Entity {
	return s.spawnAt(kind, edge, b, now, s.speed(kind))
}

func (s *Spawner) spawnAt(kind Kind, edge Edge, b core.Bounds, now time.Duration, maxSpeed float64) *Entity {
	r := s.Profiles[kind].Radius

	var pos core.Vec2
	switch edge {
	case EdgeTop:
		pos = core.Vec2{X: s.rng.Range(0, b.Width), Y: -r}
	case EdgeRight:
		pos = core.Vec2{X: b.Width + r, Y: s.rng.Range(0, b.Height)}
	case EdgeBottom:
		pos = core.Vec2{X: s.rng.Range(0, b.Width), Y: b.Height + r}
	default:
		pos = core.Vec2{X: -r, Y: s.rng.Range(0, b.Height)}
	}

	vel := core.Vec2{
		X: s.rng.Range(-maxSpeed, maxSpeed),
		Y: s.rng.Range(-maxSpeed, maxSpeed),
	}
	return s.New(kind, pos, vel, now)
}
