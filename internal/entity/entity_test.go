package entity

import (
	"testing"
	"time"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

var screen = core.Bounds{Width: 800, Height: 600}

func TestTickIntegratesAndPulses(t *testing.T) {
	e := &Entity{Pos: core.Vec2{X: 100, Y: 100}, Vel: core.Vec2{X: 1.5, Y: -0.5}, Radius: 10, Active: true}

	if Tick(e, 0, screen) {
		t.Fatal("Tick() reported expiry for an infinite entity")
	}
	if e.Pos.X != 101.5 || e.Pos.Y != 99.5 {
		t.Errorf("Pos = %+v, expected (101.5, 99.5)", e.Pos)
	}
	if e.Phase != PhaseStep {
		t.Errorf("Phase = %v, expected %v", e.Phase, PhaseStep)
	}
}

func TestTickWrapsFromTopEdge(t *testing.T) {
	s := NewSpawner(7)
	e := s.SpawnAt(KindToken, EdgeTop, screen, 0)
	e.Vel = core.Vec2{X: 0, Y: 1.5}
	e.TTL = 0

	if e.Pos.Y != -e.Radius {
		t.Fatalf("Spawned Y = %v, expected %v", e.Pos.Y, -e.Radius)
	}

	wrapped := false
	prevY := e.Pos.Y
	for i := 0; i < 1000 && !wrapped; i++ {
		Tick(e, 0, screen)
		if e.Pos.Y < prevY {
			wrapped = true
			if prevY+e.Vel.Y <= screen.Height+e.Radius {
				t.Errorf("wrapped early at prevY=%v", prevY)
			}
			if e.Pos.Y != -e.Radius {
				t.Errorf("wrapped Y = %v, expected %v", e.Pos.Y, -e.Radius)
			}
		}
		if e.Pos.Y > screen.Height+e.Radius {
			t.Fatalf("Y = %v escaped past %v", e.Pos.Y, screen.Height+e.Radius)
		}
		prevY = e.Pos.Y
	}
	if !wrapped {
		t.Fatal("entity never wrapped")
	}
}

func TestTickWrapInvariant(t *testing.T) {
	s := NewSpawner(42)
	entities := make([]*Entity, 0, 64)
	for i := 0; i < 64; i++ {
		e := s.SpawnWithSpeed(Kinds[i%len(Kinds)], screen, 0, 25)
		e.TTL = 0
		entities = append(entities, e)
	}

	for frame := 0; frame < 500; frame++ {
		for _, e := range entities {
			Tick(e, 0, screen)
			if e.Pos.X < -e.Radius || e.Pos.X > screen.Width+e.Radius ||
				e.Pos.Y < -e.Radius || e.Pos.Y > screen.Height+e.Radius {
				t.Fatalf("frame %d: entity %d at %+v escaped bounds (r=%v)", frame, e.ID, e.Pos, e.Radius)
			}
		}
	}
}

func TestTickExpiry(t *testing.T) {
	e := &Entity{Radius: 10, Active: true, CreatedAt: 0, TTL: 15000 * time.Millisecond}

	if Tick(e, 15000*time.Millisecond, screen) || !e.Active {
		t.Fatal("entity expired at exactly its TTL")
	}
	if !Tick(e, 15001*time.Millisecond, screen) {
		t.Fatal("Tick() did not report expiry after TTL")
	}
	if e.Active {
		t.Error("entity still active after TTL")
	}
	phase := e.Phase
	pos := e.Pos
	if Tick(e, 20*time.Second, screen) {
		t.Error("Tick() on inactive entity reported expiry again")
	}
	if e.Phase != phase || e.Pos != pos {
		t.Error("inactive entity was integrated")
	}
}

func TestDestroyNeverResurrects(t *testing.T) {
	e := &Entity{Radius: 5, Active: true}
	if !e.Destroy() {
		t.Fatal("Destroy() on active entity returned false")
	}
	if e.Destroy() {
		t.Error("Destroy() on inactive entity returned true")
	}
	if e.Active {
		t.Error("entity active after Destroy")
	}
}

func TestCollidesUsesBaseRadius(t *testing.T) {
	a := &Entity{Pos: core.Vec2{X: 0, Y: 0}, Radius: 10, Active: true}
	b := &Entity{Pos: core.Vec2{X: 20, Y: 0}, Radius: 10, Active: true}

	tests := []struct {
		name     string
		bx       float64
		phase    float64
		expected bool
	}{
		{"touching", 20, 0, true},
		{"overlapping", 15, 0, true},
		{"apart", 20.5, 0, false},
		{"apart with pulse", 20.5, 1.57, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b.Pos.X = tc.bx
			a.Phase = tc.phase
			b.Phase = tc.phase
			if got := Collides(a, b); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}

	b.Pos.X = 0
	b.Active = false
	if Collides(a, b) {
		t.Error("Collides() with inactive entity returned true")
	}
}

func TestRenderRadiusPulses(t *testing.T) {
	e := &Entity{Radius: 10, Active: true}
	if e.RenderRadius() != 10 {
		t.Errorf("RenderRadius() at phase 0 = %v, expected 10", e.RenderRadius())
	}
	e.Phase = 1.5
	if e.RenderRadius() <= 10 {
		t.Errorf("RenderRadius() at phase 1.5 = %v, expected > 10", e.RenderRadius())
	}
	if e.Radius != 10 {
		t.Error("pulse modified base radius")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindShip, "ship"},
		{KindToken, "token"},
		{KindPill, "pill"},
		{KindProjectile, "projectile"},
		{KindHazard, "hazard"},
		{Kind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
	if !KindToken.IsPickup() || !KindPill.IsPickup() || KindHazard.IsPickup() {
		t.Error("IsPickup() misclassified kinds")
	}
}
