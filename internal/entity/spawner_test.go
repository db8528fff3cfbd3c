package entity

import (
	"testing"
	"time"
)

func TestSpawnAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		edge  Edge
		check func(e *Entity) bool
	}{
		{"top", EdgeTop, func(e *Entity) bool { return e.Pos.Y == -e.Radius && e.Pos.X >= 0 && e.Pos.X < screen.Width }},
		{"right", EdgeRight, func(e *Entity) bool {
			return e.Pos.X == screen.Width+e.Radius && e.Pos.Y >= 0 && e.Pos.Y < screen.Height
		}},
		{"bottom", EdgeBottom, func(e *Entity) bool { return e.Pos.Y == screen.Height+e.Radius }},
		{"left", EdgeLeft, func(e *Entity) bool { return e.Pos.X == -e.Radius }},
	}

	s := NewSpawner(3)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := s.SpawnAt(KindHazard, tc.edge, screen, 0)
			if !tc.check(e) {
				t.Errorf("SpawnAt(%s) placed entity at %+v", tc.name, e.Pos)
			}
		})
	}
}

func TestSpawnVelocityBounds(t *testing.T) {
	s := NewSpawner(11)
	edges := make(map[Edge]int)
	for i := 0; i < 2000; i++ {
		e := s.Spawn(KindPill, screen, 0)
		if e.Vel.X < -DefaultMaxSpeed || e.Vel.X > DefaultMaxSpeed ||
			e.Vel.Y < -DefaultMaxSpeed || e.Vel.Y > DefaultMaxSpeed {
			t.Fatalf("velocity %+v out of range", e.Vel)
		}
		switch {
		case e.Pos.Y == -e.Radius:
			edges[EdgeTop]++
		case e.Pos.X == screen.Width+e.Radius:
			edges[EdgeRight]++
		case e.Pos.Y == screen.Height+e.Radius:
			edges[EdgeBottom]++
		case e.Pos.X == -e.Radius:
			edges[EdgeLeft]++
		default:
			t.Fatalf("entity spawned on screen at %+v", e.Pos)
		}
	}
	if len(edges) != 4 {
		t.Errorf("expected all four edges, got %v", edges)
	}
	for edge, n := range edges {
		if n < 400 || n > 600 {
			t.Errorf("edge %d chosen %d times of 2000, expected about 500", edge, n)
		}
	}
}

func TestSpawnEdgesVaryAcrossSeeds(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 12345} {
		s := NewSpawner(seed)
		seen := make(map[spawnSide]bool)
		for i := 0; i < 100; i++ {
			seen[sideOf(s.Spawn(KindHazard, screen, 0))] = true
		}
		if len(seen) != 4 {
			t.Errorf("seed %d: spawns used edges %v, expected all four", seed, seen)
		}
	}
}

// spawnSide names the edge an entity was placed on.
type spawnSide string

func sideOf(e *Entity) spawnSide {
	switch {
	case e.Pos.Y == -e.Radius:
		return "top"
	case e.Pos.X == screen.Width+e.Radius:
		return "right"
	case e.Pos.Y == screen.Height+e.Radius:
		return "bottom"
	case e.Pos.X == -e.Radius:
		return "left"
	}
	return "none"
}

func TestSpawnSpeedPerKind(t *testing.T) {
	s := NewSpawner(5)
	hazard := s.Profiles[KindHazard]
	hazard.MaxSpeed = 0.25
	s.Profiles[KindHazard] = hazard

	for i := 0; i < 200; i++ {
		h := s.Spawn(KindHazard, screen, 0)
		if h.Vel.X < -0.25 || h.Vel.X >= 0.25 || h.Vel.Y < -0.25 || h.Vel.Y >= 0.25 {
			t.Fatalf("hazard velocity %+v exceeds profile speed 0.25", h.Vel)
		}
		fast := s.SpawnWithSpeed(KindHazard, screen, 0, 10)
		if fast.Vel.X < -10 || fast.Vel.X >= 10 {
			t.Fatalf("SpawnWithSpeed velocity %+v out of range", fast.Vel)
		}
	}

	// Kinds without a profile speed fall back to the default.
	e := s.Spawn(KindShip, screen, 0)
	if e.Vel.X < -DefaultMaxSpeed || e.Vel.X >= DefaultMaxSpeed {
		t.Errorf("ship velocity %+v exceeds DefaultMaxSpeed", e.Vel)
	}
}

func TestSpawnProfile(t *testing.T) {
	s := NewSpawner(1)
	now := 2 * time.Second
	e := s.Spawn(KindToken, screen, now)

	if !e.Active {
		t.Error("spawned entity inactive")
	}
	if e.Radius <= 0 {
		t.Errorf("Radius = %v, expected > 0", e.Radius)
	}
	if e.TTL != 15*time.Second {
		t.Errorf("TTL = %v, expected 15s", e.TTL)
	}
	if e.CreatedAt != now {
		t.Errorf("CreatedAt = %v, expected %v", e.CreatedAt, now)
	}
}

func TestSpawnerIDsAndDeterminism(t *testing.T) {
	a := NewSpawner(99)
	b := NewSpawner(99)

	for i := 1; i <= 10; i++ {
		ea := a.Spawn(KindHazard, screen, 0)
		eb := b.Spawn(KindHazard, screen, 0)
		if ea.ID != uint64(i) {
			t.Errorf("ID = %d, expected %d", ea.ID, i)
		}
		if ea.Pos != eb.Pos || ea.Vel != eb.Vel {
			t.Fatalf("same seed diverged at spawn %d", i)
		}
	}

	a.Reset(99)
	if e := a.Spawn(KindHazard, screen, 0); e.ID != 1 {
		t.Errorf("ID after Reset = %d, expected 1", e.ID)
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(0)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", f)
		}
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestRNGIntnUniform(t *testing.T) {
	tests := []struct {
		seed int64
		n    int
	}{
		{0, 2},
		{1, 4},
		{42, 4},
		{12345, 8},
	}

	for _, tc := range tests {
		r := NewRNG(tc.seed)
		counts := make([]int, tc.n)
		const draws = 8000
		for i := 0; i < draws; i++ {
			counts[r.Intn(tc.n)]++
		}
		want := draws / tc.n
		for v, c := range counts {
			if c < want*8/10 || c > want*12/10 {
				t.Errorf("seed %d: Intn(%d) returned %d %d times, expected about %d", tc.seed, tc.n, v, c, want)
			}
		}
	}
}

func TestRNGIntnNoShortCycle(t *testing.T) {
	// Every fourth draw must not repeat the same residue.
	r := NewRNG(7)
	first := make(map[int]bool)
	for i := 0; i < 400; i++ {
		v := r.Intn(4)
		if i%4 == 0 {
			first[v] = true
		}
	}
	if len(first) < 2 {
		t.Errorf("Intn(4) every fourth draw = %v, expected variation", first)
	}
}
