package sim

import (
	"time"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
	"github.com/vovakirdan/astro-arcade/internal/machine"
)

// tick runs one frame of simulation. Entities are updated in fixed kind
// order; removals and additions are deferred to the end of the frame.
func (s *Session) tick() {
	s.clock.Step()
	s.ticks++
	now := s.clock.Now()

	if s.fireCooldown > 0 {
		s.fireCooldown--
	}
	if s.tracker.Update(now) {
		s.spawnWave()
	}

	s.updateShip(now)
	s.updateAll(s.projectiles, now)
	s.updateAll(s.pickups, now)
	s.updateAll(s.hazards, now)

	s.resolveCollisions(now)

	if s.machine.Current() == machine.Playing {
		s.schedulePickups(now)
		s.checkLevelClear(now)
	}

	s.sweep()
	s.flush()
}

func (s *Session) updateShip(now time.Duration) {
	ship := s.ship
	if ship == nil || !ship.Active {
		return
	}
	sc := s.cfg.Ship
	ship.Vel = ship.Vel.Scale(sc.Friction)
	if v := ship.Vel.Len(); v > sc.MaxSpeed && v > 0 {
		ship.Vel = ship.Vel.Scale(sc.MaxSpeed / v)
	}
	entity.Tick(ship, now, s.bounds)
}

func (s *Session) updateAll(list []*entity.Entity, now time.Duration) {
	for _, e := range list {
		if entity.Tick(e, now, s.bounds) {
			s.emit(e, entity.EventExpired)
		}
	}
}

func (s *Session) resolveCollisions(now time.Duration) {
	for _, p := range s.projectiles {
		if !p.Active {
			continue
		}
		for _, h := range s.hazards {
			if entity.Collides(p, h) {
				p.Destroy()
				s.emit(p, entity.EventDestroyed)
				s.breakHazard(h, now, true)
				break
			}
		}
	}

	ship := s.ship
	if ship == nil || !ship.Active {
		return
	}

	for _, k := range s.pickups {
		if entity.Collides(ship, k) {
			k.Destroy()
			s.collect(k)
		}
	}

	if s.tracker.IsInvulnerable(now) {
		return
	}
	for _, h := range s.hazards {
		if entity.Collides(ship, h) {
			s.breakHazard(h, now, false)
			s.HandlePlayerDeath()
			return
		}
	}
}

// breakHazard destroys h and queues its fragments.
func (s *Session) breakHazard(h *entity.Entity, now time.Duration, scored bool) {
	if !h.Destroy() {
		return
	}
	hc := s.cfg.Hazards
	if scored && h.Tier < len(hc.Scores) {
		s.score += hc.Scores[h.Tier]
	}
	s.emit(h, entity.EventDestroyed)

	next := h.Tier + 1
	if next >= len(hc.Radii) {
		return
	}
	speed := s.hazardSpeed()
	rng := s.spawner.RNG()
	for range hc.Split {
		vel := core.Vec2{X: rng.Range(-speed, speed), Y: rng.Range(-speed, speed)}
		f := s.spawner.New(entity.KindHazard, h.Pos, vel, now)
		f.Radius = hc.Radii[next]
		f.Tier = next
		s.queue(f)
	}
}

func (s *Session) collect(k *entity.Entity) {
	s.emit(k, entity.EventCollected)

	switch k.Kind {
	case entity.KindToken:
		v := s.cfg.Pickups.TokenValue
		s.ledger.AddItem(inventory.Tokens, v)
		s.tokensEarned = append(s.tokensEarned, v)
		if s.hooks.OnTokenAwarded != nil {
			s.hooks.OnTokenAwarded(v)
		}
	case entity.KindPill:
		s.ledger.AddItem(inventory.Pills, 1)
	}
}

// schedulePickups drops a token or pill once per interval of active time.
func (s *Session) schedulePickups(now time.Duration) {
	pc := s.cfg.Pickups
	if pc.IntervalMs <= 0 || now < s.nextPickupAt {
		return
	}
	s.nextPickupAt = now + config.Ms(pc.IntervalMs)

	total := pc.TokenWeight + pc.PillWeight
	if total <= 0 {
		return
	}
	kind := entity.KindToken
	if s.spawner.RNG().Intn(total) >= pc.TokenWeight {
		kind = entity.KindPill
	}
	s.queue(s.spawner.Spawn(kind, s.bounds, now))
}

// checkLevelClear advances the level once no hazard remains.
// The next wave spawns when the transition window closes.
func (s *Session) checkLevelClear(now time.Duration) {
	if s.tracker.IsLevelTransition {
		return
	}
	for _, h := range s.hazards {
		if h.Active {
			return
		}
	}
	for _, e := range s.pending {
		if e.Kind == entity.KindHazard {
			return
		}
	}

	lvl := s.tracker.IncrementLevel(now)
	s.ledger.AddItem(inventory.Ships, 1)
	if s.hooks.OnLevelChange != nil {
		s.hooks.OnLevelChange(lvl)
	}
}

func (s *Session) spawnWave() {
	hc := s.cfg.Hazards
	lvl := s.tracker.Level
	n := s.difficulty.WaveSize(hc.BaseWave+(lvl-1)*hc.PerLevel, s.score, lvl)
	speed := s.hazardSpeed()
	now := s.clock.Now()
	for range n {
		s.queue(s.spawner.SpawnWithSpeed(entity.KindHazard, s.bounds, now, speed))
	}
}

func (s *Session) hazardSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Hazards.MaxSpeed, s.score, s.tracker.Level)
}

func (s *Session) newShip(now time.Duration) *entity.Entity {
	return s.spawner.New(entity.KindShip, s.bounds.Center(), core.Vec2{}, now)
}

func (s *Session) queue(e *entity.Entity) {
	s.pending = append(s.pending, e)
}

// sweep drops inactive entities.
func (s *Session) sweep() {
	if s.ship != nil && !s.ship.Active {
		s.ship = nil
	}
	s.projectiles = sweepInactive(s.projectiles)
	s.pickups = sweepInactive(s.pickups)
	s.hazards = sweepInactive(s.hazards)
}

func sweepInactive(list []*entity.Entity) []*entity.Entity {
	active := list[:0]
	for _, e := range list {
		if e.Active {
			active = append(active, e)
		}
	}
	clear(list[len(active):])
	return active
}

// flush moves queued entities into the world.
func (s *Session) flush() {
	for _, e := range s.pending {
		switch e.Kind {
		case entity.KindShip:
			s.ship = e
		case entity.KindProjectile:
			s.projectiles = append(s.projectiles, e)
		case entity.KindToken, entity.KindPill:
			s.pickups = append(s.pickups, e)
		case entity.KindHazard:
			s.hazards = append(s.hazards, e)
		}
		s.emit(e, entity.EventSpawned)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

func (s *Session) emit(e *entity.Entity, ev entity.Event) {
	if s.hooks.OnEntityEvent != nil {
		s.hooks.OnEntityEvent(e.Kind, *e, ev)
	}
}
