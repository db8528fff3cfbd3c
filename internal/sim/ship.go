package sim

import (
	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/entity"
	"github.com/vovakirdan/astro-arcade/internal/inventory"
)

// useItems handles the item commands of one frame.
func (s *Session) useItems(in core.InputFrame) {
	// A spare ship is only spent when it can become a life.
	if in.Has(core.ActionUseShip) && s.tracker.Lives < s.tracker.Config.MaxLives {
		s.use(inventory.Ships)
	}
	if in.Has(core.ActionUseToken) {
		s.use(inventory.Tokens)
	}
	if in.Has(core.ActionUsePill) {
		s.use(inventory.Pills)
	}
}

// use consumes one unit of k and applies its effect.
func (s *Session) use(k inventory.Kind) bool {
	eff, ok := s.ledger.UseItem(k)
	if !ok {
		return false
	}

	switch eff {
	case inventory.EffectExtraLife:
		s.tracker.AddLife()
	case inventory.EffectBomb:
		for _, h := range s.hazards {
			if h.Destroy() {
				s.emit(h, entity.EventDestroyed)
			}
		}
	case inventory.EffectShield:
		s.tracker.GrantShield(s.clock.Now(), config.Ms(s.cfg.Pickups.ShieldMs))
	}
	return true
}

// control applies rotation, thrust and fire to the ship.
func (s *Session) control(in core.InputFrame) {
	ship := s.ship
	if ship == nil || !ship.Active {
		return
	}
	sc := s.cfg.Ship

	if in.Has(core.ActionThrustLeft) {
		ship.Heading -= sc.RotateSpeed
	}
	if in.Has(core.ActionThrustRight) {
		ship.Heading += sc.RotateSpeed
	}
	if in.Has(core.ActionThrustUp) {
		ship.Vel = ship.Vel.Add(core.FromAngle(ship.Heading, sc.Thrust))
	}
	if in.Has(core.ActionFire) && s.fireCooldown == 0 {
		s.fire(ship)
		s.fireCooldown = sc.FireCooldown
	}
}

// fire queues a projectile leaving the ship's nose.
func (s *Session) fire(ship *entity.Entity) {
	pc := s.cfg.Projectile
	pos := ship.Pos.Add(core.FromAngle(ship.Heading, ship.Radius))
	vel := ship.Vel.Add(core.FromAngle(ship.Heading, pc.Speed))

	p := s.spawner.New(entity.KindProjectile, pos, vel, s.clock.Now())
	p.Heading = ship.Heading
	s.queue(p)
}
