// internal/system/projectile.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// ProjectileSystem steers homing projectiles, moves everything and drops
// projectiles that left the field or lived too long.
type ProjectileSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewProjectileSystem(world *entity.World, cfg *config.Config) *ProjectileSystem {
	return &ProjectileSystem{world: world, cfg: cfg}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	targets := s.world.EnemyTargets()
	positions := make([]geom.Vec2, len(targets))
	for i, t := range targets {
		positions[i] = t.Position
	}

	for i := range s.world.Projectiles {
		p := &s.world.Projectiles[i]
		p.Age += deltaTime

		if p.Homing {
			if target, ok := s.resolveTarget(p.Owner, &p.LockedTarget, p.Position, positions); ok {
				p.Velocity = s.steer(p.Position, p.Velocity, target, deltaTime)
			}
		}
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
	}

	pad := s.cfg.ProjectileBounds.OffScreenPadding
	w, h := s.cfg.Window.Width, s.cfg.Window.Height
	maxAge := s.cfg.Homing.MaxLifetime
	s.world.Projectiles = retain(s.world.Projectiles, func(p *component.Projectile) bool {
		inBounds := p.Position.X >= -pad && p.Position.X <= w+pad &&
			p.Position.Y >= -pad && p.Position.Y <= h+pad
		return inBounds && p.Age < maxAge
	})
}

// resolveTarget validates the lock and re-acquires the nearest enemy when
// the locked one is gone. ok is false when there is nothing to chase.
func (s *ProjectileSystem) resolveTarget(owner defs.Owner, lock *types.EntityID, from geom.Vec2, positions []geom.Vec2) (geom.Vec2, bool) {
	if owner == defs.OwnerEnemy {
		*lock = s.world.Player.ID
		return s.world.Player.Position, true
	}
	if idx := s.world.EnemyIndex(*lock); idx >= 0 {
		return s.world.Enemies[idx].Position, true
	}
	idx := geom.Nearest(from, positions)
	if idx < 0 {
		*lock = types.NoEntity
		return geom.Vec2{}, false
	}
	*lock = s.world.Enemies[idx].ID
	return positions[idx], true
}

// steer blends velocity toward the desired heading at a constant turn rate
// and caps the result at MaxSpeedFactor times the homing speed.
func (s *ProjectileSystem) steer(pos, vel, target geom.Vec2, dt float64) geom.Vec2 {
	to := target.Sub(pos)
	if to.Len() < 1 {
		return vel
	}
	hc := &s.cfg.Homing
	desired := to.Normalize().Scale(hc.Speed)
	vel = vel.Add(desired.Sub(vel).Scale(hc.TurnRate * dt))
	return vel.ClampLen(hc.Speed * hc.MaxSpeedFactor)
}
