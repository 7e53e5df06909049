// internal/system/collision.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/pkg/geom"
)

// HitReport summarises one Resolve pass.
type HitReport struct {
	PlayerHit         bool
	PlayerHitPosition geom.Vec2
	// Strongest is the highest-severity friendly hit on an enemy this tick.
	Strongest    *event.WeaponHitData
	Removed      int
	EnemyHits    int
	FriendlyHits int
}

func (r *HitReport) recordWeaponHit(w defs.WeaponKind, pos geom.Vec2) {
	r.EnemyHits++
	if r.Strongest == nil || w.Severity() > r.Strongest.Weapon.Severity() {
		r.Strongest = &event.WeaponHitData{Weapon: w, Position: pos}
	}
}

// CollisionSystem matches projectiles against the opposing side and applies damage.
type CollisionSystem struct {
	world      *entity.World
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, cfg *config.Config, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// Resolve applies every hit of this tick, removes spent projectiles and
// dispatches at most one PlayerHit and one WeaponHit event.
func (s *CollisionSystem) Resolve() HitReport {
	var report HitReport
	var spent []int

	for i := range s.world.Projectiles {
		p := &s.world.Projectiles[i]
		var consumed bool
		if p.Owner.Friendly() {
			consumed = s.hitEnemies(p, &report)
		} else {
			consumed = s.hitAllies(p, &report)
		}
		if consumed {
			spent = append(spent, i)
		}
	}

	before := len(s.world.Projectiles)
	s.world.Projectiles = removeIndices(s.world.Projectiles, spent)
	report.Removed = before - len(s.world.Projectiles)

	if report.PlayerHit {
		s.dispatcher.Dispatch(event.PlayerHit, event.PositionData{Position: report.PlayerHitPosition})
	}
	if report.Strongest != nil {
		s.dispatcher.Dispatch(event.WeaponHit, *report.Strongest)
	}
	return report
}

// hitEnemies reports whether the projectile is used up.
func (s *CollisionSystem) hitEnemies(p *component.Projectile, report *HitReport) bool {
	flash := s.cfg.Animations.HitFlashDuration

	if p.AOE() {
		hit := false
		for i := range s.world.Enemies {
			e := &s.world.Enemies[i]
			if geom.Distance(p.Position, e.Position) <= p.ExplosionRadius {
				ApplyDamage(&e.Stats, &e.Anim, p.Damage, flash)
				report.recordWeaponHit(p.Weapon, e.Position)
				hit = true
			}
		}
		return hit
	}

	pr, er := s.cfg.Collision.ProjectileRadius, s.cfg.Collision.EnemyRadius
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !geom.CircleOverlap(p.Position, pr, e.Position, er) {
			continue
		}
		ApplyDamage(&e.Stats, &e.Anim, p.Damage, flash)
		report.recordWeaponHit(p.Weapon, e.Position)
		if !p.Piercing {
			return true
		}
	}
	return false
}

// hitAllies checks the player first, then ghosts. Players with running
// i-frames are not valid targets.
func (s *CollisionSystem) hitAllies(p *component.Projectile, report *HitReport) bool {
	flash := s.cfg.Animations.HitFlashDuration
	player := &s.world.Player
	cc := &s.cfg.Collision

	hitPlayer := func() {
		player.Stats.Health -= p.Damage
		player.HitFlashTimer = flash
		report.PlayerHit = true
		report.PlayerHitPosition = player.Position
		report.FriendlyHits++
	}

	if p.AOE() {
		hit := false
		if !player.Invulnerable() && geom.Distance(p.Position, player.Position) <= p.ExplosionRadius {
			hitPlayer()
			hit = true
		}
		for i := range s.world.Ghosts {
			g := &s.world.Ghosts[i]
			if !g.Active() {
				continue
			}
			if geom.Distance(p.Position, g.Position) <= p.ExplosionRadius {
				ApplyDamage(&g.Stats, &g.Anim, p.Damage, flash)
				report.FriendlyHits++
				hit = true
			}
		}
		return hit
	}

	if !player.Invulnerable() && geom.CircleOverlap(p.Position, cc.ProjectileRadius, player.Position, cc.PlayerRadius) {
		hitPlayer()
		if !p.Piercing {
			return true
		}
	}
	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if !g.Active() {
			continue
		}
		if !geom.CircleOverlap(p.Position, cc.ProjectileRadius, g.Position, cc.GhostRadius) {
			continue
		}
		ApplyDamage(&g.Stats, &g.Anim, p.Damage, flash)
		report.FriendlyHits++
		if !p.Piercing {
			return true
		}
	}
	return false
}
