// internal/system/ghost.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/pkg/geom"
)

// GhostSystem moves allied ghosts upward and fires at the nearest enemy.
type GhostSystem struct {
	world   *entity.World
	cfg     *config.Config
	weapons *WeaponSystem
}

func NewGhostSystem(world *entity.World, cfg *config.Config, weapons *WeaponSystem) *GhostSystem {
	return &GhostSystem{world: world, cfg: cfg, weapons: weapons}
}

func (s *GhostSystem) Update(deltaTime float64) {
	gb := &s.cfg.GhostBehavior
	targets := s.world.EnemyTargets()

	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if g.Anim.Spawning || g.Anim.Despawning {
			g.Velocity = geom.Vec2{}
			continue
		}
		prev := g.Position
		speed := gb.SlowHoverSpeed
		if g.Position.Y > gb.MovementThresholdY {
			speed = gb.FastAscentSpeed
		}
		g.Position.Y -= g.Speed(speed) * deltaTime
		observeVelocity(&g.Combatant, prev, deltaTime)
		s.fire(&g.Combatant, targets, deltaTime)
	}

	s.world.Ghosts = retain(s.world.Ghosts, func(g *component.Ghost) bool {
		return g.Position.Y >= gb.ScreenBoundaryTop
	})
}

func (s *GhostSystem) fire(g *component.Combatant, targets []component.TargetRef, deltaTime float64) {
	g.FireTimer -= deltaTime
	if g.FireTimer > 0 || len(targets) == 0 {
		return
	}
	positions := make([]geom.Vec2, len(targets))
	for i, t := range targets {
		positions[i] = t.Position
	}
	idx := geom.Nearest(g.Position, positions)
	if idx < 0 {
		return
	}
	weapon, ok := g.NextWeapon()
	if !ok {
		return
	}
	g.FireTimer = s.cfg.GhostBehavior.FireInterval

	s.weapons.Fire(Shot{
		Origin:           g.Position,
		Owner:            defs.OwnerGhost,
		Weapon:           weapon,
		Aim:              Lead(targets[idx]),
		DamageMultiplier: s.weapons.DamageMultiplier(defs.OwnerGhost),
		Targets:          targets,
	})
}
