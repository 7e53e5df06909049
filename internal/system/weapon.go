// internal/system/weapon.go
package system

import (
	"math"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// AimKind - стратегия прицеливания
type AimKind int

const (
	AimUp AimKind = iota
	AimDown
	AimAt
	AimLead
)

// Aim is an aiming strategy plus its target data.
type Aim struct {
	Kind           AimKind
	Target         geom.Vec2
	TargetVelocity geom.Vec2
}

func StraightUp() Aim   { return Aim{Kind: AimUp} }
func StraightDown() Aim { return Aim{Kind: AimDown} }

func AtPoint(p geom.Vec2) Aim { return Aim{Kind: AimAt, Target: p} }

func Lead(t component.TargetRef) Aim {
	return Aim{Kind: AimLead, Target: t.Position, TargetVelocity: t.Velocity}
}

// Shot is one trigger pull.
type Shot struct {
	Origin           geom.Vec2
	Owner            defs.Owner
	Weapon           defs.WeaponKind
	Aim              Aim
	DamageMultiplier float64
	// Targets are the enemies a friendly homing shot may lock onto.
	Targets []component.TargetRef
}

// WeaponSystem is the single place projectiles are created.
type WeaponSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewWeaponSystem(world *entity.World, cfg *config.Config) *WeaponSystem {
	return &WeaponSystem{world: world, cfg: cfg}
}

// Fire emits the projectiles of one shot and returns how many were created.
func (s *WeaponSystem) Fire(shot Shot) int {
	profile := shot.Weapon.Profile(&s.cfg.Weapons)
	speed := profile.ProjectileSpeed
	base := aimVelocity(shot.Origin, shot.Aim, speed)

	p := component.Projectile{
		Position: shot.Origin,
		Velocity: base,
		Damage:   profile.Damage * shot.DamageMultiplier,
		Weapon:   shot.Weapon,
		Owner:    shot.Owner,
	}

	switch {
	case shot.Weapon.Piercing():
		p.Piercing = true
	case shot.Weapon.Homing():
		p.Homing = true
		p.LockedTarget = s.lockTarget(shot)
	case shot.Weapon.Spread():
		dir := base.Normalize()
		if dir.LenSq() < geom.Epsilon {
			return 0
		}
		spread := s.cfg.Combat.SpreadAngleDegrees * math.Pi / 180
		for _, angle := range [...]float64{-spread, 0, spread} {
			q := p
			q.Velocity = dir.Rotate(angle).Scale(speed)
			s.world.Projectiles = append(s.world.Projectiles, q)
		}
		return 3
	case shot.Weapon.AOE():
		p.ExplosionRadius = s.ExplosionRadius(shot.Owner)
	}

	s.world.Projectiles = append(s.world.Projectiles, p)
	return 1
}

// DamageMultiplier returns the configured fraction for a firer role.
func (s *WeaponSystem) DamageMultiplier(owner defs.Owner) float64 {
	switch owner {
	case defs.OwnerGhost:
		return s.cfg.Combat.GhostDamageMultiplier
	case defs.OwnerEnemy:
		return s.cfg.Combat.EnemyDamageMultiplier
	default:
		return s.cfg.Combat.PlayerDamageMultiplier
	}
}

// ExplosionRadius: player > ghost > enemy with the default tunables.
func (s *WeaponSystem) ExplosionRadius(owner defs.Owner) float64 {
	switch owner {
	case defs.OwnerGhost:
		return s.cfg.Combat.GhostExplosionRadius
	case defs.OwnerEnemy:
		return s.cfg.Combat.EnemyExplosionRadius
	default:
		return s.cfg.Combat.PlayerExplosionRadius
	}
}

// lockTarget picks the nearest target for friendly shots; enemy shots
// always lock the player.
func (s *WeaponSystem) lockTarget(shot Shot) types.EntityID {
	if shot.Owner == defs.OwnerEnemy {
		return s.world.Player.ID
	}
	return nearestTarget(shot.Origin, shot.Targets)
}

func nearestTarget(origin geom.Vec2, targets []component.TargetRef) types.EntityID {
	best := types.NoEntity
	bestDist := math.MaxFloat64
	for _, t := range targets {
		if d := geom.DistanceSq(origin, t.Position); d < bestDist {
			bestDist = d
			best = t.ID
		}
	}
	return best
}

func aimVelocity(origin geom.Vec2, aim Aim, speed float64) geom.Vec2 {
	switch aim.Kind {
	case AimDown:
		return geom.V(0, speed)
	case AimAt:
		return geom.DirectVelocity(origin, aim.Target, speed)
	case AimLead:
		return geom.LeadVelocity(origin, aim.Target, aim.TargetVelocity, speed)
	default:
		return geom.V(0, -speed)
	}
}
