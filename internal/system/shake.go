// internal/system/shake.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/utils"
	"go-ghost-shooter/pkg/geom"
)

// ShakeSystem drives camera shake. The latest trigger replaces whatever is
// running.
type ShakeSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewShakeSystem(world *entity.World, cfg *config.Config) *ShakeSystem {
	return &ShakeSystem{world: world, cfg: cfg}
}

func (s *ShakeSystem) OnEvent(e event.Event) {
	sc := &s.cfg.ScreenShake
	switch e.Type {
	case event.WeaponHit:
		d, _ := e.Data.(event.WeaponHitData)
		s.trigger(sc.WeaponHitDuration, s.hitIntensity(d.Weapon))
	case event.EnemyKilled:
		s.trigger(sc.EnemyDeathDuration, sc.EnemyDeathIntensity)
	case event.ProjectileParried:
		s.trigger(sc.ParryDuration, sc.ParryIntensity)
	case event.PlayerHit:
		s.trigger(sc.PlayerHitDuration, sc.PlayerHitIntensity)
	}
}

func (s *ShakeSystem) hitIntensity(w defs.WeaponKind) float64 {
	sc := &s.cfg.ScreenShake
	switch w {
	case defs.Laser:
		return sc.LaserHitIntensity
	case defs.Missile:
		return sc.MissileHitIntensity
	case defs.Plasma:
		return sc.PlasmaHitIntensity
	case defs.Bombs:
		return sc.BombHitIntensity
	default:
		return sc.BulletHitIntensity
	}
}

func (s *ShakeSystem) trigger(duration, intensity float64) {
	s.world.Shake = component.ScreenShake{Duration: duration, Intensity: intensity}
}

func (s *ShakeSystem) Update(deltaTime float64) {
	sh := &s.world.Shake
	sh.Duration = decay(sh.Duration, deltaTime)
	if sh.Duration == 0 {
		sh.Intensity = 0
	}
}

// Offset returns a random camera offset for the current frame.
func (s *ShakeSystem) Offset(rng *utils.PRNGService) geom.Vec2 {
	i := s.world.Shake.Intensity
	if s.world.Shake.Duration <= 0 || i <= 0 {
		return geom.Vec2{}
	}
	return geom.V(rng.Range(-i, i), rng.Range(-i, i))
}
