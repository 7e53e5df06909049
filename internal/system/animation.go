// internal/system/animation.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/utils"
)

// AnimationSystem advances spawn, despawn and hit-flash timers and drops
// ghosts whose despawn finished.
type AnimationSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewAnimationSystem(world *entity.World, cfg *config.Config) *AnimationSystem {
	return &AnimationSystem{world: world, cfg: cfg}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	s.world.Player.HitFlashTimer = decay(s.world.Player.HitFlashTimer, deltaTime)

	for i := range s.world.Enemies {
		a := &s.world.Enemies[i].Anim
		a.HitFlashTimer = decay(a.HitFlashTimer, deltaTime)
	}

	ac := &s.cfg.Animations
	for i := range s.world.Ghosts {
		a := &s.world.Ghosts[i].Anim
		a.HitFlashTimer = decay(a.HitFlashTimer, deltaTime)
		switch {
		case a.Despawning:
			advanceDespawn(a, deltaTime, ac)
		case a.Spawning:
			advanceSpawn(a, deltaTime, ac)
		}
	}

	s.world.Ghosts = retain(s.world.Ghosts, func(g *component.Ghost) bool {
		return !g.Anim.DespawnFinished()
	})
}

// advanceSpawn: elastic overshoot on scale, quad fade in, spin.
func advanceSpawn(a *component.AnimState, dt float64, ac *config.AnimationConfig) {
	a.SpawnTimer += dt
	if a.SpawnDuration <= 0 || a.SpawnTimer >= a.SpawnDuration {
		a.Spawning = false
		a.Scale, a.Alpha, a.Rotation = 1, 1, 0
		return
	}
	t := a.SpawnTimer / a.SpawnDuration
	a.Scale = utils.Lerp(ac.GhostSpawnScaleStart, 1, utils.EaseOutElastic(t))
	a.Alpha = utils.EaseOutQuad(t)
	a.Rotation = utils.NormalizeAngle(a.Rotation + ac.GhostSpawnRotationSpeed*dt)
}

// advanceDespawn: accelerating shrink and fade, faster spin.
func advanceDespawn(a *component.AnimState, dt float64, ac *config.AnimationConfig) {
	a.DespawnTimer += dt
	t := 1.0
	if a.DespawnDuration > 0 {
		t = utils.Clamp01(a.DespawnTimer / a.DespawnDuration)
	}
	eased := utils.EaseInQuad(t)
	a.Scale = utils.Lerp(1, 0, eased)
	a.Alpha = 1 - eased
	a.Rotation = utils.NormalizeAngle(a.Rotation + ac.GhostDespawnRotationSpeed*dt)
}

func decay(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
