// internal/component/visual.go
package component

import (
	"image/color"

	"go-ghost-shooter/pkg/geom"
)

// AnimState holds spawn, despawn and hit-flash timers plus the values the
// renderer reads.
type AnimState struct {
	Scale    float64
	Alpha    float64
	Rotation float64

	HitFlashTimer float64

	Spawning      bool
	SpawnTimer    float64
	SpawnDuration float64

	Despawning      bool
	DespawnTimer    float64
	DespawnDuration float64
}

// IdleAnim is a fully visible entity with no animation running.
func IdleAnim() AnimState {
	return AnimState{Scale: 1, Alpha: 1}
}

// SpawnAnim starts an entity small and transparent.
func SpawnAnim(duration, scaleStart float64) AnimState {
	return AnimState{
		Scale:         scaleStart,
		Alpha:         0,
		Spawning:      true,
		SpawnDuration: duration,
	}
}

// StartDespawn begins the shrink-out. It is a no-op if already despawning.
func (a *AnimState) StartDespawn(duration float64) {
	if a.Despawning {
		return
	}
	a.Spawning = false
	a.Despawning = true
	a.DespawnTimer = 0
	a.DespawnDuration = duration
}

// DespawnFinished reports whether the entity can be dropped.
func (a *AnimState) DespawnFinished() bool {
	return a.Despawning && a.DespawnTimer >= a.DespawnDuration
}

// Flash restarts the hit flash.
func (a *AnimState) Flash(duration float64) {
	a.HitFlashTimer = duration
}

// Particle - короткоживущая частица эффекта.
type Particle struct {
	Position    geom.Vec2
	Velocity    geom.Vec2
	Lifetime    float64
	MaxLifetime float64
	Size        float64
	Color       color.RGBA
}

// ScreenShake: the latest trigger replaces the current one.
type ScreenShake struct {
	Duration  float64
	Intensity float64
}
