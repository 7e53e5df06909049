// internal/system/movement_path.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/pkg/geom"
)

// advancePath moves c along its entry curve. It reports false once the
// entity is in free movement.
func advancePath(c *component.Combatant, deltaTime float64) bool {
	m := &c.Movement
	if m.Mode != component.FollowingPath {
		return false
	}
	if m.Path.Duration <= 0 {
		m.Progress = 1
	} else {
		m.Elapsed += deltaTime
		m.Progress = min(m.Elapsed/m.Path.Duration, 1)
	}
	c.Position = m.Path.At(m.Progress)
	if m.Progress >= 1 {
		m.Mode = component.FreeMovement
	}
	return true
}

// observeVelocity records the displacement of this tick as velocity so lead
// targeting sees path motion too.
func observeVelocity(c *component.Combatant, prev geom.Vec2, deltaTime float64) {
	if deltaTime <= 0 {
		c.Velocity = geom.Vec2{}
		return
	}
	c.Velocity = c.Position.Sub(prev).Scale(1 / deltaTime)
}
