// internal/system/dash.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/pkg/geom"
)

// DashSystem moves the player a fixed distance over a short time with
// i-frames running.
type DashSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewDashSystem(world *entity.World, cfg *config.Config) *DashSystem {
	return &DashSystem{world: world, cfg: cfg}
}

// Dash starts a dash in dir. A zero direction dashes up.
func (s *DashSystem) Dash(dir geom.Vec2) error {
	dc := &s.cfg.Dash
	p := &s.world.Player
	switch {
	case s.world.State != component.Playing:
		return ErrGameOver
	case !dc.Enabled:
		return ErrDashDisabled
	case p.Dash.Active || p.Dash.Cooldown > 0:
		return ErrDashCooldown
	case p.Energy < dc.EnergyCost:
		return ErrInsufficientEnergy
	}

	dir = dir.Normalize()
	if dir.LenSq() < geom.Epsilon {
		dir = geom.V(0, -1)
	}
	p.Energy -= dc.EnergyCost
	p.Dash = component.DashState{
		Active:    true,
		Direction: dir,
		Remaining: dc.Duration,
		Cooldown:  dc.Cooldown,
	}
	p.IFrameTimer = max(p.IFrameTimer, dc.IFrameDuration)
	return nil
}

func (s *DashSystem) Update(deltaTime float64) {
	p := &s.world.Player
	d := &p.Dash
	d.Cooldown = decay(d.Cooldown, deltaTime)
	if !d.Active {
		return
	}

	step := min(deltaTime, d.Remaining)
	dc := &s.cfg.Dash
	speed := 0.0
	if dc.Duration > 0 {
		speed = dc.Distance / dc.Duration
	}
	p.Velocity = d.Direction.Scale(speed)
	p.Position = clampToPlayerArea(p.Position.Add(p.Velocity.Scale(step)), s.cfg)

	d.Remaining -= step
	if d.Remaining <= 0 {
		d.Active = false
		d.Remaining = 0
	}
}
