// internal/system/parry.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// parryReflectFactor: отражённая ракета летит обратно в полтора раза быстрее.
const parryReflectFactor = -1.5

// ParrySystem opens a short window in which enemy missiles near the player
// are turned around.
type ParrySystem struct {
	world      *entity.World
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewParrySystem(world *entity.World, cfg *config.Config, dispatcher *event.Dispatcher) *ParrySystem {
	return &ParrySystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// AttemptParry opens the parry window.
func (s *ParrySystem) AttemptParry() error {
	p := &s.world.Player
	pc := &s.cfg.Player
	switch {
	case s.world.State != component.Playing:
		return ErrGameOver
	case p.Parry.Active:
		return ErrParryActive
	case p.Parry.Cooldown > 0:
		return ErrParryCooldown
	case p.Energy < pc.ParryEnergyCost:
		return ErrInsufficientEnergy
	}
	p.Energy -= pc.ParryEnergyCost
	p.Parry.Active = true
	p.Parry.Window = pc.ParryWindow
	return nil
}

// Update ticks the window and the cooldown. An expired window starts the
// cooldown.
func (s *ParrySystem) Update(deltaTime float64) {
	ps := &s.world.Player.Parry
	ps.Cooldown = decay(ps.Cooldown, deltaTime)
	if !ps.Active {
		return
	}
	ps.Window -= deltaTime
	if ps.Window <= 0 {
		s.close()
	}
}

// Deflect turns every enemy missile in reach while the window is open and
// returns how many were reflected.
func (s *ParrySystem) Deflect() int {
	p := &s.world.Player
	if !p.Parry.Active {
		return 0
	}
	reach := s.cfg.Collision.PlayerRadius + s.cfg.Player.ParryReach

	count := 0
	for i := range s.world.Projectiles {
		pr := &s.world.Projectiles[i]
		if pr.Owner != defs.OwnerEnemy || pr.Weapon != defs.Missile {
			continue
		}
		if geom.Distance(pr.Position, p.Position) > reach {
			continue
		}
		pr.Owner = defs.OwnerPlayer
		pr.Velocity = pr.Velocity.Scale(parryReflectFactor)
		pr.Homing = true
		pr.LockedTarget = types.NoEntity
		pr.Age = 0
		count++
	}
	if count == 0 {
		return 0
	}

	s.close()
	s.dispatcher.Dispatch(event.ProjectileParried, event.ParryData{Position: p.Position, Count: count})
	return count
}

func (s *ParrySystem) close() {
	ps := &s.world.Player.Parry
	ps.Active = false
	ps.Window = 0
	ps.Cooldown = s.cfg.Player.ParryCooldown
}
