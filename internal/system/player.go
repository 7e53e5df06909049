// internal/system/player.go
package system

import (
	"fmt"
	"log"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/pkg/geom"
)

// PlayerSystem отвечает за движение игрока, его оружие и смерть.
type PlayerSystem struct {
	world      *entity.World
	cfg        *config.Config
	weapons    *WeaponSystem
	dispatcher *event.Dispatcher

	moveDir geom.Vec2
}

func NewPlayerSystem(world *entity.World, cfg *config.Config, weapons *WeaponSystem, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, cfg: cfg, weapons: weapons, dispatcher: dispatcher}
}

// Move sets the movement intent for the next update. A zero vector stops.
func (s *PlayerSystem) Move(dir geom.Vec2) {
	s.moveDir = dir.Normalize()
}

// Update moves the player and ticks weapon and i-frame timers. Movement is
// suspended while a dash runs.
func (s *PlayerSystem) Update(deltaTime float64) {
	p := &s.world.Player
	p.IFrameTimer = decay(p.IFrameTimer, deltaTime)
	for i := range p.FireTimers {
		p.FireTimers[i] = decay(p.FireTimers[i], deltaTime)
	}

	if p.Dash.Active {
		return
	}
	p.Velocity = s.moveDir.Scale(s.cfg.Player.MovementSpeed)
	p.Position = clampToPlayerArea(p.Position.Add(p.Velocity.Scale(deltaTime)), s.cfg)
}

// clampToPlayerArea keeps the player inside the lower half of the window.
func clampToPlayerArea(pos geom.Vec2, cfg *config.Config) geom.Vec2 {
	r := cfg.Collision.PlayerRadius
	w, h := cfg.Window.Width, cfg.Window.Height
	pos.X = min(max(pos.X, r), w-r)
	pos.Y = min(max(pos.Y, h/2), h-r)
	return pos
}

// FireWeapon fires the weapon in slot straight up. Missiles lock the nearest
// enemy.
func (s *PlayerSystem) FireWeapon(slot int) error {
	if s.world.State != component.Playing {
		return ErrGameOver
	}
	p := &s.world.Player
	if slot < 0 || slot >= len(p.Weapons) {
		return fmt.Errorf("slot %d: %w", slot, ErrWeaponSlot)
	}
	if p.FireTimers[slot] > 0 {
		return ErrWeaponNotReady
	}
	weapon := p.Weapons[slot]
	p.FireTimers[slot] = weapon.Profile(&s.cfg.Weapons).FireInterval

	s.weapons.Fire(Shot{
		Origin:           p.Position,
		Owner:            defs.OwnerPlayer,
		Weapon:           weapon,
		Aim:              StraightUp(),
		DamageMultiplier: s.weapons.DamageMultiplier(defs.OwnerPlayer),
		Targets:          s.world.EnemyTargets(),
	})
	return nil
}

// OnEvent обрабатывает PlayerHit: здоровье не уходит ниже нуля, смерть
// объявляется один раз.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.PlayerHit {
		return
	}
	p := &s.world.Player
	if p.Stats.Alive() || s.world.State != component.Playing {
		return
	}
	p.Stats.Health = 0
	s.world.State = component.GameOver
	log.Printf("PlayerSystem: player destroyed at %.1fs", s.world.GameTime)
	s.dispatcher.Dispatch(event.PlayerDied, event.PositionData{Position: p.Position})
}
