// internal/system/enemy.go
package system

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
)

// EnemySystem moves enemies and fires their weapons.
type EnemySystem struct {
	world      *entity.World
	cfg        *config.Config
	weapons    *WeaponSystem
	dispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, cfg *config.Config, weapons *WeaponSystem, dispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{world: world, cfg: cfg, weapons: weapons, dispatcher: dispatcher}
}

func (s *EnemySystem) Update(deltaTime float64) {
	eb := &s.cfg.EnemyBehavior
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i].Combatant
		prev := e.Position
		if !advancePath(e, deltaTime) {
			speed := eb.SlowHoverSpeed
			if e.Position.Y < eb.MovementThresholdY {
				speed = eb.FastDescentSpeed
			}
			e.Position.Y += e.Speed(speed) * deltaTime
		}
		observeVelocity(e, prev, deltaTime)
		s.fire(e, deltaTime)
	}

	// Сбежавшие враги не попадают в очередь призраков.
	s.world.Enemies = retain(s.world.Enemies, func(e *component.Enemy) bool {
		if e.Position.Y <= eb.ScreenBoundaryBottom {
			return true
		}
		s.world.Escaped++
		s.dispatcher.Dispatch(event.EnemyEscaped, event.PositionData{Position: e.Position})
		return false
	})
}

func (s *EnemySystem) fire(e *component.Combatant, deltaTime float64) {
	e.FireTimer -= deltaTime
	if e.FireTimer > 0 || e.Position.Y <= s.cfg.EnemyBehavior.FireThresholdY {
		return
	}
	weapon, ok := e.NextWeapon()
	if !ok {
		return
	}
	e.FireTimer = e.Kind.Profile(&s.cfg.Entities).FireInterval

	s.weapons.Fire(Shot{
		Origin:           e.Position,
		Owner:            defs.OwnerEnemy,
		Weapon:           weapon,
		Aim:              s.aimFor(e.Kind),
		DamageMultiplier: s.weapons.DamageMultiplier(defs.OwnerEnemy),
	})
}

// aimFor: снайперы стреляют на упреждение, элита прямо в игрока, остальные вниз.
func (s *EnemySystem) aimFor(kind defs.EntityKind) Aim {
	player := &s.world.Player
	switch kind {
	case defs.Sniper:
		return Lead(player.Target())
	case defs.Elite:
		return AtPoint(player.Position)
	default:
		return StraightDown()
	}
}
