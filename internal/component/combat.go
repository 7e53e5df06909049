// internal/component/combat.go
package component

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// Stats - здоровье и урон сущности
type Stats struct {
	Health    float64
	MaxHealth float64
	Damage    float64
}

// Alive reports whether health is above zero.
func (s *Stats) Alive() bool {
	return s.Health > 0
}

// Heal adds amount without exceeding MaxHealth.
func (s *Stats) Heal(amount float64) {
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// Combatant is the shape shared by enemies and ghosts.
type Combatant struct {
	ID       types.EntityID
	Position geom.Vec2
	Velocity geom.Vec2 // observed this tick, used for lead targeting
	Stats    Stats
	Kind     defs.EntityKind
	Weapons  []defs.WeaponKind
	// WeaponCursor selects the next loadout entry to fire.
	WeaponCursor int
	FireTimer    float64
	// SpeedFactor scales movement speed; zero means 1.
	SpeedFactor float64
	Movement    MovementState
	Anim        AnimState
}

// NextWeapon returns the loadout entry to fire and advances the cursor.
func (c *Combatant) NextWeapon() (defs.WeaponKind, bool) {
	if len(c.Weapons) == 0 {
		return 0, false
	}
	w := c.Weapons[c.WeaponCursor%len(c.Weapons)]
	c.WeaponCursor = (c.WeaponCursor + 1) % len(c.Weapons)
	return w, true
}

// TargetRef is a read-only view of a potential target for aiming.
type TargetRef struct {
	ID       types.EntityID
	Position geom.Vec2
	Velocity geom.Vec2
}

// Speed scales base by SpeedFactor.
func (c *Combatant) Speed(base float64) float64 {
	if c.SpeedFactor == 0 {
		return base
	}
	return base * c.SpeedFactor
}
