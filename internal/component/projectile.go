// internal/component/projectile.go
package component

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Damage   float64
	Weapon   defs.WeaponKind
	Owner    defs.Owner

	Piercing        bool
	Homing          bool
	ExplosionRadius float64 // 0 - без взрыва

	// LockedTarget is a weak reference: it is checked against the live
	// enemy list every tick before use.
	LockedTarget types.EntityID
	Age          float64
}

// AOE reports whether the projectile explodes on contact.
func (p *Projectile) AOE() bool {
	return p.ExplosionRadius > 0
}
