// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWeaponKind = errors.New("unknown weapon kind")
	ErrUnknownEntityKind = errors.New("unknown entity kind")
)

// WeaponKind is the closed set of weapons. Each kind maps to one emission
// behaviour: Bullet is a standard shot, Laser pierces, Missile homes, Plasma
// fans out, Bombs explode.
type WeaponKind int

const (
	Bullet WeaponKind = iota
	Laser
	Missile
	Plasma
	Bombs
)

var weaponNames = [...]string{"Bullet", "Laser", "Missile", "Plasma", "Bombs"}

// AllWeaponKinds in declaration order.
var AllWeaponKinds = []WeaponKind{Bullet, Laser, Missile, Plasma, Bombs}

func (k WeaponKind) String() string {
	if k < 0 || int(k) >= len(weaponNames) {
		return fmt.Sprintf("WeaponKind(%d)", int(k))
	}
	return weaponNames[k]
}

// ParseWeaponKind is case sensitive and accepts the names used in config and scripts.
func ParseWeaponKind(s string) (WeaponKind, error) {
	for i, name := range weaponNames {
		if name == s {
			return WeaponKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeaponKind, s)
}

func (k WeaponKind) Piercing() bool { return k == Laser }
func (k WeaponKind) Homing() bool   { return k == Missile }
func (k WeaponKind) Spread() bool   { return k == Plasma }
func (k WeaponKind) AOE() bool      { return k == Bombs }

// Severity ranks hit feedback: AOE > homing > piercing > spread > standard.
func (k WeaponKind) Severity() int {
	switch k {
	case Bombs:
		return 5
	case Missile:
		return 4
	case Laser:
		return 3
	case Plasma:
		return 2
	default:
		return 1
	}
}

// EntityKind is the closed set of enemy (and ghost) types.
type EntityKind int

const (
	BasicFighter EntityKind = iota
	Sniper
	Tank
	Elite
	Healer
	Splitter
)

var entityNames = [...]string{"BasicFighter", "Sniper", "Tank", "Elite", "Healer", "Splitter"}

// AllEntityKinds in declaration order.
var AllEntityKinds = []EntityKind{BasicFighter, Sniper, Tank, Elite, Healer, Splitter}

func (k EntityKind) String() string {
	if k < 0 || int(k) >= len(entityNames) {
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
	return entityNames[k]
}

// ParseEntityKind accepts the names used by wave scripts.
func ParseEntityKind(s string) (EntityKind, error) {
	for i, name := range entityNames {
		if name == s {
			return EntityKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEntityKind, s)
}

// Owner decides which side a projectile can damage.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerGhost
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "Player"
	case OwnerGhost:
		return "Ghost"
	case OwnerEnemy:
		return "Enemy"
	}
	return fmt.Sprintf("Owner(%d)", int(o))
}

// Friendly reports whether o fights on the player's side.
func (o Owner) Friendly() bool {
	return o != OwnerEnemy
}
