// internal/defs/weapons.go
package defs

import (
	"fmt"

	"go-ghost-shooter/internal/config"
)

// WeaponProfile is the read-only stat block of a weapon kind.
type WeaponProfile struct {
	Kind            WeaponKind
	Damage          float64
	FireInterval    float64
	ProjectileSpeed float64
}

// Profile looks up the stats of k in the weapons table.
func (k WeaponKind) Profile(cfg *config.WeaponsConfig) WeaponProfile {
	var s config.WeaponStats
	switch k {
	case Bullet:
		s = cfg.Bullet
	case Laser:
		s = cfg.Laser
	case Missile:
		s = cfg.Missile
	case Plasma:
		s = cfg.Plasma
	case Bombs:
		s = cfg.Bombs
	}
	return WeaponProfile{
		Kind:            k,
		Damage:          s.Damage,
		FireInterval:    s.FireRate,
		ProjectileSpeed: s.ProjectileSpeed,
	}
}

// ParseLoadout converts weapon names from config into kinds.
func ParseLoadout(names []string) ([]WeaponKind, error) {
	out := make([]WeaponKind, 0, len(names))
	for _, n := range names {
		k, err := ParseWeaponKind(n)
		if err != nil {
			return nil, fmt.Errorf("invalid loadout: %w", err)
		}
		out = append(out, k)
	}
	return out, nil
}
