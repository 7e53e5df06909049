// internal/defs/enemies.go
package defs

import (
	"log"

	"go-ghost-shooter/internal/config"
)

// EntityProfile is the read-only stat block of an entity kind.
type EntityProfile struct {
	Kind         EntityKind
	Health       float64
	Damage       float64
	EnergyCost   float64
	FireInterval float64
	Weapons      []WeaponKind
}

// Profile looks up the stats of k. An unparseable loadout falls back to a
// single Bullet so a bad config never leaves an entity unarmed.
func (k EntityKind) Profile(cfg *config.EntitiesConfig) EntityProfile {
	s := k.stats(cfg)
	weapons, err := ParseLoadout(s.Weapons)
	if err != nil || len(weapons) == 0 {
		if err != nil {
			log.Printf("Defs: %s: %v, defaulting to Bullet", k, err)
		}
		weapons = []WeaponKind{Bullet}
	}
	return EntityProfile{
		Kind:         k,
		Health:       s.Health,
		Damage:       s.Damage,
		EnergyCost:   s.EnergyCost,
		FireInterval: s.FireInterval,
		Weapons:      weapons,
	}
}

// EnergyCost is the price of summoning k as a ghost.
func (k EntityKind) EnergyCost(cfg *config.EntitiesConfig) float64 {
	return k.stats(cfg).EnergyCost
}

func (k EntityKind) stats(cfg *config.EntitiesConfig) config.EntityStats {
	switch k {
	case Sniper:
		return cfg.Sniper
	case Tank:
		return cfg.Tank
	case Elite:
		return cfg.Elite
	case Healer:
		return cfg.Healer
	case Splitter:
		return cfg.Splitter
	default:
		return cfg.BasicFighter
	}
}
