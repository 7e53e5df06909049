// internal/system/healer.go
package system

import (
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/pkg/geom"
)

// HealerSystem: вражеские лекари лечат соседей, призраки-лекари лечат игрока.
type HealerSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewHealerSystem(world *entity.World, cfg *config.Config) *HealerSystem {
	return &HealerSystem{world: world, cfg: cfg}
}

func (s *HealerSystem) Update(deltaTime float64) {
	hc := &s.cfg.Entities.Healing
	amount := hc.HealRate * deltaTime

	for i := range s.world.Enemies {
		h := &s.world.Enemies[i]
		if h.Kind != defs.Healer || !h.Stats.Alive() {
			continue
		}
		for j := range s.world.Enemies {
			if i == j {
				continue
			}
			e := &s.world.Enemies[j]
			if e.Stats.Alive() && geom.Distance(h.Position, e.Position) <= hc.HealRadius {
				e.Stats.Heal(amount)
			}
		}
	}

	p := &s.world.Player
	if !p.Stats.Alive() {
		return
	}
	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if g.Kind != defs.Healer || !g.Active() {
			continue
		}
		if geom.Distance(g.Position, p.Position) <= hc.HealRadius {
			p.Stats.Heal(amount)
		}
	}
}
