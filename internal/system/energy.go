// internal/system/energy.go
package system

import (
	"log"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
)

// EnergySystem drains energy for active ghosts and regenerates it.
type EnergySystem struct {
	world      *entity.World
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewEnergySystem(world *entity.World, cfg *config.Config, dispatcher *event.Dispatcher) *EnergySystem {
	return &EnergySystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// Update: на нуле энергии все призраки исчезают.
func (s *EnergySystem) Update(deltaTime float64) {
	p := &s.world.Player
	drain := 0.0
	for i := range s.world.Ghosts {
		if g := &s.world.Ghosts[i]; g.Active() {
			drain += g.EnergyDrain
		}
	}
	p.Energy -= drain * deltaTime

	if p.Energy <= 0 && drain > 0 {
		p.Energy = 0
		s.dismissAll()
		return
	}

	regen := s.cfg.Energy.RegenRateIdle
	if drain > 0 {
		regen = s.cfg.Energy.RegenRateActive
	}
	p.Energy = min(max(p.Energy+regen*deltaTime, 0), p.MaxEnergy)
}

func (s *EnergySystem) dismissAll() {
	n := 0
	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if !g.Active() {
			continue
		}
		g.Anim.StartDespawn(s.cfg.Animations.GhostDespawnDuration)
		s.dispatcher.Dispatch(event.GhostLost, event.GhostData{Kind: g.Kind, Position: g.Position})
		n++
	}
	log.Printf("EnergySystem: energy depleted, %d ghosts dismissed", n)
}
