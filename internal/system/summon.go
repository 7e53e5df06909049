// internal/system/summon.go
package system

import (
	"fmt"
	"log"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/pkg/geom"
)

// SummonSystem turns queued captures into allied ghosts.
type SummonSystem struct {
	world      *entity.World
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewSummonSystem(world *entity.World, cfg *config.Config, dispatcher *event.Dispatcher) *SummonSystem {
	return &SummonSystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

// SummonGhost spawns one ghost of kind into the next slot of the current
// formation.
func (s *SummonSystem) SummonGhost(kind defs.EntityKind) error {
	if s.world.State != component.Playing {
		return ErrGameOver
	}
	p := &s.world.Player
	if !queued(p.AvailableGhosts, kind) {
		return fmt.Errorf("%s: %w", kind, ErrGhostNotQueued)
	}
	cost := kind.EnergyCost(&s.cfg.Entities)
	if p.Energy < cost {
		return fmt.Errorf("%s costs %.0f, have %.0f: %w", kind, cost, p.Energy, ErrInsufficientEnergy)
	}

	p.TakeGhost(kind)
	p.Energy -= cost

	slot := len(s.world.Ghosts)
	used := formation.Resolve(s.world.Formation, slot+1, &s.cfg.Formations)
	pos := formation.PositionFor(p.Position, slot, slot+1, used, &s.cfg.FormationSpacing, s.cfg.Window.Width)
	s.spawnGhost(kind, pos)
	return nil
}

// DeployFormation summons up to the optimal count of the current formation
// from the queue in one go. Nothing spawns unless the whole batch is
// affordable.
func (s *SummonSystem) DeployFormation() error {
	if s.world.State != component.Playing {
		return ErrGameOver
	}
	p := &s.world.Player
	queuedCount := len(p.AvailableGhosts)
	if queuedCount == 0 {
		return ErrNoGhosts
	}

	kind := formation.Resolve(s.world.Formation, queuedCount, &s.cfg.Formations)
	n := min(queuedCount, kind.OptimalCount(&s.cfg.Formations))
	batch := p.AvailableGhosts[:n]

	total := 0.0
	for _, k := range batch {
		total += k.EnergyCost(&s.cfg.Entities)
	}
	if p.Energy < total {
		return fmt.Errorf("formation of %d costs %.0f: %w", n, total, ErrInsufficientEnergy)
	}

	positions, _ := formation.Positions(p.Position, n, kind, &s.cfg.Formations, &s.cfg.FormationSpacing, s.cfg.Window.Width)
	kinds := append([]defs.EntityKind(nil), batch...)
	p.AvailableGhosts = append(p.AvailableGhosts[:0], p.AvailableGhosts[n:]...)
	p.Energy -= total

	for i, k := range kinds {
		s.spawnGhost(k, positions[i])
	}
	log.Printf("SummonSystem: deployed %d ghosts in %s", n, kind)
	return nil
}

// SwitchFormation changes the formation used by later summons.
func (s *SummonSystem) SwitchFormation(kind formation.Kind) error {
	n := len(s.world.Player.AvailableGhosts)
	if !kind.ValidFor(n, &s.cfg.Formations) {
		return fmt.Errorf("%s needs %d, have %d: %w", kind, kind.MinCount(&s.cfg.Formations), n, ErrFormationTooSmall)
	}
	s.world.Formation = kind
	return nil
}

// CancelSummon recalls every active ghost back into the queue.
func (s *SummonSystem) CancelSummon() error {
	active := 0
	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if !g.Active() {
			continue
		}
		s.world.Player.AvailableGhosts = append(s.world.Player.AvailableGhosts, g.Kind)
		active++
	}
	if active == 0 {
		return ErrNoGhosts
	}
	s.world.Ghosts = retain(s.world.Ghosts, func(g *component.Ghost) bool {
		return !g.Active()
	})
	return nil
}

func (s *SummonSystem) spawnGhost(kind defs.EntityKind, pos geom.Vec2) {
	profile := kind.Profile(&s.cfg.Entities)
	ac := &s.cfg.Animations
	s.world.Ghosts = append(s.world.Ghosts, component.Ghost{
		Combatant: component.Combatant{
			ID:       s.world.NewEntity(),
			Position: pos,
			Stats: component.Stats{
				Health:    profile.Health,
				MaxHealth: profile.Health,
				Damage:    profile.Damage,
			},
			Kind:      kind,
			Weapons:   profile.Weapons,
			FireTimer: s.cfg.GhostBehavior.FireInterval,
			Movement:  component.MovementState{Mode: component.FreeMovement},
			Anim:      component.SpawnAnim(ac.GhostSpawnDuration, ac.GhostSpawnScaleStart),
		},
		EnergyDrain: profile.EnergyCost * s.cfg.Energy.GhostDrainRatio,
	})
	s.dispatcher.Dispatch(event.GhostSummoned, event.GhostData{Kind: kind, Position: pos})
}

func queued(queue []defs.EntityKind, kind defs.EntityKind) bool {
	for _, k := range queue {
		if k == kind {
			return true
		}
	}
	return false
}
