// internal/system/lifecycle.go
package system

import (
	"slices"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/pkg/geom"
)

// LifecycleSystem reacts to deaths: enemies are captured into the ghost
// queue, ghosts start despawning, splitters break apart.
type LifecycleSystem struct {
	world      *entity.World
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewLifecycleSystem(world *entity.World, cfg *config.Config, dispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{world: world, cfg: cfg, dispatcher: dispatcher}
}

func (s *LifecycleSystem) Update() {
	s.handleDeadEnemies()
	s.handleDeadGhosts()
}

func (s *LifecycleSystem) handleDeadEnemies() {
	var dead []component.Combatant
	s.world.Enemies = retain(s.world.Enemies, func(e *component.Enemy) bool {
		if e.Stats.Alive() {
			return true
		}
		dead = append(dead, e.Combatant)
		return false
	})

	for _, e := range dead {
		s.world.Player.AvailableGhosts = append(s.world.Player.AvailableGhosts, e.Kind)
		s.world.Kills++
		s.dispatcher.Dispatch(event.EnemyKilled, event.EnemyKilledData{Kind: e.Kind, Position: e.Position})

		if e.Kind != defs.Splitter {
			continue
		}
		children := s.splitChildren(e)
		for _, c := range children {
			s.world.Enemies = append(s.world.Enemies, component.Enemy{Combatant: c})
		}
		s.dispatcher.Dispatch(event.EnemySplit, event.EnemySplitData{Position: e.Position, Children: len(children)})
	}
}

func (s *LifecycleSystem) handleDeadGhosts() {
	var splitting []component.Combatant
	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		if g.Stats.Alive() || g.Anim.Despawning {
			continue
		}
		if g.Kind == defs.Splitter {
			splitting = append(splitting, g.Combatant)
		}
		g.Anim.StartDespawn(s.cfg.Animations.GhostDespawnDuration)
		s.dispatcher.Dispatch(event.GhostLost, event.GhostData{Kind: g.Kind, Position: g.Position})
	}

	sc := &s.cfg.Entities.Splitting
	drain := defs.BasicFighter.EnergyCost(&s.cfg.Entities) * s.cfg.Energy.GhostDrainRatio
	for _, parent := range splitting {
		children := s.splitChildren(parent)
		for _, c := range children {
			c.Anim = component.SpawnAnim(sc.ChildSpawnDuration, s.cfg.Animations.GhostSpawnScaleStart)
			s.world.Ghosts = append(s.world.Ghosts, component.Ghost{Combatant: c, EnergyDrain: drain})
		}
		s.dispatcher.Dispatch(event.EnemySplit, event.EnemySplitData{Position: parent.Position, Children: len(children), Ghost: true})
	}
}

// splitChildren builds the weaker copies of a dead splitter, in a horizontal
// line centred on its position. Children are BasicFighters so they never
// split again.
func (s *LifecycleSystem) splitChildren(parent component.Combatant) []component.Combatant {
	sc := &s.cfg.Entities.Splitting
	n := sc.SplitCount
	if n <= 0 {
		return nil
	}
	health := parent.Stats.MaxHealth * sc.SplitHealthRatio
	fireInterval := defs.BasicFighter.Profile(&s.cfg.Entities).FireInterval

	children := make([]component.Combatant, 0, n)
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * sc.SplitSpacing
		children = append(children, component.Combatant{
			ID:       s.world.NewEntity(),
			Position: parent.Position.Add(geom.V(offset, 0)),
			Stats: component.Stats{
				Health:    health,
				MaxHealth: health,
				Damage:    parent.Stats.Damage,
			},
			Kind:        defs.BasicFighter,
			Weapons:     slices.Clone(parent.Weapons),
			FireTimer:   fireInterval,
			SpeedFactor: sc.SplitSpeedMultiplier,
			Movement:    component.MovementState{Mode: component.FreeMovement},
			Anim:        component.IdleAnim(),
		})
	}
	return children
}
