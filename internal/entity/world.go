// internal/entity/world.go
package entity

import (
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// World owns every live collection of a run as flat slices. Entities never
// point at each other; cross-entity effects read public fields during a
// single pass.
type World struct {
	GameTime float64
	NextID   types.EntityID

	Player      component.Player
	Enemies     []component.Enemy
	Ghosts      []component.Ghost
	Projectiles []component.Projectile
	Particles   []component.Particle
	Shake       component.ScreenShake

	Formation formation.Kind
	State     component.GameState

	Kills   int
	Escaped int
}

// NewWorld creates a world with the player placed at the bottom centre.
func NewWorld(cfg *config.Config) *World {
	w := &World{NextID: 1}
	weapons, err := defs.ParseLoadout(cfg.Player.Weapons)
	if err != nil || len(weapons) == 0 {
		weapons = []defs.WeaponKind{defs.Bullet}
	}
	w.Player = component.Player{
		ID:       w.NewEntity(),
		Position: geom.V(cfg.Window.Width/2, cfg.Window.Height-80),
		Stats: component.Stats{
			Health:    cfg.Player.StartingHealth,
			MaxHealth: cfg.Player.StartingHealth,
		},
		Energy:     cfg.Player.StartingEnergy,
		MaxEnergy:  cfg.Player.MaxEnergy,
		Weapons:    weapons,
		FireTimers: make([]float64, len(weapons)),
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// EnemyIndex returns the slice index of the enemy with id, or -1.
func (w *World) EnemyIndex(id types.EntityID) int {
	if id == types.NoEntity {
		return -1
	}
	for i := range w.Enemies {
		if w.Enemies[i].ID == id {
			return i
		}
	}
	return -1
}

// EnemyTargets is a snapshot of enemy positions for aiming and homing.
func (w *World) EnemyTargets() []component.TargetRef {
	out := make([]component.TargetRef, len(w.Enemies))
	for i := range w.Enemies {
		e := &w.Enemies[i].Combatant
		out[i] = component.TargetRef{ID: e.ID, Position: e.Position, Velocity: e.Velocity}
	}
	return out
}

// ActiveGhosts counts ghosts that are not despawning.
func (w *World) ActiveGhosts() int {
	n := 0
	for i := range w.Ghosts {
		if w.Ghosts[i].Active() {
			n++
		}
	}
	return n
}
