package system

import (
	"testing"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

func newTestWorld(t *testing.T) (*entity.World, *config.Config, *event.Dispatcher) {
	t.Helper()
	cfg := config.Default()
	return entity.NewWorld(cfg), cfg, event.NewDispatcher()
}

func addEnemy(w *entity.World, kind defs.EntityKind, pos geom.Vec2, health float64) types.EntityID {
	id := w.NewEntity()
	w.Enemies = append(w.Enemies, component.Enemy{Combatant: component.Combatant{
		ID:        id,
		Position:  pos,
		Stats:     component.Stats{Health: health, MaxHealth: health},
		Kind:      kind,
		Weapons:   []defs.WeaponKind{defs.Bullet},
		FireTimer: 100,
		Anim:      component.IdleAnim(),
	}})
	return id
}

func addGhost(w *entity.World, kind defs.EntityKind, pos geom.Vec2, health float64) *component.Ghost {
	w.Ghosts = append(w.Ghosts, component.Ghost{Combatant: component.Combatant{
		ID:        w.NewEntity(),
		Position:  pos,
		Stats:     component.Stats{Health: health, MaxHealth: health},
		Kind:      kind,
		Weapons:   []defs.WeaponKind{defs.Bullet},
		FireTimer: 100,
		Anim:      component.IdleAnim(),
	}})
	return &w.Ghosts[len(w.Ghosts)-1]
}

func projectile(owner defs.Owner, weapon defs.WeaponKind, pos, vel geom.Vec2, damage float64) component.Projectile {
	return component.Projectile{
		Position: pos,
		Velocity: vel,
		Damage:   damage,
		Weapon:   weapon,
		Owner:    owner,
		Piercing: weapon.Piercing(),
		Homing:   weapon.Homing(),
	}
}

// recorder собирает все события для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func record(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	d.Subscribe(r, types...)
	return r
}
