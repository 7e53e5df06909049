// internal/component/player.go
package component

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/types"
	"go-ghost-shooter/pkg/geom"
)

// ParryState хранит таймеры парирования.
type ParryState struct {
	Active   bool
	Window   float64 // сколько ещё открыто окно
	Cooldown float64
}

// DashState хранит состояние рывка.
type DashState struct {
	Active    bool
	Direction geom.Vec2
	Remaining float64
	Cooldown  float64
}

// Player is the single player ship.
type Player struct {
	ID       types.EntityID
	Position geom.Vec2
	Velocity geom.Vec2
	Stats    Stats

	Energy    float64
	MaxEnergy float64

	Weapons    []defs.WeaponKind
	FireTimers []float64 // one per weapon slot

	// AvailableGhosts is the capture queue: every killed enemy pushes its kind.
	AvailableGhosts []defs.EntityKind

	HitFlashTimer float64
	IFrameTimer   float64
	Parry         ParryState
	Dash          DashState
}

// Invulnerable reports whether i-frames are running.
func (p *Player) Invulnerable() bool {
	return p.IFrameTimer > 0
}

// Target returns the player as an aiming target.
func (p *Player) Target() TargetRef {
	return TargetRef{ID: p.ID, Position: p.Position, Velocity: p.Velocity}
}

// TakeGhost removes the first queued ghost of kind k.
func (p *Player) TakeGhost(k defs.EntityKind) bool {
	for i, queued := range p.AvailableGhosts {
		if queued == k {
			p.AvailableGhosts = append(p.AvailableGhosts[:i], p.AvailableGhosts[i+1:]...)
			return true
		}
	}
	return false
}
