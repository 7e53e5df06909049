// internal/interfaces/game.go
package interfaces

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/pkg/geom"
)

// Controls are the intents the input layer can issue. Each call is
// validated by the game; a rejected intent returns an error and changes
// nothing.
type Controls interface {
	Move(direction geom.Vec2)
	FireWeapon(slot int) error
	SwitchFormation(kind formation.Kind) error
	DeployFormation() error
	SummonGhost(kind defs.EntityKind) error
	AttemptParry() error
	Dash(direction geom.Vec2) error
	CancelSummon() error
}
