// internal/state/input.go
package state

import (
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// Клавиши призыва: индекс = defs.EntityKind.
var summonKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// movement folds the held direction keys into one (unnormalized) vector.
func movement(pressed func(ebiten.Key) bool) geom.Vec2 {
	var dir geom.Vec2
	if pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	return dir
}

// summonKind maps a just-pressed key to the ghost kind it summons.
func summonKind(justPressed func(ebiten.Key) bool) (defs.EntityKind, bool) {
	for i, key := range summonKeys {
		if i < len(defs.AllEntityKinds) && justPressed(key) {
			return defs.AllEntityKinds[i], true
		}
	}
	return 0, false
}
