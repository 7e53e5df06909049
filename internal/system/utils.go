// internal/system/utils.go
package system

import (
	"errors"
	"slices"

	"go-ghost-shooter/internal/component"
)

var (
	ErrInsufficientEnergy = errors.New("not enough energy")
	ErrGhostNotQueued     = errors.New("no ghost of that kind in the queue")
	ErrNoGhosts           = errors.New("no ghosts available")
	ErrFormationTooSmall  = errors.New("not enough ghosts for formation")
	ErrWeaponSlot         = errors.New("no weapon in that slot")
	ErrWeaponNotReady     = errors.New("weapon is reloading")
	ErrParryCooldown      = errors.New("parry on cooldown")
	ErrParryActive        = errors.New("parry already active")
	ErrDashDisabled       = errors.New("dash disabled")
	ErrDashCooldown       = errors.New("dash on cooldown")
	ErrGameOver           = errors.New("game is over")
)

// ApplyDamage наносит урон и запускает вспышку попадания.
func ApplyDamage(stats *component.Stats, anim *component.AnimState, damage, flash float64) {
	stats.Health -= damage
	anim.Flash(flash)
}

// removeIndices dedupes and sorts idx, then removes from the back so earlier
// indices stay valid.
func removeIndices[T any](items []T, idx []int) []T {
	if len(idx) == 0 {
		return items
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)
	for i := len(idx) - 1; i >= 0; i-- {
		j := idx[i]
		if j < 0 || j >= len(items) {
			continue
		}
		items = slices.Delete(items, j, j+1)
	}
	return items
}

// retain keeps the items keep returns true for, in order, reusing the backing array.
func retain[T any](items []T, keep func(*T) bool) []T {
	n := 0
	for i := range items {
		if keep(&items[i]) {
			items[n] = items[i]
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
