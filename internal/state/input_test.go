package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/pkg/geom"
)

func keys(held ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, h := range held {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestMovementCombinesKeys(t *testing.T) {
	assert.Equal(t, geom.Vec2{}, movement(keys()))
	assert.Equal(t, geom.Vec2{X: -1, Y: -1}, movement(keys(ebiten.KeyA, ebiten.KeyW)))
	assert.Equal(t, geom.Vec2{X: 1, Y: 1}, movement(keys(ebiten.KeyArrowRight, ebiten.KeyArrowDown)))
	assert.Equal(t, geom.Vec2{}, movement(keys(ebiten.KeyA, ebiten.KeyD)), "opposite keys cancel")
}

func TestSummonKind(t *testing.T) {
	kind, ok := summonKind(keys(ebiten.KeyDigit3))
	assert.True(t, ok)
	assert.Equal(t, defs.Tank, kind)

	_, ok = summonKind(keys(ebiten.KeyDigit9))
	assert.False(t, ok)
}
