// internal/interfaces/game_context.go
package interfaces

import "go-ghost-shooter/internal/defs"

// WaveHost is what the wave manager needs from the running game.
type WaveHost interface {
	EnemiesAlive() int
	SpawnEnemy(kind defs.EntityKind, x float64)
}
