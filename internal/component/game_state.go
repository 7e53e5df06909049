// internal/component/game_state.go
package component

// GameState - итог текущего забега
type GameState int

const (
	Playing GameState = iota
	GameOver
	Victory
)

func (s GameState) String() string {
	switch s {
	case GameOver:
		return "Game Over"
	case Victory:
		return "Victory"
	default:
		return "Playing"
	}
}
