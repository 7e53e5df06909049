// internal/state/gameover_state.go
package state

import (
	"fmt"
	"image/color"
	"strings"

	"go-ghost-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*GameOverState)(nil)

var gameOverOverlayColor = color.RGBA{0, 0, 0, 170}

// GameOverState показывает итог забега. Эффекты продолжают затухать.
type GameOverState struct {
	sm   *StateMachine
	last *GameState
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.last.game.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(s.last.restart())
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, gameOverOverlayColor, false)

	snap := s.last.game.Snapshot()
	lines := []string{
		strings.ToUpper(snap.State.String()),
		fmt.Sprintf("wave %d/%d  kills %d  escaped %d", snap.Wave.Number, snap.Wave.Total, snap.Kills, snap.Escaped),
		"press ENTER to play again",
	}
	y := config.ScreenHeight/2 - 16
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, basicfont.Face7x13, x, y, config.TextLightColor)
		y += 18
	}
}

func (s *GameOverState) Exit() {}
