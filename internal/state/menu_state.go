// internal/state/menu_state.go
package state

import (
	"go-ghost-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var menuLines = []string{
	"GHOST SHOOTER",
	"",
	"WASD move   SPACE/J/K fire   SHIFT dash   E parry",
	"1-6 summon   F deploy   TAB formation   C cancel",
	"P pause   R reload config   F10 copy debug report",
	"",
	"press SPACE to start",
}

// MenuState - стартовый экран
type MenuState struct {
	sm      *StateMachine
	cfg     *config.Config
	cfgPath string
	watcher *config.Watcher
}

func NewMenuState(sm *StateMachine, cfg *config.Config, cfgPath string, watcher *config.Watcher) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, cfgPath: cfgPath, watcher: watcher}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.cfg, m.cfgPath, m.watcher))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight/2 - len(menuLines)*8
	for _, line := range menuLines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, basicfont.Face7x13, x, y, config.TextLightColor)
		y += 16
	}
}

func (m *MenuState) Exit() {}
