// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log"

	game "go-ghost-shooter/internal/app"
	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/internal/interfaces"
	"go-ghost-shooter/internal/system"
	"go-ghost-shooter/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState - состояние игры
type GameState struct {
	sm      *StateMachine
	game    *game.Game
	cfgPath string
	watcher *config.Watcher
	face    font.Face

	bars       *ui.PlayerBars
	waves      *ui.WaveIndicator
	ghostPanel *ui.GhostPanel
}

// NewGameState starts a fresh run. watcher may be nil.
func NewGameState(sm *StateMachine, cfg *config.Config, cfgPath string, watcher *config.Watcher) *GameState {
	face := basicfont.Face7x13
	log.Println("GameState: run started")
	return &GameState{
		sm:         sm,
		game:       game.NewGame(cfg, nil, 0),
		cfgPath:    cfgPath,
		watcher:    watcher,
		face:       face,
		bars:       ui.NewPlayerBars(config.HUDMargin, config.HUDMargin, face),
		waves:      ui.NewWaveIndicator(float32(config.ScreenWidth-config.IndicatorWidth-config.HUDMargin), config.HUDMargin, face),
		ghostPanel: ui.NewGhostPanel(config.HUDMargin, float32(config.ScreenHeight-40), face),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reloadConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		if err := clipboard.WriteAll(g.game.DebugReport()); err != nil {
			log.Printf("GameState: clipboard: %v", err)
		} else {
			log.Println("GameState: debug report copied")
		}
	}

	g.handleInput(g.game)
	g.game.Update(deltaTime)

	if s := g.game.World.State; s != component.Playing {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleInput(c interfaces.Controls) {
	c.Move(movement(ebiten.IsKeyPressed))

	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		g.intent("fire", c.FireWeapon(0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		g.intent("fire", c.FireWeapon(1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight) {
		g.intent("dash", c.Dash(movement(ebiten.IsKeyPressed)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.intent("parry", c.AttemptParry())
	}
	if kind, ok := summonKind(inpututil.IsKeyJustPressed); ok {
		g.intent("summon", c.SummonGhost(kind))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.intent("deploy", c.DeployFormation())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w := g.game.World
		next := formation.Next(w.Formation, len(w.Player.AvailableGhosts), &g.game.Config.Formations)
		g.intent("formation", c.SwitchFormation(next))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.intent("cancel", c.CancelSummon())
	}
}

// intent логирует отклонённое действие. Огонь держится зажатым,
// поэтому перезарядка и пустой слот не логируются.
func (g *GameState) intent(name string, err error) {
	if err == nil || errors.Is(err, system.ErrWeaponNotReady) || errors.Is(err, system.ErrWeaponSlot) {
		return
	}
	log.Printf("GameState: %s rejected: %v", name, err)
}

func (g *GameState) pollConfig() {
	if g.watcher == nil {
		return
	}
	if cfg, ok := g.watcher.Poll(); ok {
		g.game.ApplyConfig(cfg)
		log.Println("GameState: config reloaded from disk")
	}
}

func (g *GameState) reloadConfig() {
	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		log.Printf("GameState: reload failed: %v", err)
		return
	}
	g.game.ApplyConfig(cfg)
	log.Println("GameState: config reloaded")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	offset := g.game.ShakeSystem.Offset(g.game.Rng)
	g.game.RenderSystem.Draw(screen, offset)
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.bars.Draw(screen, snap.Health, snap.MaxHealth, snap.Energy, snap.MaxEnergy)
	g.waves.Draw(screen, snap.Wave)
	g.ghostPanel.Draw(screen, snap.Queue, snap.Formation, snap.Ghosts)
	ui.DrawBanner(screen, snap.Banner, g.face)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  kills %d", ebiten.ActualTPS(), snap.Kills), config.ScreenWidth-140, config.ScreenHeight-20)
}

func (g *GameState) Exit() {}

// restart начинает новый забег с теми же настройками.
func (g *GameState) restart() *GameState {
	return NewGameState(g.sm, g.game.Config, g.cfgPath, g.watcher)
}
