// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cfgPath := flag.String("config", config.DefaultConfigPath, "path to the tunables file")
	skipMenu := flag.Bool("play", false, "start the run immediately")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	watcher, err := config.Watch(*cfgPath)
	if err != nil {
		log.Printf("config: hot reload disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, cfg, *cfgPath, watcher))
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, *cfgPath, watcher))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
