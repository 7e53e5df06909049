// internal/app/game.go
package app

import (
	"errors"
	"io/fs"
	"log"
	"math"
	"os"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/internal/interfaces"
	"go-ghost-shooter/internal/script"
	"go-ghost-shooter/internal/system"
	"go-ghost-shooter/internal/utils"
	"go-ghost-shooter/pkg/geom"
)

// bannerDuration - сколько секунд висит объявление волны.
const bannerDuration = 2.5

// Game holds the main game state and logic. It owns every collection of a
// run and drives the systems in a fixed order.
type Game struct {
	World           *entity.World
	Config          *config.Config
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WeaponSystem     *system.WeaponSystem
	PlayerSystem     *system.PlayerSystem
	DashSystem       *system.DashSystem
	ParrySystem      *system.ParrySystem
	EnemySystem      *system.EnemySystem
	GhostSystem      *system.GhostSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	LifecycleSystem  *system.LifecycleSystem
	HealerSystem     *system.HealerSystem
	EnergySystem     *system.EnergySystem
	SummonSystem     *system.SummonSystem
	SpawnSystem      *system.SpawnSystem
	WaveManager      *system.WaveManager
	AnimationSystem  *system.AnimationSystem
	ParticleSystem   *system.ParticleSystem
	ShakeSystem      *system.ShakeSystem
	RenderSystem     *system.RenderSystem

	banner      string
	bannerTimer float64
}

// NewGame initializes a new game instance. A nil source loads wave scripts
// from cfg.Spawning.ScriptsDir and falls back to the built-in campaign.
// A zero seed uses the current time.
func NewGame(cfg *config.Config, source defs.WaveSource, seed int64) *Game {
	world := entity.NewWorld(cfg)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:           world,
		Config:          cfg,
		EventDispatcher: dispatcher,
		Rng:             rng,
	}
	g.WeaponSystem = system.NewWeaponSystem(world, cfg)
	g.PlayerSystem = system.NewPlayerSystem(world, cfg, g.WeaponSystem, dispatcher)
	g.DashSystem = system.NewDashSystem(world, cfg)
	g.ParrySystem = system.NewParrySystem(world, cfg, dispatcher)
	g.EnemySystem = system.NewEnemySystem(world, cfg, g.WeaponSystem, dispatcher)
	g.GhostSystem = system.NewGhostSystem(world, cfg, g.WeaponSystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, cfg)
	g.CollisionSystem = system.NewCollisionSystem(world, cfg, dispatcher)
	g.LifecycleSystem = system.NewLifecycleSystem(world, cfg, dispatcher)
	g.HealerSystem = system.NewHealerSystem(world, cfg)
	g.EnergySystem = system.NewEnergySystem(world, cfg, dispatcher)
	g.SummonSystem = system.NewSummonSystem(world, cfg, dispatcher)
	g.SpawnSystem = system.NewSpawnSystem(world, cfg, rng)
	g.AnimationSystem = system.NewAnimationSystem(world, cfg)
	g.ParticleSystem = system.NewParticleSystem(world, cfg, rng)
	g.ShakeSystem = system.NewShakeSystem(world, cfg)
	g.RenderSystem = system.NewRenderSystem(world, cfg)

	if source == nil {
		source = g.loadWaveSource()
	}
	g.WaveManager = system.NewWaveManager(source, g, cfg, rng, dispatcher)

	dispatcher.Subscribe(g.PlayerSystem, event.PlayerHit)
	dispatcher.Subscribe(g.ParticleSystem,
		event.EnemyKilled, event.EnemySplit, event.PlayerHit, event.WeaponHit, event.ProjectileParried)
	dispatcher.Subscribe(g.ShakeSystem,
		event.EnemyKilled, event.PlayerHit, event.WeaponHit, event.ProjectileParried)
	dispatcher.Subscribe(&GameEventListener{game: g},
		event.WaveStarted, event.WaveCompleted, event.CampaignComplete, event.PlayerDied)

	return g
}

// loadWaveSource prepares the JS wave loader with the host functions the
// scripts call.
func (g *Game) loadWaveSource() defs.WaveSource {
	dir := g.Config.Spawning.ScriptsDir
	if _, err := os.Stat(dir); err != nil {
		log.Printf("Game: scripts dir %q unavailable (%v), using built-in waves", dir, err)
		return defs.WavePatterns
	}
	return g.newScriptLoader(os.DirFS(dir))
}

func (g *Game) newScriptLoader(fsys fs.FS) defs.WaveSource {
	loader, err := script.NewJSLoader(fsys)
	if err != nil {
		log.Printf("Game: %v, using built-in waves", err)
		return defs.WavePatterns
	}
	err = errors.Join(
		loader.Bind("announce", g.Announce),
		loader.Bind("grant_energy", g.GrantEnergy),
	)
	if err != nil {
		log.Printf("Game: %v, using built-in waves", err)
		return defs.WavePatterns
	}
	return loader
}

// Update advances the simulation by one tick in a fixed system order.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	dt := min(deltaTime, config.MaxDeltaTime)
	g.bannerTimer = max(g.bannerTimer-dt, 0)

	if g.World.State != component.Playing {
		// После конца игры доигрываются только эффекты.
		g.ParticleSystem.Update(dt)
		g.ShakeSystem.Update(dt)
		return
	}
	g.World.GameTime += dt

	g.PlayerSystem.Update(dt)
	g.DashSystem.Update(dt)
	g.ParrySystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.GhostSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.ParrySystem.Deflect()
	g.CollisionSystem.Resolve()
	g.LifecycleSystem.Update()
	g.HealerSystem.Update(dt)
	g.EnergySystem.Update(dt)

	if g.Config.Spawning.WaveMode {
		if g.WaveManager.Ready() {
			g.WaveManager.StartNextWave()
		}
		g.WaveManager.Update(dt)
	} else {
		g.SpawnSystem.UpdateRandom(dt)
	}

	g.AnimationSystem.Update(dt)
	g.ParticleSystem.Update(dt)
	g.ShakeSystem.Update(dt)
}

// EnemiesAlive implements interfaces.WaveHost.
func (g *Game) EnemiesAlive() int {
	return len(g.World.Enemies)
}

// SpawnEnemy implements interfaces.WaveHost.
func (g *Game) SpawnEnemy(kind defs.EntityKind, x float64) {
	g.SpawnSystem.SpawnEnemy(kind, x)
}

// --- Intents ---

func (g *Game) Move(direction geom.Vec2) {
	g.PlayerSystem.Move(direction)
}

func (g *Game) FireWeapon(slot int) error {
	return g.PlayerSystem.FireWeapon(slot)
}

func (g *Game) SwitchFormation(kind formation.Kind) error {
	return g.SummonSystem.SwitchFormation(kind)
}

func (g *Game) DeployFormation() error {
	return g.SummonSystem.DeployFormation()
}

func (g *Game) SummonGhost(kind defs.EntityKind) error {
	return g.SummonSystem.SummonGhost(kind)
}

func (g *Game) AttemptParry() error {
	return g.ParrySystem.AttemptParry()
}

func (g *Game) Dash(direction geom.Vec2) error {
	return g.DashSystem.Dash(direction)
}

func (g *Game) CancelSummon() error {
	return g.SummonSystem.CancelSummon()
}

// --- Script host functions ---

// Announce shows msg as the HUD banner.
func (g *Game) Announce(msg string) {
	g.banner = msg
	g.bannerTimer = bannerDuration
}

// GrantEnergy adds energy up to the maximum. Non-numeric script arguments
// arrive as NaN and are ignored.
func (g *Game) GrantEnergy(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		log.Printf("Game: ignoring grant_energy(%v)", amount)
		return
	}
	p := &g.World.Player
	p.Energy = min(max(p.Energy+amount, 0), p.MaxEnergy)
}

// Banner returns the current announcement, or "" when none is showing.
func (g *Game) Banner() string {
	if g.bannerTimer <= 0 {
		return ""
	}
	return g.banner
}

// ApplyConfig swaps in reloaded tunables. Systems share the pointer, so the
// new values apply from the next tick.
func (g *Game) ApplyConfig(cfg *config.Config) {
	*g.Config = *cfg
	g.World.Player.MaxEnergy = cfg.Player.MaxEnergy
	g.World.Player.Energy = min(g.World.Player.Energy, cfg.Player.MaxEnergy)
	log.Println("Game: config reloaded")
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		if d, ok := e.Data.(event.WaveData); ok && g.bannerTimer <= 0 {
			g.Announce(waveTitle(d))
		}
	case event.WaveCompleted:
		if d, ok := e.Data.(event.WaveData); ok {
			log.Printf("Game: wave %d cleared, %d kills so far", d.Number, g.World.Kills)
		}
	case event.CampaignComplete:
		if g.World.State == component.Playing {
			g.World.State = component.Victory
			log.Println("Game: victory")
		}
	case event.PlayerDied:
		log.Printf("Game: game over on wave %d", g.WaveManager.Info().Number)
	}
}

var (
	_ interfaces.Controls = (*Game)(nil)
	_ interfaces.WaveHost = (*Game)(nil)
)
