package app

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/system"
	"go-ghost-shooter/pkg/geom"
)

const tick = 1.0 / 60

func oneWave(kind string) defs.StaticWaves {
	return defs.StaticWaves{1: {Name: "Solo", Spawns: []defs.SpawnSpec{
		{EnemyKind: kind, Count: 1, Interval: 1},
	}}}
}

func newTestGame(t *testing.T, source defs.WaveSource) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Spawning.WaveCount = 1
	return NewGame(cfg, source, 42)
}

func TestCampaignRunsToVictory(t *testing.T) {
	g := newTestGame(t, oneWave("BasicFighter"))

	g.Update(tick)
	assert.Equal(t, system.WaveActive, g.WaveManager.State())
	assert.Equal(t, "Wave 1: Solo", g.Banner())

	g.Update(tick)
	require.Equal(t, 1, g.EnemiesAlive())

	g.World.Enemies[0].Stats.Health = 0
	g.Update(tick)
	assert.Zero(t, g.EnemiesAlive())
	assert.Equal(t, []defs.EntityKind{defs.BasicFighter}, g.World.Player.AvailableGhosts)

	for i := 0; i < 300 && g.World.State == component.Playing; i++ {
		g.Update(tick)
	}
	assert.Equal(t, component.Victory, g.World.State)
	assert.True(t, g.Snapshot().Wave.CampaignComplete)
}

func TestScriptsDriveHostFunctions(t *testing.T) {
	g := newTestGame(t, defs.StaticWaves{})
	fsys := fstest.MapFS{
		"init.js": {Data: []byte(`function wave(def) { return def; }`)},
		"waves/wave_1.js": {Data: []byte(`
wave({
    name: "Scripted",
    prep_time: 0,
    spawns: [{ type: "Sniper", count: 1, interval: 1 }],
    on_start: function () {
        announce("Snipers!");
        grant_energy(50);
    },
})`)},
	}
	g.WaveManager = system.NewWaveManager(g.newScriptLoader(fsys), g, g.Config, g.Rng, g.EventDispatcher)
	before := g.World.Player.Energy

	g.Update(tick)

	assert.Equal(t, "Snipers!", g.Banner())
	assert.InDelta(t, before+50, g.World.Player.Energy, 1)
	assert.Equal(t, "Scripted", g.WaveManager.Info().Name)
}

func TestGrantEnergyIgnoresNonNumbers(t *testing.T) {
	g := newTestGame(t, defs.StaticWaves{})
	fsys := fstest.MapFS{
		"waves/wave_1.js": {Data: []byte(`({
    name: "Bad grant",
    prep_time: 0,
    spawns: [{ type: "Tank", count: 1, interval: 1 }],
    on_start: function () { grant_energy("lots"); grant_energy(Infinity); },
})`)},
	}
	g.WaveManager = system.NewWaveManager(g.newScriptLoader(fsys), g, g.Config, g.Rng, g.EventDispatcher)
	before := g.World.Player.Energy

	g.Update(tick)

	energy := g.World.Player.Energy
	require.False(t, math.IsNaN(energy))
	assert.InDelta(t, before, energy, 1)

	g.GrantEnergy(math.NaN())
	assert.Equal(t, energy, g.World.Player.Energy)

	g.World.Player.Energy = 0
	g.World.Player.AvailableGhosts = append(g.World.Player.AvailableGhosts, defs.Elite)
	assert.ErrorIs(t, g.SummonGhost(defs.Elite), system.ErrInsufficientEnergy)
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newTestGame(t, oneWave("Tank"))
	p := &g.World.Player
	p.Stats.Health = 1
	g.World.Projectiles = append(g.World.Projectiles, component.Projectile{
		Position: p.Position,
		Damage:   5,
		Weapon:   defs.Bullet,
		Owner:    defs.OwnerEnemy,
	})

	g.Update(tick)

	require.Equal(t, component.GameOver, g.World.State)
	assert.Zero(t, p.Stats.Health)
	assert.ErrorIs(t, g.FireWeapon(0), system.ErrGameOver)
	assert.ErrorIs(t, g.Dash(geom.V(1, 0)), system.ErrGameOver)

	frozen := g.World.GameTime
	g.Update(tick)
	assert.Equal(t, frozen, g.World.GameTime)
}

func TestIntentsReachSystems(t *testing.T) {
	g := newTestGame(t, oneWave("BasicFighter"))
	g.World.Player.AvailableGhosts = []defs.EntityKind{defs.BasicFighter, defs.Sniper}

	require.NoError(t, g.SummonGhost(defs.Sniper))
	assert.Equal(t, 1, g.Snapshot().Ghosts)
	require.NoError(t, g.CancelSummon())
	assert.Len(t, g.World.Player.AvailableGhosts, 2)

	require.NoError(t, g.FireWeapon(0))
	assert.Len(t, g.World.Projectiles, 1)
	require.NoError(t, g.AttemptParry())
	assert.True(t, g.World.Player.Parry.Active)

	start := g.World.Player.Position
	g.Move(geom.V(-1, 0))
	g.Update(tick)
	assert.Less(t, g.World.Player.Position.X, start.X)
}

func TestRandomSpawnModeSkipsWaves(t *testing.T) {
	cfg := config.Default()
	cfg.Spawning.WaveMode = false
	cfg.Spawning.InitialDelay = 0.5
	g := NewGame(cfg, oneWave("BasicFighter"), 42)

	for i := 0; i < 40; i++ {
		g.Update(tick)
	}

	assert.Equal(t, 1, g.EnemiesAlive())
	assert.Equal(t, system.WaveReady, g.WaveManager.State())
	assert.Zero(t, g.WaveManager.Info().Number)
}

func TestApplyConfigUpdatesSharedTunables(t *testing.T) {
	g := newTestGame(t, oneWave("BasicFighter"))
	next := config.Default()
	next.Player.MovementSpeed = 10
	next.Player.MaxEnergy = 150

	g.ApplyConfig(next)

	assert.Equal(t, 10.0, g.Config.Player.MovementSpeed)
	assert.Equal(t, 150.0, g.World.Player.MaxEnergy)
	assert.Equal(t, 150.0, g.World.Player.Energy)

	g.Move(geom.V(1, 0))
	x := g.World.Player.Position.X
	g.Update(0.05)
	assert.InDelta(t, x+10*0.05, g.World.Player.Position.X, 1e-9)
}

func TestDebugReport(t *testing.T) {
	g := newTestGame(t, oneWave("BasicFighter"))
	g.World.Player.AvailableGhosts = []defs.EntityKind{defs.Tank, defs.Healer}

	report := g.DebugReport()

	assert.Contains(t, report, "state: Playing")
	assert.Contains(t, report, "wave: 0/1")
	assert.Contains(t, report, "queue: Tank,Healer")
	assert.Contains(t, report, "formation: Scattered")
}
