package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/utils"
	"go-ghost-shooter/pkg/geom"
)

func TestParticleBursts(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ps := NewParticleSystem(w, cfg, utils.NewPRNGService(3))
	d.Subscribe(ps, event.EnemyKilled, event.WeaponHit, event.ProjectileParried)
	pc := cfg.Particles

	d.Dispatch(event.WeaponHit, event.WeaponHitData{Weapon: defs.Laser, Position: geom.V(100, 100)})
	assert.Len(t, w.Particles, pc.LaserParticleCount)

	d.Dispatch(event.EnemyKilled, event.EnemyKilledData{Kind: defs.Tank, Position: geom.V(100, 100)})
	assert.Len(t, w.Particles, pc.LaserParticleCount+pc.DeathRedCount+pc.DeathOrangeCount+pc.DeathYellowCount)

	for _, p := range w.Particles {
		assert.Equal(t, geom.V(100, 100), p.Position)
		assert.Positive(t, p.Lifetime)
	}
}

func TestParticlesAreCapped(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	cfg.Particles.MaxCount = 25
	ps := NewParticleSystem(w, cfg, utils.NewPRNGService(3))

	ps.OnEvent(event.Event{Type: event.ProjectileParried, Data: event.ParryData{Count: 1}})

	assert.Len(t, w.Particles, 25)
}

func TestParticlesAgeOut(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	ps := NewParticleSystem(w, cfg, utils.NewPRNGService(3))
	ps.OnEvent(event.Event{Type: event.WeaponHit, Data: event.WeaponHitData{Weapon: defs.Bullet}})
	require.NotEmpty(t, w.Particles)
	speed := w.Particles[0].Velocity.Len()

	ps.Update(0.01)
	require.NotEmpty(t, w.Particles)
	assert.InDelta(t, speed*cfg.Particles.Friction, w.Particles[0].Velocity.Len(), 1e-9)

	ps.Update(cfg.Particles.SparkLifetimeMax)
	assert.Empty(t, w.Particles)
}

func TestShakeLatestTriggerWins(t *testing.T) {
	w, cfg, d := newTestWorld(t)
	ss := NewShakeSystem(w, cfg)
	d.Subscribe(ss, event.WeaponHit, event.PlayerHit)
	rng := utils.NewPRNGService(5)

	assert.Equal(t, geom.Vec2{}, ss.Offset(rng))

	d.Dispatch(event.WeaponHit, event.WeaponHitData{Weapon: defs.Bombs})
	assert.Equal(t, cfg.ScreenShake.BombHitIntensity, w.Shake.Intensity)

	d.Dispatch(event.PlayerHit, event.PositionData{})
	assert.Equal(t, cfg.ScreenShake.PlayerHitIntensity, w.Shake.Intensity)
	assert.Equal(t, cfg.ScreenShake.PlayerHitDuration, w.Shake.Duration)

	off := ss.Offset(rng)
	assert.LessOrEqual(t, off.X, w.Shake.Intensity)
	assert.GreaterOrEqual(t, off.X, -w.Shake.Intensity)

	ss.Update(1)
	assert.Zero(t, w.Shake.Intensity)
	assert.Equal(t, geom.Vec2{}, ss.Offset(rng))
}

func TestSpawnEnemyStartsOnEntryPath(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	ss := NewSpawnSystem(w, cfg, utils.NewPRNGService(11))

	for _, kind := range defs.AllEntityKinds {
		ss.SpawnEnemy(kind, 300)
	}

	require.Len(t, w.Enemies, len(defs.AllEntityKinds))
	ids := map[uint64]bool{}
	for _, e := range w.Enemies {
		profile := e.Kind.Profile(&cfg.Entities)
		assert.Equal(t, profile.Health, e.Stats.Health)
		assert.Equal(t, e.Movement.Path.P0, e.Position)
		assert.Positive(t, e.Movement.Path.Duration)
		assert.Less(t, e.Position.Y, 130.0)
		assert.GreaterOrEqual(t, e.FireTimer, cfg.EnemyBehavior.InitialFireDelayMin)
		assert.LessOrEqual(t, e.FireTimer, cfg.EnemyBehavior.InitialFireDelayMax)
		assert.False(t, ids[uint64(e.ID)])
		ids[uint64(e.ID)] = true
	}
}

func TestRandomSpawnerWaitsForInitialDelay(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	ss := NewSpawnSystem(w, cfg, utils.NewPRNGService(11))

	ss.UpdateRandom(cfg.Spawning.InitialDelay - 0.5)
	assert.Empty(t, w.Enemies)

	ss.UpdateRandom(0.5)
	assert.Len(t, w.Enemies, 1)

	ss.UpdateRandom(cfg.Spawning.EnemySpawnInterval)
	assert.Len(t, w.Enemies, 2)
}
