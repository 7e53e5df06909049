package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/utils"
)

type fakeHost struct {
	alive   int
	kinds   []defs.EntityKind
	spawnXs []float64
}

func (h *fakeHost) EnemiesAlive() int { return h.alive }

func (h *fakeHost) SpawnEnemy(kind defs.EntityKind, x float64) {
	h.alive++
	h.kinds = append(h.kinds, kind)
	h.spawnXs = append(h.spawnXs, x)
}

type waveSourceFunc func(int) (*defs.WaveScript, error)

func (f waveSourceFunc) LoadWave(n int) (*defs.WaveScript, error) { return f(n) }

func TestWaveCompletesOnlyWhenLastEnemyDies(t *testing.T) {
	_, cfg, d := newTestWorld(t)
	cfg.Spawning.WaveCount = 1
	rec := record(d, event.WaveStarted, event.WaveCompleted, event.CampaignComplete)
	host := &fakeHost{}
	source := defs.StaticWaves{1: {Name: "Trio", PrepTime: 1, Spawns: []defs.SpawnSpec{
		{EnemyKind: "BasicFighter", Count: 3, Interval: 0.5},
	}}}
	m := NewWaveManager(source, host, cfg, utils.NewPRNGService(7), d)

	require.True(t, m.StartNextWave())
	assert.Equal(t, WavePreparing, m.State())
	assert.False(t, m.StartNextWave(), "busy machine refuses a second start")

	m.Update(1)
	assert.Equal(t, WaveActive, m.State())
	assert.Equal(t, 1, rec.count(event.WaveStarted))

	m.Update(0)
	m.Update(0.5)
	m.Update(0.5)
	require.Len(t, host.kinds, 3)
	assert.Equal(t, 3, m.Info().Spawned)

	host.alive = 1
	m.Update(0.1)
	assert.Equal(t, WaveActive, m.State())
	assert.Len(t, host.kinds, 3, "exhausted group spawns nothing more")

	host.alive = 0
	m.Update(0.1)
	assert.Equal(t, WaveComplete, m.State())

	m.Update(0.1)
	assert.Equal(t, WaveTransition, m.State())
	assert.Equal(t, 1, rec.count(event.WaveCompleted))

	m.Update(cfg.Spawning.TransitionPause)
	assert.Equal(t, WaveReady, m.State())

	assert.False(t, m.StartNextWave())
	assert.True(t, m.CampaignComplete())
	assert.False(t, m.Ready())
	assert.Equal(t, 1, rec.count(event.CampaignComplete))
}

func TestSpawnGroupsRunIndependently(t *testing.T) {
	_, cfg, d := newTestWorld(t)
	host := &fakeHost{}
	source := defs.StaticWaves{1: {Name: "Mixed", Spawns: []defs.SpawnSpec{
		{EnemyKind: "BasicFighter", Count: 2, Interval: 1},
		{EnemyKind: "Tank", Count: 1, Interval: 1, Delay: 1.5},
	}}}
	m := NewWaveManager(source, host, cfg, utils.NewPRNGService(7), d)
	require.True(t, m.StartNextWave())

	m.Update(0) // prep_time 0
	m.Update(0)
	assert.Equal(t, []defs.EntityKind{defs.BasicFighter}, host.kinds)
	m.Update(1)
	assert.Equal(t, []defs.EntityKind{defs.BasicFighter, defs.BasicFighter}, host.kinds)
	m.Update(0.5)
	assert.Equal(t, []defs.EntityKind{defs.BasicFighter, defs.BasicFighter, defs.Tank}, host.kinds)

	margin := cfg.Spawning.SpawnMargin
	for _, x := range host.spawnXs {
		assert.GreaterOrEqual(t, x, margin)
		assert.LessOrEqual(t, x, cfg.Window.Width-margin)
	}
}

func TestHooksRunOnce(t *testing.T) {
	_, cfg, d := newTestWorld(t)
	var starts, completes int
	source := waveSourceFunc(func(n int) (*defs.WaveScript, error) {
		return &defs.WaveScript{
			Number:     n,
			Name:       "Hooked",
			Spawns:     []defs.SpawnSpec{{EnemyKind: "Sniper", Count: 1, Interval: 1}},
			OnStart:    func() error { starts++; return nil },
			OnComplete: func() error { completes++; return errors.New("script exploded") },
		}, nil
	})
	host := &fakeHost{}
	m := NewWaveManager(source, host, cfg, utils.NewPRNGService(1), d)
	require.True(t, m.StartNextWave())

	for i := 0; i < 5; i++ {
		m.Update(0.1)
		host.alive = 0
	}

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, completes)
	assert.Equal(t, WaveTransition, m.State(), "hook errors do not stop progression")
}

func TestFailedLoadStallsCampaign(t *testing.T) {
	_, cfg, d := newTestWorld(t)
	cases := map[string]defs.WaveSource{
		"missing":      defs.StaticWaves{},
		"unknown kind": defs.StaticWaves{1: {Name: "Bad", Spawns: []defs.SpawnSpec{{EnemyKind: "Dragon", Count: 1, Interval: 1}}}},
		"empty spawns": defs.StaticWaves{1: {Name: "Empty"}},
	}
	for name, source := range cases {
		t.Run(name, func(t *testing.T) {
			m := NewWaveManager(source, &fakeHost{}, cfg, utils.NewPRNGService(1), d)

			assert.False(t, m.StartNextWave())
			assert.Equal(t, WaveReady, m.State())
			assert.False(t, m.Ready())
			info := m.Info()
			assert.True(t, info.Stalled)
			assert.Zero(t, info.Number)
			assert.False(t, info.CampaignComplete)
		})
	}
}

func TestBuiltInCampaignLoads(t *testing.T) {
	_, cfg, d := newTestWorld(t)
	m := NewWaveManager(defs.WavePatterns, &fakeHost{}, cfg, utils.NewPRNGService(1), d)
	for n := 1; n <= cfg.Spawning.WaveCount; n++ {
		ws, err := defs.WavePatterns.LoadWave(n)
		require.NoError(t, err)
		_, err = defs.BuildWave(ws)
		require.NoError(t, err, "wave %d", n)
	}
	assert.True(t, m.StartNextWave())
	assert.Equal(t, "First Contact", m.Info().Name)
}
