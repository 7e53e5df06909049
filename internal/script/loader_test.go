package script

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/defs"
)

const testInit = `
function spawn(type, count, interval, delay) {
    return { type: type, count: count, interval: interval, delay: delay || 0 };
}
function wave(def) { return def; }
`

func newLoader(t *testing.T, files map[string]string) *JSLoader {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, src := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(src)}
	}
	l, err := NewJSLoader(fsys)
	require.NoError(t, err)
	return l
}

func TestLoadWaveParsesDefinitionAndHooks(t *testing.T) {
	l := newLoader(t, map[string]string{
		"init.js": testInit,
		"waves/wave_1.js": `
var started = 0;
wave({
    wave_number: 1,
    name: "First Contact",
    prep_time: 2.5,
    spawns: [spawn("BasicFighter", 3, 1.5), spawn("Sniper", 1, 2, 4)],
    on_start: function () { started++; },
})`,
	})

	ws, err := l.LoadWave(1)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Number)
	assert.Equal(t, "First Contact", ws.Name)
	assert.Equal(t, 2.5, ws.PrepTime)
	assert.Equal(t, []defs.SpawnSpec{
		{EnemyKind: "BasicFighter", Count: 3, Interval: 1.5},
		{EnemyKind: "Sniper", Count: 1, Interval: 2, Delay: 4},
	}, ws.Spawns)
	assert.Nil(t, ws.OnComplete)

	require.NotNil(t, ws.OnStart)
	require.NoError(t, ws.OnStart())
	require.NoError(t, ws.OnStart())
	assert.Equal(t, int64(2), l.vm.Get("started").ToInteger())
}

func TestLoadWaveDefaultsPrepTime(t *testing.T) {
	l := newLoader(t, map[string]string{
		"waves/wave_2.js": `({ name: "plain", spawns: [{ type: "Tank", count: 1, interval: 1 }] })`,
	})
	ws, err := l.LoadWave(2)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.Number)
	assert.Equal(t, defaultPrepTime, ws.PrepTime)
}

func TestLoadWaveMissingFile(t *testing.T) {
	l := newLoader(t, nil)
	_, err := l.LoadWave(7)
	assert.ErrorIs(t, err, defs.ErrWaveNotFound)
}

func TestLoadWaveMalformed(t *testing.T) {
	cases := map[string]string{
		"no value":               `var x = 1;`,
		"no name":                `({ spawns: [] })`,
		"no spawns":              `({ name: "x" })`,
		"spawn no type":          `({ name: "x", spawns: [{ count: 1, interval: 1 }] })`,
		"throwing spawns getter": `({ name: "x", get spawns() { throw new Error("bad"); } })`,
		"throwing spawn field":   `({ name: "x", spawns: [{ get type() { throw new Error("bad"); }, count: 1, interval: 1 }] })`,
		"throwing valueOf":       `({ name: "x", spawns: [{ type: "Tank", count: { valueOf: function () { throw new Error("bad"); } }, interval: 1 }] })`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			l := newLoader(t, map[string]string{"waves/wave_1.js": src})
			var err error
			require.NotPanics(t, func() { _, err = l.LoadWave(1) })
			assert.ErrorIs(t, err, ErrMalformedWave)
		})
	}
}

func TestLoadWaveSyntaxError(t *testing.T) {
	l := newLoader(t, map[string]string{"waves/wave_1.js": `({ name: `})
	_, err := l.LoadWave(1)
	assert.Error(t, err)
}

func TestHookErrorsPropagate(t *testing.T) {
	l := newLoader(t, map[string]string{
		"waves/wave_1.js": `({ name: "x", spawns: [{ type: "Tank", count: 1, interval: 1 }], on_complete: function () { throw new Error("boom"); } })`,
	})
	ws, err := l.LoadWave(1)
	require.NoError(t, err)
	require.NotNil(t, ws.OnComplete)
	assert.ErrorContains(t, ws.OnComplete(), "boom")
}

func TestBindExposesHostFunctions(t *testing.T) {
	l := newLoader(t, map[string]string{
		"waves/wave_1.js": `({ name: "x", spawns: [{ type: "Tank", count: 1, interval: 1 }], on_start: function () { grant_energy(25); } })`,
	})
	granted := 0.0
	require.NoError(t, l.Bind("grant_energy", func(amount float64) { granted += amount }))

	ws, err := l.LoadWave(1)
	require.NoError(t, err)
	require.NoError(t, ws.OnStart())
	assert.Equal(t, 25.0, granted)
}

func TestShippedScriptsLoad(t *testing.T) {
	// scripts/ lives at the repository root
	l, err := NewJSLoader(osDirFS(t, "../../scripts"))
	require.NoError(t, err)
	for n := 1; n <= 5; n++ {
		ws, err := l.LoadWave(n)
		require.NoError(t, err, "wave %d", n)
		_, err = defs.BuildWave(ws)
		assert.NoError(t, err, "wave %d", n)
	}
}
