package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[combat]
ghost_damage_multiplier = 0.5

[weapons.laser]
damage = 75.0

[entities.tank]
weapons = ["Bombs"]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Combat.GhostDamageMultiplier)
	assert.Equal(t, 75.0, cfg.Weapons.Laser.Damage)
	assert.Equal(t, []string{"Bombs"}, cfg.Entities.Tank.Weapons)
	// untouched values keep their defaults
	assert.Equal(t, 1.5, cfg.Weapons.Laser.FireRate)
	assert.Equal(t, 0.75, Default().Combat.GhostDamageMultiplier)
	assert.Equal(t, 150.0, cfg.Entities.Tank.Health)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[formations]\ncircle_min = 9\ncircle_optimal = 8\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsNonFiniteNumbers(t *testing.T) {
	docs := []string{
		"[player]\nmax_energy = nan\n",
		"[homing]\nspeed = inf\n",
		"[energy]\nregen_rate_idle = nan\n",
		"[dash]\nenergy_cost = -inf\n",
	}
	for _, doc := range docs {
		err := Decode([]byte(doc), Default())
		assert.ErrorIs(t, err, ErrInvalid, doc)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[homing\nspeed = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	cfg := Default()
	cfg.Homing.Speed = 1
	require.NoError(t, Decode(data, cfg))
	assert.Equal(t, Default().Homing.Speed, cfg.Homing.Speed)
}

func TestWatcherPublishesReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[homing]\nspeed = 300.0\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[homing]\nspeed = 420.0\n"), 0o644))

	var got *Config
	require.Eventually(t, func() bool {
		cfg, ok := w.Poll()
		if ok {
			got = cfg
		}
		return got != nil && got.Homing.Speed == 420
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherKeepsOnlyNewestUpdate(t *testing.T) {
	w := &Watcher{updates: make(chan *Config, 1)}
	first, second := Default(), Default()
	second.Homing.TurnRate = 3

	w.publish(first)
	w.publish(second)

	cfg, ok := w.Poll()
	require.True(t, ok)
	assert.Equal(t, 3.0, cfg.Homing.TurnRate)
	_, ok = w.Poll()
	assert.False(t, ok)
}
