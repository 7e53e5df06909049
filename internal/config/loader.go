// internal/config/loader.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads a TOML document on top of Default. A missing file is not an
// error: the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("Config: ignoring unknown keys %v", undecoded)
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate rejects values that would break the simulation.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"player.movement_speed", c.Player.MovementSpeed},
		{"player.max_energy", c.Player.MaxEnergy},
		{"homing.speed", c.Homing.Speed},
		{"homing.max_lifetime", c.Homing.MaxLifetime},
		{"homing.max_speed_factor", c.Homing.MaxSpeedFactor},
		{"collision.projectile_radius", c.Collision.ProjectileRadius},
		{"collision.enemy_radius", c.Collision.EnemyRadius},
		{"collision.player_radius", c.Collision.PlayerRadius},
		{"collision.ghost_radius", c.Collision.GhostRadius},
		{"weapons.bullet.projectile_speed", c.Weapons.Bullet.ProjectileSpeed},
		{"weapons.laser.projectile_speed", c.Weapons.Laser.ProjectileSpeed},
		{"weapons.missile.projectile_speed", c.Weapons.Missile.ProjectileSpeed},
		{"weapons.plasma.projectile_speed", c.Weapons.Plasma.ProjectileSpeed},
		{"weapons.bombs.projectile_speed", c.Weapons.Bombs.ProjectileSpeed},
		{"combat.player_explosion_radius", c.Combat.PlayerExplosionRadius},
		{"combat.ghost_explosion_radius", c.Combat.GhostExplosionRadius},
		{"combat.enemy_explosion_radius", c.Combat.EnemyExplosionRadius},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	energy := []struct {
		name  string
		value float64
	}{
		{"player.starting_energy", c.Player.StartingEnergy},
		{"player.parry_energy_cost", c.Player.ParryEnergyCost},
		{"dash.energy_cost", c.Dash.EnergyCost},
		{"energy.regen_rate_idle", c.Energy.RegenRateIdle},
		{"energy.regen_rate_active", c.Energy.RegenRateActive},
		{"energy.ghost_drain_ratio", c.Energy.GhostDrainRatio},
	}
	for _, e := range energy {
		if !finite(e.value) || e.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalid, e.name, e.value)
		}
	}

	rules := []struct {
		name         string
		min, optimal int
	}{
		{"v_shape", c.Formations.VShapeMin, c.Formations.VShapeOptimal},
		{"line", c.Formations.LineMin, c.Formations.LineOptimal},
		{"circle", c.Formations.CircleMin, c.Formations.CircleOptimal},
	}
	for _, r := range rules {
		if r.min < 1 || r.min > r.optimal {
			return fmt.Errorf("%w: formations.%s needs 1 <= min <= optimal, got %d/%d", ErrInvalid, r.name, r.min, r.optimal)
		}
	}

	if c.Entities.Splitting.SplitCount < 0 {
		return fmt.Errorf("%w: entities.splitting.split_count must not be negative", ErrInvalid)
	}
	if c.Spawning.WaveCount < 0 {
		return fmt.Errorf("%w: spawning.wave_count must not be negative", ErrInvalid)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
