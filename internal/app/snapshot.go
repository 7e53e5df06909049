// internal/app/snapshot.go
package app

import (
	"fmt"
	"strings"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/formation"
	"go-ghost-shooter/internal/system"
)

// Snapshot is a read-only copy of what the HUD and the debug report show.
type Snapshot struct {
	State     component.GameState
	GameTime  float64
	Wave      system.WaveInfo
	Health    float64
	MaxHealth float64
	Energy    float64
	MaxEnergy float64
	Formation formation.Kind
	Queue     []defs.EntityKind
	Weapons   []defs.WeaponKind
	Banner    string

	Enemies     int
	Ghosts      int
	Projectiles int
	Particles   int
	Kills       int
	Escaped     int
}

func (g *Game) Snapshot() Snapshot {
	w := g.World
	return Snapshot{
		State:       w.State,
		GameTime:    w.GameTime,
		Wave:        g.WaveManager.Info(),
		Health:      w.Player.Stats.Health,
		MaxHealth:   w.Player.Stats.MaxHealth,
		Energy:      w.Player.Energy,
		MaxEnergy:   w.Player.MaxEnergy,
		Formation:   w.Formation,
		Queue:       append([]defs.EntityKind(nil), w.Player.AvailableGhosts...),
		Weapons:     append([]defs.WeaponKind(nil), w.Player.Weapons...),
		Banner:      g.Banner(),
		Enemies:     len(w.Enemies),
		Ghosts:      w.ActiveGhosts(),
		Projectiles: len(w.Projectiles),
		Particles:   len(w.Particles),
		Kills:       w.Kills,
		Escaped:     w.Escaped,
	}
}

// DebugReport renders the snapshot as plain text for the clipboard.
func (g *Game) DebugReport() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "state: %s  time: %.1fs\n", s.State, s.GameTime)
	fmt.Fprintf(&b, "wave: %d/%d %q %s", s.Wave.Number, s.Wave.Total, s.Wave.Name, s.Wave.State)
	if s.Wave.Stalled {
		b.WriteString(" (stalled)")
	}
	if s.Wave.CampaignComplete {
		b.WriteString(" (campaign complete)")
	}
	fmt.Fprintf(&b, "  spawned %d/%d\n", s.Wave.Spawned, s.Wave.ToSpawn)
	fmt.Fprintf(&b, "health: %.0f/%.0f  energy: %.0f/%.0f\n", s.Health, s.MaxHealth, s.Energy, s.MaxEnergy)
	fmt.Fprintf(&b, "formation: %s  queue: %s\n", s.Formation, joinKinds(s.Queue))
	fmt.Fprintf(&b, "enemies: %d  ghosts: %d  projectiles: %d  particles: %d\n",
		s.Enemies, s.Ghosts, s.Projectiles, s.Particles)
	fmt.Fprintf(&b, "kills: %d  escaped: %d\n", s.Kills, s.Escaped)
	return b.String()
}

func joinKinds(kinds []defs.EntityKind) string {
	if len(kinds) == 0 {
		return "-"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

func waveTitle(d event.WaveData) string {
	if d.Name == "" {
		return fmt.Sprintf("Wave %d", d.Number)
	}
	return fmt.Sprintf("Wave %d: %s", d.Number, d.Name)
}
