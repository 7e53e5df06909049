// internal/system/spawn.go
package system

import (
	"log"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/utils"
	"go-ghost-shooter/pkg/geom"
)

// SpawnSystem creates enemies with a per-kind entry curve and, outside
// wave mode, spawns random enemies on a timer.
type SpawnSystem struct {
	world *entity.World
	cfg   *config.Config
	rng   *utils.PRNGService

	randomTimer float64
}

func NewSpawnSystem(world *entity.World, cfg *config.Config, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		world:       world,
		cfg:         cfg,
		rng:         rng,
		randomTimer: cfg.Spawning.InitialDelay,
	}
}

// SpawnEnemy places a new enemy of kind at the start of its entry path.
func (s *SpawnSystem) SpawnEnemy(kind defs.EntityKind, x float64) {
	profile := kind.Profile(&s.cfg.Entities)
	path := s.EntryPath(kind, x)
	eb := &s.cfg.EnemyBehavior

	s.world.Enemies = append(s.world.Enemies, component.Enemy{Combatant: component.Combatant{
		ID:       s.world.NewEntity(),
		Position: path.P0,
		Stats: component.Stats{
			Health:    profile.Health,
			MaxHealth: profile.Health,
			Damage:    profile.Damage,
		},
		Kind:      kind,
		Weapons:   profile.Weapons,
		FireTimer: s.rng.Range(eb.InitialFireDelayMin, eb.InitialFireDelayMax),
		Movement:  component.FollowPath(path),
		Anim:      component.IdleAnim(),
	}})
}

// UpdateRandom spawns a random kind every EnemySpawnInterval. Only used when
// wave mode is off.
func (s *SpawnSystem) UpdateRandom(deltaTime float64) {
	s.randomTimer -= deltaTime
	if s.randomTimer > 0 {
		return
	}
	s.randomTimer = s.cfg.Spawning.EnemySpawnInterval
	kind := defs.AllEntityKinds[s.rng.Intn(len(defs.AllEntityKinds))]
	margin := s.cfg.Spawning.SpawnMargin
	x := s.rng.BiasedRange(margin, s.cfg.Window.Width-margin)
	s.SpawnEnemy(kind, x)
	log.Printf("SpawnSystem: random %s at x=%.0f", kind, x)
}

// EntryPath builds the entry curve for kind. Snipers sweep in from a side,
// tanks and elites make long dramatic entries, everything else drops in from
// the top near x.
func (s *SpawnSystem) EntryPath(kind defs.EntityKind, x float64) component.BezierPath {
	w := s.cfg.Window.Width
	top := s.cfg.Spawning.SpawnY
	r := s.rng

	switch kind {
	case defs.Sniper:
		side := r.Sign()
		edge, inward := -50.0, 1.0
		if side > 0 {
			edge, inward = w+50, -1
		}
		return component.BezierPath{
			P0:       geom.V(edge, r.Range(40, 120)),
			P1:       geom.V(edge+inward*r.Range(130, 170), r.Range(20, 80)),
			P2:       geom.V(edge+inward*r.Range(150, 190), r.Range(100, 160)),
			P3:       geom.V(edge+inward*r.Range(150, 160), r.Range(130, 170)),
			Duration: r.Range(1.5, 2.3),
			Cubic:    true,
		}

	case defs.Tank:
		dir := r.Sign()
		start := w/2 - dir*(w/2+50)
		return component.BezierPath{
			P0:       geom.V(start, top-30),
			P1:       geom.V(w/2-dir*w*0.2, 60),
			P2:       geom.V(w/2+dir*w*0.2, 140),
			P3:       geom.V(x, r.Range(160, 200)),
			Duration: r.Range(2.2, 2.8),
			Cubic:    true,
		}

	case defs.Elite:
		swing := r.Sign() * r.Range(80, 120)
		return component.BezierPath{
			P0:       geom.V(w/2, top-60),
			P1:       geom.V(w/2+swing, 40),
			P2:       geom.V(w/2-swing, 100),
			P3:       geom.V(w/2, 110),
			Duration: r.Range(2.0, 2.5),
			Cubic:    true,
		}

	case defs.Healer, defs.Splitter:
		bend := r.Sign() * r.Range(30, 80)
		return component.BezierPath{
			P0:       geom.V(x, top-10),
			P1:       geom.V(x+bend, r.Range(50, 90)),
			P3:       geom.V(x, r.Range(110, 150)),
			Duration: r.Range(1.4, 1.9),
		}

	default:
		return component.BezierPath{
			P0:       geom.V(x, top-10),
			P1:       geom.V(x+r.Range(-80, 80), 40),
			P2:       geom.V(x+r.Range(-40, 40), 100),
			P3:       geom.V(x, r.Range(120, 140)),
			Duration: r.Range(1.2, 1.8),
			Cubic:    true,
		}
	}
}
