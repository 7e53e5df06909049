// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/internal/event"
	"go-ghost-shooter/internal/utils"
	"go-ghost-shooter/pkg/geom"
)

var (
	deathRed    = color.RGBA{255, 60, 40, 255}
	deathOrange = color.RGBA{255, 150, 40, 255}
	deathYellow = color.RGBA{255, 230, 80, 255}
	parryBlue   = color.RGBA{90, 160, 255, 255}
	parryWhite  = color.RGBA{240, 245, 255, 255}
)

// ParticleSystem spawns visual bursts from gameplay events and ages them.
type ParticleSystem struct {
	world *entity.World
	cfg   *config.Config
	rng   *utils.PRNGService
}

func NewParticleSystem(world *entity.World, cfg *config.Config, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, cfg: cfg, rng: rng}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ParticleSystem) OnEvent(e event.Event) {
	pc := &s.cfg.Particles
	switch e.Type {
	case event.EnemyKilled:
		d, _ := e.Data.(event.EnemyKilledData)
		s.burst(d.Position, pc.DeathRedCount, deathRed, false)
		s.burst(d.Position, pc.DeathOrangeCount, deathOrange, false)
		s.burst(d.Position, pc.DeathYellowCount, deathYellow, false)
	case event.EnemySplit:
		d, _ := e.Data.(event.EnemySplitData)
		n := pc.ExplosionCountMin + s.rng.Intn(pc.ExplosionCountMax-pc.ExplosionCountMin+1)
		s.burst(d.Position, n, config.EnemyColors[0], false)
	case event.PlayerHit:
		d, _ := e.Data.(event.PositionData)
		s.burst(d.Position, pc.ExplosionCountMin, config.HealthBarColor, true)
	case event.WeaponHit:
		d, _ := e.Data.(event.WeaponHitData)
		s.burst(d.Position, s.sparkCount(d), config.WeaponColors[d.Weapon], true)
	case event.ProjectileParried:
		d, _ := e.Data.(event.ParryData)
		s.burst(d.Position, pc.ParryBlueCount, parryBlue, true)
		s.burst(d.Position, pc.ParryWhiteCount, parryWhite, true)
	}
}

func (s *ParticleSystem) sparkCount(d event.WeaponHitData) int {
	pc := &s.cfg.Particles
	counts := [...]int{
		pc.BulletParticleCount,
		pc.LaserParticleCount,
		pc.MissileParticleCount,
		pc.PlasmaParticleCount,
		pc.BombParticleCount,
	}
	if int(d.Weapon) < len(counts) {
		return counts[d.Weapon]
	}
	return pc.BulletParticleCount
}

// burst emits n particles in random directions. Sparks are short and fast,
// explosion debris is slower and lives longer.
func (s *ParticleSystem) burst(at geom.Vec2, n int, c color.RGBA, spark bool) {
	pc := &s.cfg.Particles
	lifeMin, lifeMax := pc.ExplosionLifetimeMin, pc.ExplosionLifetimeMax
	sizeMin, sizeMax := pc.ExplosionSizeMin, pc.ExplosionSizeMax
	speedMin, speedMax := pc.ExplosionSpeedMin, pc.ExplosionSpeedMax
	if spark {
		lifeMin, lifeMax = pc.SparkLifetimeMin, pc.SparkLifetimeMax
		sizeMin, sizeMax = pc.SparkSizeMin, pc.SparkSizeMax
		speedMin, speedMax = pc.SparkSpeedMin, pc.SparkSpeedMax
	}

	room := pc.MaxCount - len(s.world.Particles)
	n = min(n, room)
	for i := 0; i < n; i++ {
		angle := s.rng.Range(0, 2*math.Pi)
		life := s.rng.Range(lifeMin, lifeMax)
		s.world.Particles = append(s.world.Particles, component.Particle{
			Position:    at,
			Velocity:    geom.V(math.Cos(angle), math.Sin(angle)).Scale(s.rng.Range(speedMin, speedMax)),
			Lifetime:    life,
			MaxLifetime: life,
			Size:        s.rng.Range(sizeMin, sizeMax),
			Color:       c,
		})
	}
}

// Update applies friction and shrinkage, then drops expired particles.
func (s *ParticleSystem) Update(deltaTime float64) {
	pc := &s.cfg.Particles
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
		p.Velocity = p.Velocity.Scale(pc.Friction)
		p.Size = max(p.Size-pc.SizeDecay*deltaTime, 0)
		p.Lifetime -= deltaTime
	}
	s.world.Particles = retain(s.world.Particles, func(p *component.Particle) bool {
		return p.Lifetime > 0 && p.Size > 0
	})
}
