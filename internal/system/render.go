// internal/system/render.go
package system

import (
	"image"
	"image/color"
	"math"

	"go-ghost-shooter/internal/component"
	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/entity"
	"go-ghost-shooter/pkg/geom"
	"go-ghost-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	world *entity.World
	cfg   *config.Config

	whitePixel *ebiten.Image
}

func NewRenderSystem(world *entity.World, cfg *config.Config) *RenderSystem {
	return &RenderSystem{world: world, cfg: cfg}
}

// Draw renders the playfield shifted by the shake offset. Nothing here
// mutates the world.
func (s *RenderSystem) Draw(screen *ebiten.Image, offset geom.Vec2) {
	screen.Fill(config.BackgroundColor)
	cc := &s.cfg.Collision

	// Частицы под всем остальным
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		alpha := 1.0
		if p.MaxLifetime > 0 {
			alpha = p.Lifetime / p.MaxLifetime
		}
		circle(screen, p.Position.Add(offset), p.Size, render.WithAlpha(p.Color, alpha))
	}

	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		c := config.EnemyColors[int(e.Kind)%len(config.EnemyColors)]
		if e.Anim.HitFlashTimer > 0 {
			c = config.HitFlashColor
		}
		pos := e.Position.Add(offset)
		circle(screen, pos, cc.EnemyRadius, c)
		s.healthBar(screen, pos, cc.EnemyRadius, e.Stats)
	}

	for i := range s.world.Ghosts {
		g := &s.world.Ghosts[i]
		base := render.LerpColor(config.EnemyColors[int(g.Kind)%len(config.EnemyColors)], config.GhostTint, 0.5)
		if g.Anim.HitFlashTimer > 0 {
			base = config.HitFlashColor
		}
		pos := g.Position.Add(offset)
		r := cc.GhostRadius * g.Anim.Scale
		circle(screen, pos, r, render.WithAlpha(base, g.Anim.Alpha))
		// Метка вращения видна во время появления и исчезновения.
		tip := pos.Add(geom.V(0, -r).Rotate(g.Anim.Rotation))
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 1.5, render.WithAlpha(config.TextLightColor, g.Anim.Alpha), true)
	}

	for i := range s.world.Projectiles {
		p := &s.world.Projectiles[i]
		c := config.WeaponColors[int(p.Weapon)%len(config.WeaponColors)]
		if !p.Owner.Friendly() {
			c = render.DarkenColor(c)
			c.R = 255
		}
		circle(screen, p.Position.Add(offset), cc.ProjectileRadius, c)
	}

	s.drawPlayer(screen, offset)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, offset geom.Vec2) {
	p := &s.world.Player
	pos := p.Position.Add(offset)
	r := s.cfg.Collision.PlayerRadius

	c := config.PlayerColor
	switch {
	case p.HitFlashTimer > 0:
		c = config.HitFlashColor
	case p.Invulnerable():
		c = config.PlayerIFrameColor
	}
	// Треугольник носом вверх
	var path vector.Path
	path.MoveTo(float32(pos.X), float32(pos.Y-r))
	path.LineTo(float32(pos.X-r), float32(pos.Y+r))
	path.LineTo(float32(pos.X+r), float32(pos.Y+r))
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, s.pixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if p.Parry.Active {
		ring := r + s.cfg.Player.ParryReach
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(ring), 2, config.ParryRingColor, true)
	}
}

func (s *RenderSystem) healthBar(screen *ebiten.Image, pos geom.Vec2, radius float64, st component.Stats) {
	if st.MaxHealth <= 0 || st.Health >= st.MaxHealth {
		return
	}
	w := float32(radius * 2)
	x := float32(pos.X - radius)
	y := float32(pos.Y - radius - 6)
	frac := float32(math.Max(st.Health, 0) / st.MaxHealth)
	vector.DrawFilledRect(screen, x, y, w, 3, config.BarBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*frac, 3, config.HealthBarColor, false)
}

func circle(screen *ebiten.Image, pos geom.Vec2, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), c, true)
}

// pixel is the 1x1 white source image for DrawTriangles, created on first draw.
func (s *RenderSystem) pixel() *ebiten.Image {
	if s.whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.whitePixel
}
