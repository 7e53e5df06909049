// internal/ui/player_bars.go
package ui

import (
	"fmt"
	"image/color"

	"go-ghost-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderWidth = 1

var borderColor = color.White

// PlayerBars отображает здоровье и энергию игрока.
type PlayerBars struct {
	X, Y float32
	face font.Face
}

func NewPlayerBars(x, y float32, face font.Face) *PlayerBars {
	return &PlayerBars{X: x, Y: y, face: face}
}

// Draw рисует две полосы одна под другой.
func (b *PlayerBars) Draw(screen *ebiten.Image, health, maxHealth, energy, maxEnergy float64) {
	b.bar(screen, b.Y, "HP", health, maxHealth, config.HealthBarColor)
	b.bar(screen, b.Y+config.BarHeight+8, "EN", energy, maxEnergy, config.EnergyBarColor)
}

func (b *PlayerBars) bar(screen *ebiten.Image, y float32, label string, value, maxValue float64, fill color.RGBA) {
	x := b.X + 3*config.TextCharWidth
	vector.DrawFilledRect(screen, x, y, config.BarWidth, config.BarHeight, config.BarBackColor, false)
	vector.StrokeRect(screen, x, y, config.BarWidth, config.BarHeight, borderWidth, borderColor, true)

	if w := float32(Fill(value, maxValue) * (config.BarWidth - borderWidth*2)); w > 0 {
		vector.DrawFilledRect(screen, x+borderWidth, y+borderWidth, w, config.BarHeight-borderWidth*2, fill, true)
	}

	text.Draw(screen, label, b.face, int(b.X), int(y)+config.BarHeight, config.TextLightColor)
	value = max(value, 0)
	text.Draw(screen, fmt.Sprintf("%.0f/%.0f", value, maxValue), b.face, int(x+config.BarWidth)+6, int(y)+config.BarHeight, config.TextLightColor)
}

// Fill returns value/maxValue clamped to [0, 1].
func Fill(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return min(max(value/maxValue, 0), 1)
}
