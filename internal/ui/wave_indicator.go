// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y float32
	face font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Status is the one-line description under the numeral.
func Status(info system.WaveInfo) string {
	switch {
	case info.CampaignComplete:
		return "all waves cleared"
	case info.Stalled:
		return "waves unavailable"
	case info.State == system.WavePreparing:
		return fmt.Sprintf("%s in %.1fs", info.Name, info.PrepCountdown)
	case info.State == system.WaveActive:
		return fmt.Sprintf("%s %d/%d", info.Name, info.Spawned, info.ToSpawn)
	case info.State == system.WaveComplete, info.State == system.WaveTransition:
		return "cleared"
	}
	return ""
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, info system.WaveInfo) {
	if info.Number <= 0 && !info.Stalled {
		return
	}

	var bg color.RGBA
	switch info.State {
	case system.WaveActive:
		bg = config.WaveActiveColor
	default:
		bg = config.WavePrepColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, config.IndicatorWidth, 34, bg, false)

	numeral := toRoman(info.Number)
	x := int(i.X) + (config.IndicatorWidth-len(numeral)*config.TextCharWidth)/2
	text.Draw(screen, numeral, i.face, x, int(i.Y)+14, config.TextLightColor)

	status := Status(info)
	x = int(i.X) + (config.IndicatorWidth-len(status)*config.TextCharWidth)/2
	text.Draw(screen, status, i.face, x, int(i.Y)+28, config.TextLightColor)
}

// DrawBanner draws msg centred near the top of the screen.
func DrawBanner(screen *ebiten.Image, msg string, face font.Face) {
	if msg == "" {
		return
	}
	w := len(msg) * config.TextCharWidth
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight / 4
	vector.DrawFilledRect(screen, float32(x-8), float32(y-14), float32(w+16), 22, config.BarBackColor, false)
	text.Draw(screen, msg, face, x, y+config.TextOffsetY, config.TextLightColor)
}
