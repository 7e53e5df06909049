// internal/ui/ghost_panel.go
package ui

import (
	"fmt"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/internal/defs"
	"go-ghost-shooter/internal/formation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const ghostIconRadius = 7

// GhostPanel shows the capture queue grouped by kind and the current
// formation.
type GhostPanel struct {
	X, Y float32
	face font.Face
}

func NewGhostPanel(x, y float32, face font.Face) *GhostPanel {
	return &GhostPanel{X: x, Y: y, face: face}
}

// CountByKind groups the queue in AllEntityKinds order.
func CountByKind(queue []defs.EntityKind) []int {
	counts := make([]int, len(defs.AllEntityKinds))
	for _, k := range queue {
		if int(k) < len(counts) {
			counts[k]++
		}
	}
	return counts
}

func (p *GhostPanel) Draw(screen *ebiten.Image, queue []defs.EntityKind, current formation.Kind, active int) {
	header := fmt.Sprintf("%s  ghosts: %d", current, active)
	text.Draw(screen, header, p.face, int(p.X), int(p.Y), config.TextLightColor)

	y := p.Y + 16
	x := p.X
	for i, n := range CountByKind(queue) {
		if n == 0 {
			continue
		}
		c := config.EnemyColors[i%len(config.EnemyColors)]
		vector.DrawFilledCircle(screen, x+ghostIconRadius, y+ghostIconRadius, ghostIconRadius, c, true)
		// цифра это клавиша призыва
		label := fmt.Sprintf("%d:x%d", i+1, n)
		text.Draw(screen, label, p.face, int(x)+2*ghostIconRadius+4, int(y)+ghostIconRadius+config.TextOffsetY, config.TextLightColor)
		x += 2*ghostIconRadius + float32(len(label)*config.TextCharWidth) + 12
	}
}
