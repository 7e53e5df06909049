// internal/formation/formation.go
package formation

import (
	"fmt"
	"math"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/pkg/geom"
)

// Kind is a named layout for summoned ghosts.
type Kind int

const (
	Scattered Kind = iota
	Line
	VShape
	Circle
)

// All lists the kinds in hotkey order.
var All = []Kind{Scattered, Line, VShape, Circle}

func (k Kind) String() string {
	switch k {
	case Scattered:
		return "Scattered"
	case Line:
		return "Line"
	case VShape:
		return "V-Shape"
	case Circle:
		return "Circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MinCount is the smallest ghost count the layout is defined for.
func (k Kind) MinCount(r *config.FormationsConfig) int {
	switch k {
	case Line:
		return r.LineMin
	case VShape:
		return r.VShapeMin
	case Circle:
		return r.CircleMin
	default:
		return 1
	}
}

// OptimalCount is how many ghosts a deploy places in this layout.
func (k Kind) OptimalCount(r *config.FormationsConfig) int {
	switch k {
	case Line:
		return r.LineOptimal
	case VShape:
		return r.VShapeOptimal
	case Circle:
		return r.CircleOptimal
	default:
		if r.ScatteredMax < 1 {
			return 1
		}
		return r.ScatteredMax
	}
}

// ValidFor reports whether count ghosts can hold the layout.
func (k Kind) ValidFor(count int, r *config.FormationsConfig) bool {
	return count >= k.MinCount(r)
}

// Resolve returns k when it is valid for count, Scattered otherwise.
func Resolve(k Kind, count int, r *config.FormationsConfig) Kind {
	if k.ValidFor(count, r) {
		return k
	}
	return Scattered
}

// Next returns the first kind after k in All that count ghosts can hold,
// or k itself when no other kind fits.
func Next(k Kind, count int, r *config.FormationsConfig) Kind {
	start := 0
	for i, f := range All {
		if f == k {
			start = i
			break
		}
	}
	for step := 1; step < len(All); step++ {
		if f := All[(start+step)%len(All)]; f.ValidFor(count, r) {
			return f
		}
	}
	return k
}

// PositionFor returns the slot of ghost index out of total around anchor.
// Callers resolve the kind first; see Resolve.
func PositionFor(anchor geom.Vec2, index, total int, k Kind, sp *config.FormationSpacingConfig, width float64) geom.Vec2 {
	if total < 1 {
		total = 1
	}
	switch k {
	case Line:
		offset := float64(index) - float64(total-1)/2
		x := anchor.X + offset*sp.LineSpacing
		return geom.V(clampX(x, sp.ScreenEdgePadding, width), anchor.Y-sp.LineHeightOffset)

	case VShape:
		// Пары по обе стороны, каждая следующая дальше и выше.
		row := float64(index/2 + 1)
		side := -1.0
		if index%2 == 1 {
			side = 1
		}
		x := anchor.X + side*row*sp.VShapeSpacing
		y := anchor.Y - row*sp.VShapeSpacing*sp.VShapeVerticalFactor
		return geom.V(clampX(x, sp.ScreenEdgePadding, width), y)

	case Circle:
		angle := 2 * math.Pi * float64(index) / float64(total)
		return geom.V(
			anchor.X+math.Cos(angle)*sp.CircleRadius,
			anchor.Y+math.Sin(angle)*sp.CircleRadius,
		)

	default:
		fx, fy := scatter(index)
		x := anchor.X + (fx*2-1)*sp.ScatterHalfWidth
		y := anchor.Y - (sp.ScatterMinHeight + fy*(sp.ScatterMaxHeight-sp.ScatterMinHeight))
		return geom.V(clampX(x, sp.ScreenEdgePadding, width), y)
	}
}

// Positions lays out count ghosts, substituting Scattered when kind cannot
// hold that many. It returns the kind actually used.
func Positions(anchor geom.Vec2, count int, k Kind, r *config.FormationsConfig, sp *config.FormationSpacingConfig, width float64) ([]geom.Vec2, Kind) {
	used := Resolve(k, count, r)
	out := make([]geom.Vec2, count)
	for i := range out {
		out[i] = PositionFor(anchor, i, count, used, sp, width)
	}
	return out, used
}

func clampX(x, padding, width float64) float64 {
	if width <= 2*padding {
		return x
	}
	return math.Max(padding, math.Min(width-padding, x))
}

// scatter derives two stable pseudo-random fractions in [0, 1) from index.
func scatter(index int) (float64, float64) {
	a := splitmix64(uint64(index) + 0x9e3779b97f4a7c15)
	b := splitmix64(a)
	return float64(a>>11) / (1 << 53), float64(b>>11) / (1 << 53)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
