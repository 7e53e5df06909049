package formation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ghost-shooter/internal/config"
	"go-ghost-shooter/pkg/geom"
)

func setup() (*config.FormationsConfig, *config.FormationSpacingConfig) {
	cfg := config.Default()
	return &cfg.Formations, &cfg.FormationSpacing
}

func TestResolveFallsBackToScattered(t *testing.T) {
	rules, _ := setup()
	cases := []struct {
		kind  Kind
		count int
		want  Kind
	}{
		{Circle, 2, Scattered},
		{Circle, 4, Circle},
		{Line, 2, Scattered},
		{Line, 3, Line},
		{VShape, 1, Scattered},
		{VShape, 2, VShape},
		{Scattered, 1, Scattered},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Resolve(tc.kind, tc.count, rules), "%s with %d", tc.kind, tc.count)
	}
}

func TestPositionsCircleWithTwoGhostsIsScattered(t *testing.T) {
	rules, sp := setup()
	anchor := geom.V(400, 500)

	got, used := Positions(anchor, 2, Circle, rules, sp, 800)
	require.Equal(t, Scattered, used)
	for i, p := range got {
		assert.Equal(t, PositionFor(anchor, i, 2, Scattered, sp, 800), p)
		assert.Less(t, p.Y, anchor.Y, "scattered slots sit above the anchor")
	}
}

func TestLineIsCenteredAndClamped(t *testing.T) {
	_, sp := setup()
	anchor := geom.V(400, 500)

	var sum float64
	for i := 0; i < 5; i++ {
		p := PositionFor(anchor, i, 5, Line, sp, 800)
		assert.Equal(t, anchor.Y-sp.LineHeightOffset, p.Y)
		sum += p.X
	}
	assert.InDelta(t, anchor.X, sum/5, 1e-9)

	edge := PositionFor(geom.V(10, 500), 0, 5, Line, sp, 800)
	assert.Equal(t, sp.ScreenEdgePadding, edge.X)
}

func TestVShapeAlternatesSides(t *testing.T) {
	_, sp := setup()
	anchor := geom.V(400, 500)

	p0 := PositionFor(anchor, 0, 4, VShape, sp, 800)
	p1 := PositionFor(anchor, 1, 4, VShape, sp, 800)
	p2 := PositionFor(anchor, 2, 4, VShape, sp, 800)

	assert.Less(t, p0.X, anchor.X)
	assert.Greater(t, p1.X, anchor.X)
	assert.Equal(t, p0.Y, p1.Y)
	assert.Less(t, p2.Y, p0.Y, "second pair sits higher")
	assert.Less(t, p2.X, p0.X, "second pair sits wider")
}

func TestCircleSlotsAreOnRadius(t *testing.T) {
	_, sp := setup()
	anchor := geom.V(400, 400)
	for i := 0; i < 8; i++ {
		p := PositionFor(anchor, i, 8, Circle, sp, 800)
		assert.InDelta(t, sp.CircleRadius, geom.Distance(anchor, p), 1e-9)
	}
	first := PositionFor(anchor, 0, 8, Circle, sp, 800)
	second := PositionFor(anchor, 1, 8, Circle, sp, 800)
	angle := math.Atan2(second.Y-anchor.Y, second.X-anchor.X) - math.Atan2(first.Y-anchor.Y, first.X-anchor.X)
	assert.InDelta(t, 2*math.Pi/8, angle, 1e-9)
}

func TestScatteredIsStable(t *testing.T) {
	_, sp := setup()
	anchor := geom.V(400, 500)
	for i := 0; i < 10; i++ {
		a := PositionFor(anchor, i, 10, Scattered, sp, 800)
		b := PositionFor(anchor, i, 10, Scattered, sp, 800)
		assert.Equal(t, a, b)
		assert.LessOrEqual(t, anchor.Y-a.Y, sp.ScatterMaxHeight)
		assert.GreaterOrEqual(t, anchor.Y-a.Y, sp.ScatterMinHeight)
		assert.LessOrEqual(t, math.Abs(a.X-anchor.X), sp.ScatterHalfWidth)
	}
}

func TestNextSkipsKindsTooLargeForQueue(t *testing.T) {
	rules, _ := setup()

	// Line needs 3, so two ghosts go straight to V-Shape and back
	assert.Equal(t, VShape, Next(Scattered, 2, rules))
	assert.Equal(t, Scattered, Next(VShape, 2, rules))

	k := Scattered
	var seen []Kind
	for range All {
		k = Next(k, 8, rules)
		seen = append(seen, k)
	}
	assert.Equal(t, []Kind{Line, VShape, Circle, Scattered}, seen)

	assert.Equal(t, Circle, Next(Circle, 0, rules), "nothing fits an empty queue")
}
