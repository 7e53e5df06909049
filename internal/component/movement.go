// internal/component/movement.go
package component

import "go-ghost-shooter/pkg/geom"

// MovementMode - режим движения
type MovementMode int

const (
	FreeMovement MovementMode = iota
	FollowingPath
)

// BezierPath is an immutable entry curve. Quadratic paths ignore P2 and use
// P3 as the end point.
type BezierPath struct {
	P0, P1, P2, P3 geom.Vec2
	Duration       float64
	Cubic          bool
}

// At evaluates the path at progress t in [0, 1].
func (b BezierPath) At(t float64) geom.Vec2 {
	if b.Cubic {
		return geom.CubicBezier(b.P0, b.P1, b.P2, b.P3, t)
	}
	return geom.QuadraticBezier(b.P0, b.P1, b.P3, t)
}

// MovementState tracks path progress. Progress reaching 1 hands the entity
// over to free movement.
type MovementState struct {
	Mode     MovementMode
	Path     BezierPath
	Progress float64
	Elapsed  float64
}

// FollowPath starts a new path from the beginning.
func FollowPath(p BezierPath) MovementState {
	return MovementState{Mode: FollowingPath, Path: p}
}
