// pkg/geom/vector.go
package geom

import "math"

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-6

// Vec2 is a 2D vector in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector, or the zero vector when v is (near) zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ClampLen limits the length of v to max.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l < Epsilon {
		return v
	}
	return v.Scale(max / l)
}

// Lerp interpolates between a and b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func DistanceSq(a, b Vec2) float64 {
	return b.Sub(a).LenSq()
}

func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// CircleOverlap reports whether two circles intersect. Circles that only
// touch do not overlap.
func CircleOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return DistanceSq(a, b) < r*r
}

// Nearest returns the index of the point closest to origin, or -1 for an
// empty slice. On ties the first minimum wins.
func Nearest(origin Vec2, points []Vec2) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range points {
		d := DistanceSq(origin, p)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
