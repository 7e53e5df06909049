// pkg/geom/bezier.go
package geom

// CubicBezier evaluates a cubic Bezier curve at t in [0, 1].
func CubicBezier(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// QuadraticBezier evaluates a quadratic Bezier curve at t in [0, 1].
func QuadraticBezier(p0, p1, p2 Vec2, t float64) Vec2 {
	u := 1 - t
	b0 := u * u
	b1 := 2 * u * t
	b2 := t * t
	return Vec2{
		X: b0*p0.X + b1*p1.X + b2*p2.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y,
	}
}

// CubicBezierTangent returns the (unnormalized) derivative of the cubic curve at t.
func CubicBezierTangent(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	u := 1 - t
	a := p1.Sub(p0).Scale(3 * u * u)
	b := p2.Sub(p1).Scale(6 * u * t)
	c := p3.Sub(p2).Scale(3 * t * t)
	return a.Add(b).Add(c)
}
