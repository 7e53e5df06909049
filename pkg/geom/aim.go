// pkg/geom/aim.go
package geom

import "math"

// DirectVelocity returns a velocity of the given speed pointing from origin to target.
// Coincident points yield the zero vector.
func DirectVelocity(origin, target Vec2, speed float64) Vec2 {
	return target.Sub(origin).Normalize().Scale(speed)
}

// InterceptTime solves (|v|²-s²)t² + 2(d·v)t + |d|² = 0 for the smallest
// positive t, where d is the displacement to the target, v the target
// velocity and s the projectile speed. ok is false when no positive real root
// exists or the equation degenerates (target as fast as the projectile).
func InterceptTime(d, v Vec2, speed float64) (t float64, ok bool) {
	a := v.LenSq() - speed*speed
	b := 2 * d.Dot(v)
	c := d.LenSq()

	if math.Abs(a) < Epsilon {
		return 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t = math.Inf(1)
	if t1 > 0 {
		t = t1
	}
	if t2 > 0 && t2 < t {
		t = t2
	}
	if math.IsInf(t, 1) {
		return 0, false
	}
	return t, true
}

// LeadVelocity aims a projectile of the given speed at the point where it
// meets a target moving at targetVel. Falls back to DirectVelocity at the
// target's current position when no intercept exists.
func LeadVelocity(origin, targetPos, targetVel Vec2, speed float64) Vec2 {
	d := targetPos.Sub(origin)
	t, ok := InterceptTime(d, targetVel, speed)
	if !ok {
		return DirectVelocity(origin, targetPos, speed)
	}
	aim := targetPos.Add(targetVel.Scale(t))
	return DirectVelocity(origin, aim, speed)
}
