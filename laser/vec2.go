// Package laser implements the two-axis motion planning core for a
// CNC/laser-style machine: junction-speed limited trapezoidal velocity
// profiles over an ordered polyline of waypoints.
package laser

import "math"

// Vec2 is an immutable 2D point/vector. All arithmetic returns new values;
// nothing is ever mutated in place.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Mag returns the Euclidean magnitude of v.
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns v scaled to magnitude 1. If v is the zero vector, Unit
// returns the zero vector rather than NaN — callers at a junction or
// segment boundary must treat that as "no direction" and skip the move.
func (v Vec2) Unit() Vec2 {
	m := v.Mag()
	if IsZero(m) {
		return Vec2{}
	}
	return v.Scale(1.0 / m)
}

// Limit scales v down so that its magnitude does not exceed m. A v already
// within the limit, or a non-positive m, is returned unchanged.
func (v Vec2) Limit(m float64) Vec2 {
	if m <= 0 {
		return v
	}
	mag := v.Mag()
	if mag <= m {
		return v
	}
	return v.Scale(m / mag)
}
