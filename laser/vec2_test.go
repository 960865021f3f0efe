package laser

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	diff(t, Vec2{X: 4, Y: 6}, a.Add(b))
	diff(t, Vec2{X: 2, Y: 2}, a.Sub(b))
	diff(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	diff(t, 11.0, a.Dot(b))
	diff(t, 5.0, a.Mag())
}

func TestVec2Unit(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	u := v.Unit()
	diff(t, Vec2{X: 0.6, Y: 0.8}, u)
	diff(t, 1.0, u.Mag())
}

func TestVec2UnitZero(t *testing.T) {
	diff(t, Vec2{}, Vec2{}.Unit())
}

func TestVec2Limit(t *testing.T) {
	v := Vec2{X: 3, Y: 4} // mag 5
	diff(t, v, v.Limit(10))
	limited := v.Limit(2.5)
	diff(t, 2.5, limited.Mag())
	diff(t, math.Atan2(4, 3), math.Atan2(limited.Y, limited.X))
}

func TestVec2LimitNonPositive(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	diff(t, v, v.Limit(0))
	diff(t, v, v.Limit(-1))
}
