package laser

import (
	"fmt"
	"math"
)

// AxisLimits is the immutable per-machine kinematic configuration. Once
// constructed it is never mutated; Plan takes it by value.
type AxisLimits struct {
	MaxSpeedX float64 // mm/s
	MaxSpeedY float64 // mm/s
	AccelX    float64 // mm/s^2
	AccelY    float64 // mm/s^2

	MinJunctionSpeed  float64 // mm/s, >= 0
	JunctionDeviation float64 // mm, > 0

	CuttingSpeed float64 // mm/s, default feed rate for Cutting moves
	TravelSpeed  float64 // mm/s, default feed rate for Travel (rapid) moves
}

// Validate checks the invariants from spec §3: all speeds and
// accelerations strictly positive except MinJunctionSpeed, which must be
// non-negative, and JunctionDeviation which must be strictly positive.
func (l AxisLimits) Validate() error {
	if l.MaxSpeedX <= 0 || l.MaxSpeedY <= 0 {
		return fmt.Errorf("%w: max speed must be positive (got x=%g y=%g)", ErrInvalidLimits, l.MaxSpeedX, l.MaxSpeedY)
	}
	if l.AccelX <= 0 || l.AccelY <= 0 {
		return fmt.Errorf("%w: acceleration must be positive (got x=%g y=%g)", ErrInvalidLimits, l.AccelX, l.AccelY)
	}
	if l.MinJunctionSpeed < 0 {
		return fmt.Errorf("%w: min junction speed must be >= 0 (got %g)", ErrInvalidLimits, l.MinJunctionSpeed)
	}
	if l.JunctionDeviation <= 0 {
		return fmt.Errorf("%w: junction deviation must be positive (got %g)", ErrInvalidLimits, l.JunctionDeviation)
	}
	if l.CuttingSpeed <= 0 || l.TravelSpeed <= 0 {
		return fmt.Errorf("%w: cutting and travel speeds must be positive (got cutting=%g travel=%g)", ErrInvalidLimits, l.CuttingSpeed, l.TravelSpeed)
	}
	return nil
}

// speedLimit projects the axis speed caps onto direction d.
func (l AxisLimits) speedLimit(d Vec2) float64 {
	return axisProjection(d, l.MaxSpeedX, l.MaxSpeedY)
}

// accelLimit projects the axis acceleration caps onto direction d.
func (l AxisLimits) accelLimit(d Vec2) float64 {
	return axisProjection(d, l.AccelX, l.AccelY)
}

// axisProjection implements spec §4.2: L(d) = min(|Lx/d.x|, |Ly/d.y|),
// with a zero component treated as +infinity (saturating at
// infiniteSpeed rather than actual infinity, so callers can keep doing
// arithmetic on the result).
func axisProjection(d Vec2, lx, ly float64) float64 {
	bx := infiniteSpeed
	if !IsZero(d.X) {
		bx = lx / absf(d.X)
	}
	by := infiniteSpeed
	if !IsZero(d.Y) {
		by = ly / absf(d.Y)
	}
	return math.Min(bx, by)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
