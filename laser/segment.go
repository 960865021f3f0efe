package laser

import "math"

// plannedPoint is one end of a SegmentPlanner call: a position paired with
// the speed the tool has (or must have) there.
type plannedPoint struct {
	position Vec2
	speed    float64
}

// planSegment implements spec §4.4: given the entry (with its current
// speed) and the exit (with its feasible final speed and cruise cap),
// emit 1-3 SpeedPoints covering entry.position -> exit.position, with
// Time running cumulatively from startTime. Zero-length segments are
// dropped entirely, per §4.4's degenerate-input rule.
func planSegment(entry plannedPoint, exit plannedPoint, cruiseCap float64, limits AxisLimits, startTime float64) []SpeedPoint {
	delta := exit.position.Sub(entry.position)
	d := delta.Mag()
	if IsZero(d) {
		return nil
	}

	u := delta.Unit()
	a := limits.accelLimit(u)
	vc := cruiseCap
	v0 := entry.speed
	vf := exit.speed

	dAccel := (vc*vc - v0*v0) / (2 * a)
	dDecel := (vc*vc - vf*vf) / (2 * a)

	t := startTime
	var points []SpeedPoint

	emit := func(start Vec2, target Vec2, speed, accel float64) {
		length := target.Sub(start).Mag()
		if IsZero(length) {
			return
		}
		exitSpeed := math.Sqrt(math.Max(0, speed*speed+2*accel*length))
		t += subSegmentDuration(length, speed, exitSpeed)
		points = append(points, SpeedPoint{
			Start:        start,
			Target:       target,
			Direction:    u,
			Speed:        speed,
			Acceleration: accel,
			Time:         t,
		})
	}

	if dAccel+dDecel < d {
		// Full trapezoid: accelerate, cruise, decelerate.
		accelEnd := entry.position.Add(u.Scale(dAccel))
		decelStart := entry.position.Add(u.Scale(d - dDecel))

		emit(entry.position, accelEnd, v0, a)
		emit(accelEnd, decelStart, vc, 0)
		emit(decelStart, exit.position, vc, -a)
		return points
	}

	// Cruise speed is unreachable: truncated triangle (or a single
	// monotone ramp when the peak falls outside the segment).
	vPeak := math.Sqrt(math.Max(0, a*d+(v0*v0+vf*vf)/2))
	dPeak := (vPeak*vPeak - v0*v0) / (2 * a)

	switch {
	case dPeak >= 0 && dPeak <= d:
		peak := entry.position.Add(u.Scale(dPeak))
		emit(entry.position, peak, v0, a)
		emit(peak, exit.position, vPeak, -a)
	case v0 <= vf:
		emit(entry.position, exit.position, v0, a)
	default:
		emit(entry.position, exit.position, v0, -a)
	}
	return points
}

// subSegmentDuration returns the time to cover length at constant
// acceleration between entry speed s0 and exit speed s1, per spec §4.4:
// Δt = 2*length / (s0+s1). Both speeds are non-negative and not both
// zero for any sub-segment with positive length.
func subSegmentDuration(length, s0, s1 float64) float64 {
	sum := s0 + s1
	if IsZero(sum) {
		return 0
	}
	return 2 * length / sum
}
