package laser

import "math"

// junctionSpeeds holds, per waypoint (0-indexed into the input path), the
// solved values the SegmentPlanner needs: the geometric corner limit, the
// feasible entry speed at that corner, and the cruise cap of the segment
// that leads into it.
type junctionSpeeds struct {
	position         Vec2
	maxJunctionSpeed float64
	finalSpeed       float64
	maxSegmentSpeed  float64
}

// cornerJunctionSpeed implements spec §4.3: the Grbl-style centripetal-
// deviation bound on the speed at which waypoint `cur` may be passed,
// given the incoming direction from `prev` and the outgoing direction to
// `next`. hasNext is false for the final waypoint, which is always forced
// to a full stop.
func cornerJunctionSpeed(prev, cur, next Vec2, hasNext bool, limits AxisLimits) float64 {
	if !hasNext {
		return 0
	}

	u1 := cur.Sub(prev).Unit()
	u2 := next.Sub(cur).Unit()
	cosTheta := -u1.Dot(u2)

	var speed float64
	switch {
	case cosTheta > 1-epsilon:
		// Acute corner / straight reversal: the tool must nearly stop.
		speed = limits.MinJunctionSpeed
	case cosTheta < -1+epsilon:
		// Collinear: no direction change, no centripetal limit.
		speed = infiniteSpeed
	default:
		dir := u2.Sub(u1).Unit()
		aj := limits.accelLimit(dir)
		sinHalf := math.Sqrt(0.5 * (1 - cosTheta))
		v := math.Sqrt(aj * limits.JunctionDeviation * sinHalf / (1 - sinHalf))
		speed = math.Max(limits.MinJunctionSpeed, v)
	}

	// Corner-case policy preserved from the source: collapse near-zero
	// junction speeds to exactly zero before storing them.
	if IsZero(speed) {
		speed = 0
	}
	return speed
}

// solveJunctions runs the JunctionSpeedSolver: per-corner junction speeds
// followed by the backward feasibility pass of spec §4.3 and a forward
// reachability pass. degradedAt collects the indices of waypoints whose
// entry speed the backward pass had to lower because the segment leading
// into them is too short to accelerate up to it (the "DOH" case in the
// source; see DESIGN.md).
func solveJunctions(path InputPath, start Vec2, limits AxisLimits) ([]junctionSpeeds, []int) {
	n := len(path)
	js := make([]junctionSpeeds, n)

	prevPos := func(k int) Vec2 {
		if k == 0 {
			return start
		}
		return path[k-1].Position
	}
	nextPos := func(k int) (Vec2, bool) {
		if k == n-1 {
			return Vec2{}, false
		}
		return path[k+1].Position, true
	}

	for k := 0; k < n; k++ {
		pos := path[k].Position
		np, hasNext := nextPos(k)
		js[k].position = pos
		js[k].maxJunctionSpeed = cornerJunctionSpeed(prevPos(k), pos, np, hasNext, limits)

		dirIn := pos.Sub(prevPos(k)).Unit()
		js[k].maxSegmentSpeed = math.Min(path[k].DesiredSpeed, limits.speedLimit(dirIn))
	}

	js[n-1].finalSpeed = 0

	var degradedAt []int
	for k := n - 2; k >= 0; k-- {
		j := k + 1
		segDir := path[j].Position.Sub(path[k].Position).Unit()
		a := limits.accelLimit(segDir)
		d := path[j].Position.Sub(path[k].Position).Mag()

		// The feasibility test below is about the outgoing segment k->j,
		// so its speed cap must come from that segment's own direction
		// and waypoint k's own desired speed (spec §4.3 step 2), not from
		// js[k].maxSegmentSpeed. That field is keyed on the incoming
		// direction into k and is only valid as the SegmentPlanner's
		// cruise cap for the segment ending at k (see planner.go).
		outgoingSpeedCap := math.Min(path[k].DesiredSpeed, limits.speedLimit(segDir))
		desiredFinal := math.Min(js[k].maxJunctionSpeed, outgoingSpeedCap)
		achievable := math.Abs(math.Sqrt(desiredFinal*desiredFinal+2*a*d) - desiredFinal)
		needed := math.Abs(desiredFinal - js[j].finalSpeed)

		switch {
		case ApproxGE(achievable, needed):
			js[k].finalSpeed = desiredFinal
		case desiredFinal >= js[j].finalSpeed:
			vf := js[j].finalSpeed
			js[k].finalSpeed = vf + math.Abs(math.Sqrt(vf*vf+2*a*d)-vf)
		default:
			// Even accelerating flat-out from desiredFinal can't reach
			// js[j].finalSpeed over this segment: the successor asked for
			// more speed than this corner can deliver. Re-propagate by
			// lowering the successor's entry speed to what is actually
			// reachable, rather than recording the infeasible value
			// (the source's "DOH" bug — see DESIGN.md).
			reachable := math.Sqrt(desiredFinal*desiredFinal + 2*a*d)
			js[j].finalSpeed = reachable
			js[k].finalSpeed = desiredFinal
			degradedAt = append(degradedAt, j)
		}
	}

	// Forward pass: cap each entry speed at what the segment leading into
	// the waypoint can reach from the previous waypoint's speed, so that
	// adjacent segments meet at the same speed.
	prevSpeed := 0.0
	for k := 0; k < n; k++ {
		in := path[k].Position.Sub(prevPos(k))
		reachable := math.Sqrt(prevSpeed*prevSpeed + 2*limits.accelLimit(in.Unit())*in.Mag())
		if js[k].finalSpeed > reachable {
			js[k].finalSpeed = reachable
		}
		prevSpeed = js[k].finalSpeed
	}

	return js, degradedAt
}
