package laser

import "fmt"

// Tracer, when non-nil, receives one message per waypoint whose entry
// speed had to be re-propagated during the backward pass (see
// DESIGN.md's Open Questions). It is a no-op by default so that Plan
// never performs I/O on its own, mirroring the teacher's DebugWriter
// hook (core/debug.go in the reference corpus).
var Tracer func(string)

func trace(format string, args ...any) {
	if Tracer == nil {
		return
	}
	Tracer(fmt.Sprintf(format, args...))
}

// Plan is the core entry point: it turns an input path, a starting
// position, and a set of kinematic limits into a timed velocity profile.
// Plan is pure: it performs no I/O and never mutates its arguments.
func Plan(path InputPath, limits AxisLimits, start Vec2) (Profile, error) {
	if len(path) == 0 {
		return Profile{}, ErrEmptyPath
	}
	for i, wp := range path {
		if wp.DesiredSpeed <= 0 {
			return Profile{}, fmt.Errorf("%w: waypoint %d has speed %g", ErrInvalidSpeed, i, wp.DesiredSpeed)
		}
	}
	if err := limits.Validate(); err != nil {
		return Profile{}, err
	}

	path = dedupPath(path, start)
	if len(path) == 0 {
		return Profile{}, ErrEmptyPath
	}

	junctions, degradedAt := solveJunctions(path, start, limits)
	for _, idx := range degradedAt {
		trace("waypoint %d: entry speed re-propagated to stay feasible", idx)
	}

	var profile Profile
	profile.DegradedAt = degradedAt

	entry := plannedPoint{position: start, speed: 0}
	t := 0.0
	for _, j := range junctions {
		exit := plannedPoint{position: j.position, speed: j.finalSpeed}
		points := planSegment(entry, exit, j.maxSegmentSpeed, limits, t)
		profile.Points = append(profile.Points, points...)
		if n := len(profile.Points); n > 0 {
			t = profile.Points[n-1].Time
		}
		entry = exit
	}

	return profile, nil
}

// dedupPath drops waypoints that coincide exactly with the position they
// follow (either the previous waypoint or, for the first one, start). A
// zero-length leading segment would otherwise leave a degenerate corner
// for the JunctionSpeedSolver to reason about, with no real direction to
// take a centripetal bound on.
func dedupPath(path InputPath, start Vec2) InputPath {
	out := make(InputPath, 0, len(path))
	prev := start
	for _, wp := range path {
		if IsZero(wp.Position.Sub(prev).Mag()) {
			continue
		}
		out = append(out, wp)
		prev = wp.Position
	}
	return out
}

// TotalTime returns the cumulative duration of the profile, i.e. the
// timestamp at which the last sub-segment reaches its target.
func TotalTime(profile Profile) float64 {
	n := len(profile.Points)
	if n == 0 {
		return 0
	}
	return profile.Points[n-1].Time
}

// PositionAt samples the tool's position at time t (clamped to
// [0, TotalTime(profile)]) per spec §4.5.
func PositionAt(profile Profile, t float64) Vec2 {
	n := len(profile.Points)
	if n == 0 {
		return Vec2{}
	}

	tPrev := 0.0
	for _, sp := range profile.Points {
		if sp.Time > t {
			dt := t - tPrev
			if dt < 0 {
				dt = 0
			}
			s := sp.Speed*dt + 0.5*sp.Acceleration*dt*dt
			return sp.Start.Add(sp.Direction.Scale(s))
		}
		tPrev = sp.Time
	}
	return profile.Points[n-1].Target
}
