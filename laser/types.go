package laser

import "errors"

// Sentinel errors returned by Plan when the input is malformed. Wrap with
// fmt.Errorf("...: %w", ...) for positional context; callers can still
// errors.Is against these.
var (
	ErrEmptyPath     = errors.New("laser: input path is empty")
	ErrInvalidSpeed  = errors.New("laser: desired speed must be positive")
	ErrInvalidLimits = errors.New("laser: invalid axis limits")
)

// MoveKind distinguishes a rapid repositioning move from one that is
// actually cutting/engraving material. Plan itself never looks at this —
// it only ever sees InputWaypoint.DesiredSpeed — but NewWaypoint uses it
// to pick a sensible default feed rate from AxisLimits.
type MoveKind int

const (
	Cutting MoveKind = iota
	Travel
)

// InputWaypoint is the user's request at one corner of the path: go here,
// at roughly this speed (subject to the kinematic limits).
type InputWaypoint struct {
	Position     Vec2
	DesiredSpeed float64 // units/s, > 0
}

// NewWaypoint builds an InputWaypoint at pos, defaulting DesiredSpeed to
// limits.CuttingSpeed or limits.TravelSpeed depending on kind.
func NewWaypoint(pos Vec2, kind MoveKind, limits AxisLimits) InputWaypoint {
	speed := limits.CuttingSpeed
	if kind == Travel {
		speed = limits.TravelSpeed
	}
	return InputWaypoint{Position: pos, DesiredSpeed: speed}
}

// InputPath is the ordered list of waypoints to visit, starting from an
// externally supplied start position at rest.
type InputPath []InputWaypoint

// SpeedPoint is one constant-acceleration sub-segment of the planned
// profile. Acceleration is signed along Direction: positive accelerates,
// zero cruises, negative decelerates. Time is cumulative from profile
// start, not a duration.
type SpeedPoint struct {
	Start        Vec2
	Target       Vec2
	Direction    Vec2
	Speed        float64 // entry speed into this sub-segment
	Acceleration float64 // signed along Direction
	Time         float64 // cumulative seconds since profile start
}

// Profile is the ordered, timestamped output of Plan. DegradedAt lists the
// 0-based indices of waypoints whose entry speed the backward pass had to
// lower because the segment leading into them could not accelerate up to
// it — see spec §7 and §9. The indices count waypoints of the path after
// Plan has dropped duplicate waypoints (see dedupPath); for a path
// without duplicates they are the input-path indices.
type Profile struct {
	Points     []SpeedPoint
	DegradedAt []int
}
