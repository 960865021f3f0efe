package laser

import (
	"math"
	"testing"
)

func TestCornerJunctionSpeedReversal(t *testing.T) {
	l := validLimits()
	l.MinJunctionSpeed = 5
	// 180 degree reversal: straight out and straight back.
	speed := cornerJunctionSpeed(Vec2{}, Vec2{X: 100}, Vec2{}, true, l)
	diff(t, 5.0, speed)
}

func TestCornerJunctionSpeedCollinear(t *testing.T) {
	l := validLimits()
	speed := cornerJunctionSpeed(Vec2{}, Vec2{X: 100}, Vec2{X: 200}, true, l)
	diff(t, infiniteSpeed, speed)
}

func TestCornerJunctionSpeedRightAngle(t *testing.T) {
	l := validLimits()
	speed := cornerJunctionSpeed(Vec2{X: 0, Y: -100}, Vec2{}, Vec2{X: 100}, true, l)
	if speed <= 0 || speed >= l.MaxSpeedX {
		t.Fatalf("expected a modest, nonzero corner speed for a right angle, got %g", speed)
	}
}

func TestCornerJunctionSpeedForcedAtEnd(t *testing.T) {
	l := validLimits()
	speed := cornerJunctionSpeed(Vec2{X: -100}, Vec2{}, Vec2{}, false, l)
	diff(t, 0.0, speed)
}

func TestSolveJunctionsEndpointsStop(t *testing.T) {
	l := validLimits()
	path := InputPath{
		{Position: Vec2{X: 100}, DesiredSpeed: 200},
		{Position: Vec2{X: 200}, DesiredSpeed: 200},
		{Position: Vec2{X: 200, Y: 100}, DesiredSpeed: 200},
	}
	js, degraded := solveJunctions(path, Vec2{}, l)
	if len(degraded) != 0 {
		t.Fatalf("did not expect degraded waypoints, got %v", degraded)
	}
	diff(t, 0.0, js[len(js)-1].finalSpeed)
}

func TestSolveJunctionsCollinearDoesNotStop(t *testing.T) {
	l := validLimits()
	l.AccelX, l.AccelY = 1000, 1000
	l.MaxSpeedX, l.MaxSpeedY = 500, 500
	path := InputPath{
		{Position: Vec2{X: 100}, DesiredSpeed: 500},
		{Position: Vec2{X: 200}, DesiredSpeed: 500},
	}
	js, _ := solveJunctions(path, Vec2{}, l)
	// The middle waypoint is collinear with start and the final waypoint;
	// it must not be forced to near-zero the way a sharp corner would be.
	if js[0].finalSpeed < 50 {
		t.Errorf("expected the collinear waypoint to keep cruising, got finalSpeed=%g", js[0].finalSpeed)
	}
}

func TestSolveJunctionsFeasibilityUsesOutgoingDirection(t *testing.T) {
	l := validLimits()
	l.MaxSpeedX, l.MaxSpeedY = 1000, 10
	l.AccelX, l.AccelY = 3000, 3000
	l.JunctionDeviation = 1

	// Vertical segment into the corner, then a turn onto a horizontal
	// segment. The incoming leg is y-limited to 10, but the backward
	// pass's feasibility test at this corner is about the *outgoing*
	// (x-limited-to-1000) segment. The incoming leg's cap must not leak
	// into it.
	path := InputPath{
		{Position: Vec2{X: 0, Y: 100}, DesiredSpeed: 500},
		{Position: Vec2{X: 100, Y: 100}, DesiredSpeed: 500},
	}
	js, _ := solveJunctions(path, Vec2{}, l)
	if js[0].finalSpeed < 50 {
		t.Errorf("expected the corner's entry speed to be bounded by the outgoing segment, got finalSpeed=%g", js[0].finalSpeed)
	}
}

func TestSolveJunctionsDegradesInfeasibleEntrySpeed(t *testing.T) {
	l := validLimits()

	// A near-180 reversal forces the first corner to a full stop, but the
	// segment out of it is only 0.01 long: accelerating flat-out from 0
	// cannot reach the near-infinite junction speed the next (collinear)
	// corner would otherwise allow. The successor's entry speed must be
	// re-propagated down to what the short segment can actually deliver.
	path := InputPath{
		{Position: Vec2{X: 10}, DesiredSpeed: 500},
		{Position: Vec2{X: 9.99}, DesiredSpeed: 500},
		{Position: Vec2{X: -990.01}, DesiredSpeed: 500},
	}

	js, degraded := solveJunctions(path, Vec2{}, l)
	if len(degraded) != 1 || degraded[0] != 1 {
		t.Fatalf("expected waypoint 1 to be degraded, got %v", degraded)
	}

	wantFinalSpeed := math.Sqrt(2 * l.AccelX * 0.01)
	diff(t, wantFinalSpeed, js[1].finalSpeed)
	diff(t, 0.0, js[0].finalSpeed)
}
