// Package config loads AxisLimits and InputPath values from JSON,
// following the same unmarshal-then-default-fill shape as the reference
// machine configuration loader this project is descended from.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/AG89z/laser-cutter-simulator/laser"
)

// LoadLimits parses a JSON-encoded AxisLimits document and fills in any
// zero-valued fields with sane defaults for a small benchtop machine.
func LoadLimits(jsonData []byte) (*laser.AxisLimits, error) {
	var limits laser.AxisLimits
	if err := json.Unmarshal(jsonData, &limits); err != nil {
		return nil, fmt.Errorf("parsing axis limits: %w", err)
	}
	applyLimitDefaults(&limits)
	return &limits, nil
}

// applyLimitDefaults fills in missing configuration values, the same way
// the reference config loader defaults a MachineConfig's axes.
func applyLimitDefaults(l *laser.AxisLimits) {
	if l.MaxSpeedX == 0 {
		l.MaxSpeedX = 300.0
	}
	if l.MaxSpeedY == 0 {
		l.MaxSpeedY = 300.0
	}
	if l.AccelX == 0 {
		l.AccelX = 1000.0
	}
	if l.AccelY == 0 {
		l.AccelY = 1000.0
	}
	if l.JunctionDeviation == 0 {
		l.JunctionDeviation = 0.05
	}
	if l.CuttingSpeed == 0 {
		l.CuttingSpeed = 50.0
	}
	if l.TravelSpeed == 0 {
		l.TravelSpeed = 150.0
	}
	// MinJunctionSpeed legitimately defaults to 0; no back-fill needed.
}

// DefaultAxisLimits returns the defaults used by applyLimitDefaults as a
// ready-to-use settings value, for callers that have no JSON document at
// all (e.g. the planviz CLI when -limits is omitted).
func DefaultAxisLimits() *laser.AxisLimits {
	var l laser.AxisLimits
	applyLimitDefaults(&l)
	return &l
}

// jsonWaypoint mirrors laser.InputWaypoint with JSON tags; laser.InputPath
// itself stays tag-free since the core package has no JSON dependency of
// its own (spec §6: "the planner does not read storage itself").
type jsonWaypoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

// LoadPath parses a JSON array of {x, y, speed} waypoints into an
// laser.InputPath.
func LoadPath(jsonData []byte) (laser.InputPath, error) {
	var raw []jsonWaypoint
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("parsing input path: %w", err)
	}

	path := make(laser.InputPath, len(raw))
	for i, wp := range raw {
		path[i] = laser.InputWaypoint{
			Position:     laser.Vec2{X: wp.X, Y: wp.Y},
			DesiredSpeed: wp.Speed,
		}
	}
	return path, nil
}
