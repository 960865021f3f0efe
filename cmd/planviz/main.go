// Command planviz runs the motion planner over a path file and a limits
// file and prints the resulting velocity profile, in the spirit of
// gopper-host's thin flag-driven drivers over a pure backend package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AG89z/laser-cutter-simulator/config"
	"github.com/AG89z/laser-cutter-simulator/laser"
)

var (
	pathFile    = flag.String("path", "", "JSON file of waypoints: [{\"x\":.,\"y\":.,\"speed\":.}]")
	limitsFile  = flag.String("limits", "", "JSON file of axis limits (defaults applied if omitted)")
	startX      = flag.Float64("start-x", 0, "Starting X position")
	startY      = flag.Float64("start-y", 0, "Starting Y position")
	sampleAt    = flag.Float64("at", -1, "If >= 0, also print the sampled position at this time")
)

func main() {
	flag.Parse()

	if *pathFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -path is required")
		os.Exit(1)
	}

	path, err := loadPath(*pathFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load path: %v\n", err)
		os.Exit(1)
	}

	limits, err := loadLimits(*limitsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load limits: %v\n", err)
		os.Exit(1)
	}

	laser.Tracer = func(msg string) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}

	start := laser.Vec2{X: *startX, Y: *startY}
	profile, err := laser.Plan(path, *limits, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: planning failed: %v\n", err)
		os.Exit(1)
	}

	printProfile(profile)

	if len(profile.DegradedAt) > 0 {
		fmt.Fprintf(os.Stderr, "warning: degraded waypoints: %v\n", profile.DegradedAt)
	}

	if *sampleAt >= 0 {
		pos := laser.PositionAt(profile, *sampleAt)
		fmt.Printf("position at t=%.3f: (%.3f, %.3f)\n", *sampleAt, pos.X, pos.Y)
	}
}

func loadPath(path string) (laser.InputPath, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.LoadPath(data)
}

func loadLimits(path string) (*laser.AxisLimits, error) {
	if path == "" {
		return config.DefaultAxisLimits(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.LoadLimits(data)
}

func printProfile(profile laser.Profile) {
	fmt.Println("seg  start                target               speed    accel     time")
	for i, sp := range profile.Points {
		fmt.Printf("%3d  (%7.2f,%7.2f)  (%7.2f,%7.2f)  %7.2f  %7.2f  %7.3f\n",
			i, sp.Start.X, sp.Start.Y, sp.Target.X, sp.Target.Y, sp.Speed, sp.Acceleration, sp.Time)
	}
	fmt.Printf("total time: %.3fs\n", laser.TotalTime(profile))
}
