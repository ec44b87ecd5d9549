package main

import (
	"github.com/roverlab/waypointx/pkg/courseio"
	"github.com/roverlab/waypointx/pkg/planner"
)

// writes the stock demo course file the planner command defaults to, then
// reads it back as a sanity check.
func main() {
	err := courseio.WriteCourses("./data/sample.txt", sampleCourses())
	if err != nil {
		panic(err)
	}
	_, err = courseio.ReadCourses("./data/sample.txt")
	if err != nil {
		panic(err)
	}
}

func sampleCourses() []*planner.Course {
	first, err := planner.NewCourse(
		[]planner.Waypoint{
			planner.NewWaypoint(20, 30),
			planner.NewWaypoint(40, 50),
			planner.NewWaypoint(60, 70),
		},
		[]float64{40, 30, 80},
	)
	if err != nil {
		panic(err)
	}

	second, err := planner.NewCourse(
		[]planner.Waypoint{planner.NewWaypoint(50, 50)},
		[]float64{1},
	)
	if err != nil {
		panic(err)
	}

	return []*planner.Course{first, second}
}
