package controllers

import (
	"github.com/roverlab/waypointx/pkg/datastructure"
	"github.com/roverlab/waypointx/pkg/planner"
)

type PlannerService interface {
	PlanCourse(start, goal planner.Waypoint, velocity, dwellTime float64,
		waypoints []planner.Waypoint, penalties []float64) (float64, []datastructure.Index, string, error)
}
