package planner

import (
	"math"

	"github.com/roverlab/waypointx/pkg/util"
)

// Course is one traversal problem instance: the interior waypoints in course
// order plus the time penalty charged for every interior waypoint the rover
// skips. waypoints[i] and penalties[i] describe the same waypoint.
type Course struct {
	waypoints []Waypoint
	penalties []float64
}

func NewCourse(waypoints []Waypoint, penalties []float64) (*Course, error) {
	if len(waypoints) != len(penalties) {
		return nil, util.WrapErrorf(ErrInputMismatch, util.ErrBadParamInput,
			"course has %d waypoints but %d skip penalties", len(waypoints), len(penalties))
	}
	for i, penalty := range penalties {
		if math.IsNaN(penalty) || math.IsInf(penalty, 0) || penalty < 0 {
			return nil, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
				"waypoint %d has skip penalty %v, must be non-negative", i+1, penalty)
		}
	}

	return &Course{
		waypoints: waypoints,
		penalties: penalties,
	}, nil
}

func (c *Course) NumWaypoints() int {
	return len(c.waypoints)
}

func (c *Course) GetWaypoints() []Waypoint {
	return c.waypoints
}

func (c *Course) GetPenalties() []float64 {
	return c.penalties
}

// Augment builds the full node sequence the traversal cost graph is defined
// over: node 0 is the start position, nodes 1..N the interior waypoints in
// course order, node N+1 the goal position.
func (c *Course) Augment(start, goal Waypoint) []Waypoint {
	augmented := make([]Waypoint, 0, len(c.waypoints)+2)
	augmented = append(augmented, start)
	augmented = append(augmented, c.waypoints...)
	augmented = append(augmented, goal)
	return augmented
}
