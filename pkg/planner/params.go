package planner

import (
	"math"

	"github.com/roverlab/waypointx/pkg"
	"github.com/roverlab/waypointx/pkg/util"
)

// Params are the traversal parameters shared by every course of a run.
type Params struct {
	start     Waypoint
	goal      Waypoint
	velocity  float64
	dwellTime float64
}

// NewParams validates the traversal configuration. Velocity must be a positive
// finite number because it divides every travel distance, dwell time must be
// non-negative because it is charged on every waypoint arrival.
func NewParams(start, goal Waypoint, velocity, dwellTime float64) (Params, error) {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) || velocity <= 0 {
		return Params{}, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
			"velocity must be a positive number, got %v", velocity)
	}
	if math.IsNaN(dwellTime) || math.IsInf(dwellTime, 0) || dwellTime < 0 {
		return Params{}, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
			"dwell time must be non-negative, got %v", dwellTime)
	}

	return Params{
		start:     start,
		goal:      goal,
		velocity:  velocity,
		dwellTime: dwellTime,
	}, nil
}

// DefaultParams is the stock rover configuration used when no flags are given.
func DefaultParams() Params {
	return Params{
		start:     NewWaypoint(pkg.DEFAULT_START_X, pkg.DEFAULT_START_Y),
		goal:      NewWaypoint(pkg.DEFAULT_GOAL_X, pkg.DEFAULT_GOAL_Y),
		velocity:  pkg.DEFAULT_VELOCITY_MPS,
		dwellTime: pkg.DEFAULT_DWELL_TIME_SECOND,
	}
}

func (p Params) GetStart() Waypoint {
	return p.start
}

func (p Params) GetGoal() Waypoint {
	return p.goal
}

func (p Params) GetVelocity() float64 {
	return p.velocity
}

func (p Params) GetDwellTime() float64 {
	return p.dwellTime
}
