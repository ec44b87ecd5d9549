package usecases

import (
	"testing"

	"github.com/roverlab/waypointx/pkg/datastructure"
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlanCourse(t *testing.T) {
	ps, err := NewPlannerService(zap.NewNop(), 8)
	require.NoError(t, err)

	start, goal := planner.NewWaypoint(0, 0), planner.NewWaypoint(10, 0)
	waypoints := []planner.Waypoint{planner.NewWaypoint(5, 0)}
	penalties := []float64{1}

	minCost, order, path, err := ps.PlanCourse(start, goal, 1, 0, waypoints, penalties)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, minCost, 1e-9)
	assert.Equal(t, []datastructure.Index{0, 1, 2}, order)
	assert.NotEmpty(t, path)
	assert.Equal(t, 1, ps.cache.Len())

	// an identical request is served from the cache
	minCost2, order2, path2, err := ps.PlanCourse(start, goal, 1, 0, waypoints, penalties)
	require.NoError(t, err)
	assert.Equal(t, minCost, minCost2)
	assert.Equal(t, order, order2)
	assert.Equal(t, path, path2)
	assert.Equal(t, 1, ps.cache.Len())

	// a different dwell time is a different plan
	minCost3, order3, _, err := ps.PlanCourse(start, goal, 1, 5, waypoints, penalties)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, minCost3, 1e-9)
	assert.Equal(t, []datastructure.Index{0, 2}, order3)
	assert.Equal(t, 2, ps.cache.Len())
}

func TestPlanCourseRejectsBadInput(t *testing.T) {
	ps, err := NewPlannerService(zap.NewNop(), 8)
	require.NoError(t, err)

	start, goal := planner.NewWaypoint(0, 0), planner.NewWaypoint(10, 0)

	_, _, _, err = ps.PlanCourse(start, goal, 0, 0, nil, nil)
	assert.ErrorIs(t, err, planner.ErrInvalidConfiguration)

	_, _, _, err = ps.PlanCourse(start, goal, 1, 0,
		[]planner.Waypoint{planner.NewWaypoint(5, 0)}, nil)
	assert.ErrorIs(t, err, planner.ErrInputMismatch)

	// nothing broken ends up cached
	assert.Equal(t, 0, ps.cache.Len())
}
