package planner

import (
	"math"
	"testing"

	"github.com/roverlab/waypointx/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, start, goal Waypoint, velocity, dwellTime float64) Params {
	t.Helper()
	params, err := NewParams(start, goal, velocity, dwellTime)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return params
}

func mustCourse(t *testing.T, waypoints []Waypoint, penalties []float64) *Course {
	t.Helper()
	course, err := NewCourse(waypoints, penalties)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return course
}

func TestBuildCostMatrix(t *testing.T) {
	// start (0,0), two interior waypoints, goal (3,0). the second waypoint
	// sits off the course line so every cell value is distinguishable.
	course := mustCourse(t,
		[]Waypoint{NewWaypoint(1, 0), NewWaypoint(2, 5)},
		[]float64{100, 1})
	params := mustParams(t, NewWaypoint(0, 0), NewWaypoint(3, 0), 1, 0)

	costs, err := BuildCostMatrix(course, params)
	require.NoError(t, err)

	require.Equal(t, 4, costs.Rows())
	require.Equal(t, 4, costs.Cols())

	testCases := []struct {
		name string
		i, j int
		want float64
	}{
		{"direct hop start to first", 0, 1, 1},
		{"direct hop first to second", 1, 2, math.Sqrt(26)},
		{"direct hop second to goal", 2, 3, math.Sqrt(26)},
		{"skip first waypoint", 0, 2, math.Sqrt(29) + 100},
		{"skip second waypoint", 1, 3, 2 + 1},
		{"skip both waypoints", 0, 3, 3 + 100 + 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, costs.Get(tt.i, tt.j), 1e-9)
		})
	}

	// backward and self edges must stay unreachable
	for i := 0; i < costs.Rows(); i++ {
		for j := 0; j <= i; j++ {
			assert.Equal(t, pkg.INF_WEIGHT, costs.Get(i, j), "cell (%d,%d)", i, j)
		}
	}
}

func TestBuildCostMatrixChargesDwellPerArrival(t *testing.T) {
	course := mustCourse(t, []Waypoint{NewWaypoint(5, 0)}, []float64{0})
	params := mustParams(t, NewWaypoint(0, 0), NewWaypoint(10, 0), 1, 7)

	costs, err := BuildCostMatrix(course, params)
	require.NoError(t, err)

	// one dwell per arrival, the goal arrival included
	assert.InDelta(t, 5+7.0, costs.Get(0, 1), 1e-9)
	assert.InDelta(t, 5+7.0, costs.Get(1, 2), 1e-9)
	assert.InDelta(t, 10+7.0, costs.Get(0, 2), 1e-9)
}

func TestBuildCostMatrixVelocityDividesTravelOnly(t *testing.T) {
	course := mustCourse(t, []Waypoint{NewWaypoint(6, 0)}, []float64{3})
	params := mustParams(t, NewWaypoint(0, 0), NewWaypoint(12, 0), 4, 10)

	costs, err := BuildCostMatrix(course, params)
	require.NoError(t, err)

	assert.InDelta(t, 6.0/4+10, costs.Get(0, 1), 1e-9)
	assert.InDelta(t, 12.0/4+10+3, costs.Get(0, 2), 1e-9)
}

func TestBuildCostMatrixPenaltyCountMismatch(t *testing.T) {
	course := &Course{
		waypoints: []Waypoint{NewWaypoint(1, 1), NewWaypoint(2, 2)},
		penalties: []float64{4},
	}
	params := mustParams(t, NewWaypoint(0, 0), NewWaypoint(3, 3), 1, 0)

	_, err := BuildCostMatrix(course, params)
	assert.ErrorIs(t, err, ErrInputMismatch)
}
