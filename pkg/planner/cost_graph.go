package planner

import (
	"github.com/roverlab/waypointx/pkg"
	da "github.com/roverlab/waypointx/pkg/datastructure"
	"github.com/roverlab/waypointx/pkg/util"
)

// BuildCostMatrix builds the dense traversal cost graph over the augmented
// node sequence start, interior waypoints, goal. Edges only go forward to
// strictly larger indices, so the graph is a DAG aligned with the course
// order. The cost of edge (i, j) is
//
//	dist(i, j)/velocity + dwellTime + sum of skip penalties of nodes i+1..j-1
//
// dwell time is charged once per arrival, the goal arrival included. Every
// other cell holds INF_WEIGHT.
func BuildCostMatrix(course *Course, params Params) (*da.Matrix[float64], error) {
	augmented := course.Augment(params.GetStart(), params.GetGoal())
	penalties := course.GetPenalties()
	if len(penalties) != len(augmented)-2 {
		return nil, util.WrapErrorf(ErrInputMismatch, util.ErrBadParamInput,
			"course has %d interior nodes but %d skip penalties", len(augmented)-2, len(penalties))
	}

	n := len(augmented)

	// penaltyPrefix[t] = sum of penalties[0..t-1]. the skipped-node charge of
	// edge (i, j) is then penaltyPrefix[j-1]-penaltyPrefix[i].
	penaltyPrefix := make([]float64, len(penalties)+1)
	for t, penalty := range penalties {
		penaltyPrefix[t+1] = penaltyPrefix[t] + penalty
	}

	costs := da.NewMatrix[float64](n, n, pkg.INF_WEIGHT)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			travelTime := augmented[i].DistanceTo(augmented[j]) / params.GetVelocity()
			skipped := penaltyPrefix[j-1] - penaltyPrefix[i]

			costs.Set(travelTime+params.GetDwellTime()+skipped, i, j)
		}
	}

	return costs, nil
}
