package usecases

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/roverlab/waypointx/pkg/datastructure"
	"github.com/roverlab/waypointx/pkg/geo"
	"github.com/roverlab/waypointx/pkg/planner"
	"go.uber.org/zap"
)

type planCacheValue struct {
	minCost    float64
	visitOrder []datastructure.Index
	path       string
}

type PlannerService struct {
	log   *zap.Logger
	cache *lru.Cache[string, planCacheValue]
}

func NewPlannerService(log *zap.Logger, cacheSize int) (*PlannerService, error) {
	cache, err := lru.New[string, planCacheValue](cacheSize)
	if err != nil {
		return nil, err
	}

	return &PlannerService{
		log:   log,
		cache: cache,
	}, nil
}

// PlanCourse solves one course for an API client and returns the minimum
// traversal time, the visit order over augmented node indices, and the
// traversal encoded as a polyline. Identical requests hit an LRU cache.
func (ps *PlannerService) PlanCourse(start, goal planner.Waypoint, velocity, dwellTime float64,
	waypoints []planner.Waypoint, penalties []float64) (float64, []datastructure.Index, string, error) {

	params, err := planner.NewParams(start, goal, velocity, dwellTime)
	if err != nil {
		return 0, nil, "", err
	}
	course, err := planner.NewCourse(waypoints, penalties)
	if err != nil {
		return 0, nil, "", err
	}

	key := planCacheKey(params, course)
	if cached, ok := ps.cache.Get(key); ok {
		ps.log.Debug("plan cache hit", zap.Int("cached_plans", ps.cache.Len()))
		return cached.minCost, cached.visitOrder, cached.path, nil
	}

	result, err := planner.NewPlanner(params, ps.log, 1).Plan(course)
	if err != nil {
		return 0, nil, "", err
	}

	augmented := course.Augment(start, goal)
	visited := make([]planner.Waypoint, len(result.GetVisitOrder()))
	for i, nodeID := range result.GetVisitOrder() {
		visited[i] = augmented[nodeID]
	}
	path := geo.PoylineFromWaypoints(visited)

	ps.cache.Add(key, planCacheValue{
		minCost:    result.GetMinCost(),
		visitOrder: result.GetVisitOrder(),
		path:       path,
	})

	return result.GetMinCost(), result.GetVisitOrder(), path, nil
}

// planCacheKey is an exact canonical encoding of the request, so distinct
// requests can never collide.
func planCacheKey(params planner.Params, course *planner.Course) string {
	var sb strings.Builder

	start, goal := params.GetStart(), params.GetGoal()
	fmt.Fprintf(&sb, "%v,%v|%v,%v|%v|%v",
		start.GetX(), start.GetY(), goal.GetX(), goal.GetY(),
		params.GetVelocity(), params.GetDwellTime())

	penalties := course.GetPenalties()
	for i, waypoint := range course.GetWaypoints() {
		fmt.Fprintf(&sb, "|%v,%v,%v", waypoint.GetX(), waypoint.GetY(), penalties[i])
	}

	return sb.String()
}
