package planner

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/roverlab/waypointx/pkg"
	"github.com/roverlab/waypointx/pkg/concurrent"
	da "github.com/roverlab/waypointx/pkg/datastructure"
	"go.uber.org/zap"
)

// Result is the solved traversal of one course.
type Result struct {
	minCost    float64
	visitOrder []da.Index
}

func NewResult(minCost float64, visitOrder []da.Index) *Result {
	return &Result{
		minCost:    minCost,
		visitOrder: visitOrder,
	}
}

// GetMinCost is the minimum total traversal time in seconds.
func (r *Result) GetMinCost() float64 {
	return r.minCost
}

// GetVisitOrder is the augmented node sequence of the optimal traversal,
// always starting at 0 (start position) and ending at N+1 (goal position).
func (r *Result) GetVisitOrder() []da.Index {
	return r.visitOrder
}

// NumVisited counts the interior waypoints the optimal traversal stops at.
func (r *Result) NumVisited() int {
	return len(r.visitOrder) - 2
}

type Planner struct {
	params     Params
	log        *zap.Logger
	numWorkers int
}

func NewPlanner(params Params, log *zap.Logger, numWorkers int) *Planner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &Planner{
		params:     params,
		log:        log,
		numWorkers: numWorkers,
	}
}

func (p *Planner) GetParams() Params {
	return p.params
}

// Plan solves one course: build the forward traversal cost graph, then run a
// shortest path search from the start node to the goal node.
func (p *Planner) Plan(course *Course) (*Result, error) {
	costs, err := BuildCostMatrix(course, p.params)
	if err != nil {
		return nil, err
	}

	dijkstra := NewDijkstra(costs)
	minCost, order, err := dijkstra.ShortestPath()
	if err != nil {
		return nil, err
	}

	p.debugCheckForwardOrder(order)

	p.log.Debug("course planned",
		zap.Int("waypoints", course.NumWaypoints()),
		zap.Int("visited", len(order)-2),
		zap.Float64("min_cost", minCost))

	return NewResult(minCost, order), nil
}

func (p *Planner) debugCheckForwardOrder(order []da.Index) {
	if pkg.DEBUG {
		for i := 1; i < len(order); i++ {
			if order[i] <= order[i-1] {
				p.log.Panic("visit order moved backward", zap.Any("order", order))
			}
		}
	}
}

type planJob struct {
	courseID int
	course   *Course
}

// PlanAll solves every course on a worker pool. Courses are independent, so
// they are planned concurrently; results keep the input order. The first
// course that fails aborts the whole batch.
func (p *Planner) PlanAll(courses []*Course) ([]*Result, error) {
	results := make([]*Result, len(courses))
	errs := make([]error, len(courses))

	var lock sync.Mutex

	pool := concurrent.NewWorkerPool[planJob, int](p.numWorkers, len(courses))
	for i, course := range courses {
		pool.AddJob(planJob{courseID: i, course: course})
	}
	pool.Close()

	pool.Start(func(job planJob) int {
		res, err := p.Plan(job.course)

		lock.Lock()
		results[job.courseID] = res
		errs[job.courseID] = err
		lock.Unlock()

		return job.courseID
	})
	pool.Wait()

	for range pool.CollectResults() {
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("course %d: %w", i+1, err)
		}
	}

	return results, nil
}
