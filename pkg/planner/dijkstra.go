package planner

import (
	"github.com/roverlab/waypointx/pkg"
	da "github.com/roverlab/waypointx/pkg/datastructure"
	"github.com/roverlab/waypointx/pkg/util"
)

type Dijkstra struct {
	costs *da.Matrix[float64]

	travelTimes []float64
	parents     []da.Index
	heapNodes   []*da.PriorityQueueNode[da.Index]

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(costs *da.Matrix[float64]) *Dijkstra {
	return &Dijkstra{
		costs:           costs,
		pq:              da.NewFourAryHeap[da.Index](),
		numSettledNodes: 0,
	}
}

// ShortestPath runs a forward search from the start node (index 0) to the
// goal node (last index) and returns the minimum total traversal time plus
// the node sequence that achieves it. Every edge weight is non-negative, so
// a node is final the moment it leaves the priority queue.
func (us *Dijkstra) ShortestPath() (float64, []da.Index, error) {
	us.preallocate()

	s := da.Index(0)
	t := da.Index(us.costs.Rows() - 1)

	us.travelTimes[s] = 0
	shNode := da.NewPriorityQueueNode(0, s)
	us.heapNodes[s] = shNode
	us.pq.Insert(shNode)

	for !us.pq.IsEmpty() {
		us.graphSearchUni()
		us.numSettledNodes++
	}

	if da.Ge(us.travelTimes[t], pkg.INF_WEIGHT) {
		return 0, nil, util.WrapErrorf(ErrUnreachableGoal, util.ErrInternalServerError,
			"no finite-cost traversal reaches node %d", t)
	}

	return us.travelTimes[t], us.visitOrder(t), nil
}

// graphSearchUni settles the closest queued node and relaxes its forward
// edges. Edges only point to strictly larger indices, so the frontier always
// moves toward the goal and no node is ever revisited.
func (us *Dijkstra) graphSearchUni() {
	pqNode, _ := us.pq.ExtractMin()
	uId := pqNode.GetItem()

	n := da.Index(us.costs.Rows())
	for vId := uId + 1; vId < n; vId++ {
		edgeWeight := us.costs.Get(int(uId), int(vId))

		newArrTime := us.travelTimes[uId] + edgeWeight
		if da.Ge(newArrTime, pkg.INF_WEIGHT) {
			continue
		}

		vAlreadyLabelled := da.Lt(us.travelTimes[vId], pkg.INF_WEIGHT)
		if vAlreadyLabelled && da.Ge(newArrTime, us.travelTimes[vId]) {
			// newArrTime is not better, do nothing
			continue
		}

		us.travelTimes[vId] = newArrTime
		us.parents[vId] = uId

		if vAlreadyLabelled {
			// key already in the priority queue, decrease its key
			us.pq.DecreaseKey(us.heapNodes[vId], newArrTime)
		} else {
			// key not in the priority queue, insert it
			vhNode := da.NewPriorityQueueNode(newArrTime, vId)
			us.heapNodes[vId] = vhNode
			us.pq.Insert(vhNode)
		}
	}
}

// visitOrder follows the parent pointers back from the goal and reverses
// them into start-to-goal order.
func (us *Dijkstra) visitOrder(t da.Index) []da.Index {
	order := make([]da.Index, 0)
	for v := t; v != da.INVALID_NODE_ID; v = us.parents[v] {
		order = append(order, v)
	}
	return util.ReverseG(order)
}

func (us *Dijkstra) NumSettledNodes() int {
	return us.numSettledNodes
}

func (us *Dijkstra) preallocate() {
	n := us.costs.Rows()

	us.travelTimes = make([]float64, n)
	us.parents = make([]da.Index, n)
	us.heapNodes = make([]*da.PriorityQueueNode[da.Index], n)
	for i := 0; i < n; i++ {
		us.travelTimes[i] = pkg.INF_WEIGHT
		us.parents[i] = da.INVALID_NODE_ID
	}
	us.pq.Preallocate(n)
}
