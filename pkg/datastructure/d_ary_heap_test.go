package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/roverlab/waypointx/pkg"
)

func TestMinHeapExtractsInRankOrder(t *testing.T) {
	testCases := []struct {
		name string
		heap *MinHeap[int]
	}{
		{"binary heap", NewBinaryHeap[int]()},
		{"four ary heap", NewFourAryHeap[int]()},
		{"three ary heap", NewdAryHeap[int](3)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))

			ranks := make([]float64, 200)
			for i := range ranks {
				ranks[i] = rng.Float64() * 1000
				tt.heap.Insert(NewPriorityQueueNode(ranks[i], i))
			}

			if tt.heap.Size() != len(ranks) {
				t.Fatalf("expected size %d, got %d", len(ranks), tt.heap.Size())
			}

			sort.Float64s(ranks)
			for i := 0; !tt.heap.IsEmpty(); i++ {
				node, err := tt.heap.ExtractMin()
				if err != nil {
					t.Fatalf("err: %v", err)
				}
				if node.GetRank() != ranks[i] {
					t.Fatalf("extraction %d should have rank %v, got %v", i, ranks[i], node.GetRank())
				}
				if node.GetPos() != -1 {
					t.Fatal("extracted node should leave the heap")
				}
			}
		})
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	heap := NewFourAryHeap[int]()

	nodes := make([]*PriorityQueueNode[int], 0)
	for i, rank := range []float64{50, 30, 80, 10, 60} {
		node := NewPriorityQueueNode(rank, i)
		nodes = append(nodes, node)
		heap.Insert(node)
	}

	// item 2 jumps from the back of the queue to the front
	if err := heap.DecreaseKey(nodes[2], 1); err != nil {
		t.Fatalf("err: %v", err)
	}

	min, err := heap.ExtractMin()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if min.GetItem() != 2 || min.GetRank() != 1 {
		t.Fatalf("expected item 2 with rank 1, got item %d rank %v", min.GetItem(), min.GetRank())
	}

	// raising a rank is not a decrease
	if err := heap.DecreaseKey(nodes[3], 100); err == nil {
		t.Fatal("increasing the rank should be rejected")
	}

	// the extracted node is no longer in the heap
	if err := heap.DecreaseKey(min, 0.5); err == nil {
		t.Fatal("decreasing an extracted node should be rejected")
	}
}

func TestMinHeapEmpty(t *testing.T) {
	heap := NewBinaryHeap[int]()

	if !heap.IsEmpty() {
		t.Fatal("new heap should be empty")
	}
	if _, err := heap.GetMin(); err == nil {
		t.Fatal("GetMin on an empty heap should fail")
	}
	if _, err := heap.ExtractMin(); err == nil {
		t.Fatal("ExtractMin on an empty heap should fail")
	}
	if rank := heap.GetMinrank(); rank < pkg.INF_WEIGHT {
		t.Fatalf("empty heap min rank should be unreachable, got %v", rank)
	}

	heap.Insert(NewPriorityQueueNode(3, 7))
	if heap.IsEmpty() {
		t.Fatal("heap with one node should not be empty")
	}
	if min, err := heap.GetMin(); err != nil || min.GetItem() != 7 {
		t.Fatalf("expected item 7, got %v (err: %v)", min, err)
	}

	heap.Clear()
	if !heap.IsEmpty() {
		t.Fatal("cleared heap should be empty")
	}
}

func TestMinHeapPreallocate(t *testing.T) {
	heap := NewFourAryHeap[int]()
	heap.Preallocate(64)

	if !heap.IsEmpty() {
		t.Fatal("preallocation should not add nodes")
	}

	for i := 0; i < 64; i++ {
		heap.Insert(NewPriorityQueueNode(float64(64-i), i))
	}
	if heap.Size() != 64 {
		t.Fatalf("expected size 64, got %d", heap.Size())
	}

	min, err := heap.GetMin()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if min.GetItem() != 63 {
		t.Fatalf("expected item 63 on top, got %d", min.GetItem())
	}
}
