package concurrent

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolProcessesEveryJob(t *testing.T) {
	const numJobs = 100

	pool := NewWorkerPool[int, int](4, numJobs)
	if pool.NumWorkers() != 4 {
		t.Fatalf("expected 4 workers, got %d", pool.NumWorkers())
	}

	for i := 1; i <= numJobs; i++ {
		pool.AddJob(i)
	}
	pool.Close()

	var calls int64
	pool.Start(func(job int) int {
		atomic.AddInt64(&calls, 1)
		return job * job
	})
	pool.Wait()

	count := 0
	sum := 0
	for res := range pool.CollectResults() {
		count++
		sum += res
	}

	if count != numJobs {
		t.Fatalf("expected %d results, got %d", numJobs, count)
	}
	if calls != numJobs {
		t.Fatalf("expected %d job executions, got %d", numJobs, calls)
	}
	// sum of the first 100 squares
	if want := numJobs * (numJobs + 1) * (2*numJobs + 1) / 6; sum != want {
		t.Fatalf("expected result sum %d, got %d", want, sum)
	}
}

func TestWorkerPoolSingleWorkerKeepsQueueOrder(t *testing.T) {
	const numJobs = 20

	pool := NewWorkerPool[int, int](1, numJobs)
	for i := 0; i < numJobs; i++ {
		pool.AddJob(i)
	}
	pool.Close()

	pool.Start(func(job int) int { return job })
	pool.Wait()

	next := 0
	for res := range pool.CollectResults() {
		if res != next {
			t.Fatalf("expected result %d, got %d", next, res)
		}
		next++
	}
	if next != numJobs {
		t.Fatalf("expected %d results, got %d", numJobs, next)
	}
}

func TestWorkerPoolNoJobs(t *testing.T) {
	pool := NewWorkerPool[int, int](3, 0)
	pool.Close()

	pool.Start(func(job int) int { return job })
	pool.Wait()

	for range pool.CollectResults() {
		t.Fatal("no results expected")
	}
}
