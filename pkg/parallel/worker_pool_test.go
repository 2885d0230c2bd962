package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestWorkerPool_RunsAllTasks verifies every submitted task executes.
func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		ok := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
		if !ok {
			t.Fatal("Submit returned false on open pool")
		}
	}
	wg.Wait()
	pool.Close()

	if counter != 100 {
		t.Errorf("executed %d tasks, want 100", counter)
	}
}

// TestWorkerPool_SubmitAfterClose verifies Submit reports a closed pool
// instead of panicking.
func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit on closed pool returned true")
	}
}

// TestWorkerPool_CloseIdempotent verifies repeated Close calls are safe.
func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
}

// TestWorkerPool_RecoversFromPanic verifies a panicking task does not kill
// its worker.
func TestWorkerPool_RecoversFromPanic(t *testing.T) {
	pool := NewWorkerPool(1)

	var wg sync.WaitGroup
	wg.Add(1)
	pool.Submit(func() {
		defer wg.Done()
		panic("task failure")
	})
	wg.Wait()

	var ran atomic.Bool
	wg.Add(1)
	pool.Submit(func() {
		defer wg.Done()
		ran.Store(true)
	})
	wg.Wait()
	pool.Close()

	if !ran.Load() {
		t.Error("worker did not survive a panicking task")
	}
}

// TestWorkerPool_DefaultWorkers verifies non-positive counts fall back to
// NumCPU.
func TestWorkerPool_DefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", pool.Workers())
	}
}
