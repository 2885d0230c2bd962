// Package parallel dispatches independent per-source BFS traversals across a
// fixed pool of workers. Each traversal owns its private distance row, so the
// concurrent driver produces exactly the same table as the sequential one.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines consuming from a shared
// task queue.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects taskQueue from close during Submit
	closed    bool
}

// NewWorkerPool creates a pool with the given number of workers. A count
// below 1 falls back to runtime.NumCPU.
func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// Workers returns the pool size.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// worker drains the queue until it is closed. A panicking task must not take
// the worker down with it.
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("worker panic recovered: %v\n", r)
				}
			}()
			task()
		}()
	}
}

// Submit enqueues a task. Returns false if the pool has been closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close stops accepting tasks and blocks until all queued tasks finish.
// Safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
