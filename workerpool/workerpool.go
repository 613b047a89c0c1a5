// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join parallel computation. Unlike per-call goroutine spawning, a
// Pool is created once and reused across many operations, bounding the
// number of concurrently running tasks and eliminating spawn overhead.
//
// The pool is safe for recursive submission: a task running on a pool
// worker may itself call Fork. When every worker is busy, Fork runs the
// submitted task inline on the calling goroutine instead of queuing, so
// recursion depth can never exhaust the pool or deadlock it.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Fork(
//	    func() { sortLeft() },
//	    func() { sortRight() },
//	)
package workerpool

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of work to execute on a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// PanicError carries a panic recovered from a forked task across the join
// to the submitting goroutine, together with the worker's stack trace.
type PanicError struct {
	Recovered any
	Stack     []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: forked task panicked: %v\n%s", e.Recovered, e.Stack)
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Unbuffered: a send succeeds only when a worker is ready to
		// run the item, so Fork's saturation probe is accurate.
		workC: make(chan workItem),
	}

	for w := 0; w < numWorkers; w++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Fork runs first and second concurrently and returns when both have
// completed: second on the calling goroutine, first on an idle pool worker.
// If no worker is idle (or the pool is closed), first runs inline on the
// caller as well — sequential execution is always a correct degenerate
// case of the fork.
//
// The join is a full barrier. A panic in the offloaded task is captured
// with its stack and re-raised on the calling goroutine as a *PanicError
// after both tasks have finished; a panic in second unwinds the caller
// directly, after the offloaded task has been joined.
func (p *Pool) Fork(first, second func()) {
	if p.closed.Load() {
		first()
		second()
		return
	}

	var firstPanic *PanicError
	var wg sync.WaitGroup
	wg.Add(1)

	item := workItem{
		fn: func() {
			defer func() {
				if r := recover(); r != nil {
					firstPanic = &PanicError{Recovered: r, Stack: debug.Stack()}
				}
			}()
			first()
		},
		barrier: &wg,
	}

	select {
	case p.workC <- item:
		// Run the second half ourselves, but never abandon the
		// offloaded half: even if second panics, the join must
		// complete before the parent frame unwinds.
		defer func() {
			wg.Wait()
			if firstPanic != nil {
				panic(firstPanic)
			}
		}()
		second()
	default:
		// Saturated: run inline.
		wg.Done()
		first()
		second()
	}
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
