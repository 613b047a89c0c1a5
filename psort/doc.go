// Package psort provides parallel, in-place divide-and-conquer sorting.
//
// Two strategies are implemented, each in a sequential and a fork-join
// parallel form sharing the same recursive decomposition:
//
//   - Merge-based: split at the midpoint, sort both halves, merge in place.
//   - Partition-based: partition around a pivot, sort both sides; the
//     partition step already establishes the left/right ordering, so there
//     is no combine step.
//
// Ranges at or below MaxPart elements are handed to the standard library's
// sort instead of being split further, bounding recursion depth and task
// count.
//
// # Parallelism
//
// The parallel variants fork the two recursive half-sorts as concurrent
// tasks and join both before combining. The halves are disjoint subslices
// of the same buffer, so no locking is needed on the data itself; the only
// synchronization is the join barrier. A panic in either half propagates to
// the joining caller — a failed sort is never silently reported as success.
//
// Scheduling is chosen by the pool argument: a nil pool spawns one
// goroutine per fork (the Go runtime absorbs oversubscription), while a
// *workerpool.Pool bounds concurrency, running forks inline on the calling
// goroutine whenever the pool is saturated so that recursive submission
// cannot deadlock.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-parsort/psort"
//
//	func Process(data []int64) {
//	    psort.QuickSort(data) // in-place ascending sort
//	}
//
//	func ProcessLarge(pool *workerpool.Pool, data []int64) {
//	    psort.ParallelMergeSort(pool, data)
//	}
//
// None of the variants is stable: relative order of equal elements is not
// preserved.
package psort
