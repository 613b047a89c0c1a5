// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package psort

import (
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-parsort/workerpool"
)

// ParallelMergeSort sorts data ascending in place using fork-join parallel
// merge sort. Above MaxPart elements the two half-sorts run as concurrent
// tasks; both are joined before the halves are merged. At or below MaxPart
// the sort is sequential.
//
// With a nil pool, each fork spawns a goroutine and the runtime schedules
// the oversubscription. With a pool, concurrency is bounded by the pool's
// workers and saturated forks run inline on the caller.
func ParallelMergeSort[T Ordered](pool *workerpool.Pool, data []T) {
	parallelMergeSort(pool, data, MaxPart)
}

// ParallelQuickSort sorts data ascending in place using fork-join parallel
// quicksort. The partition step runs on the calling goroutine; above
// MaxPart elements the two sides are then sorted as concurrent tasks and
// joined before returning. No combine step is needed: partitioning already
// ordered the sides relative to each other.
//
// Pool semantics match ParallelMergeSort.
func ParallelQuickSort[T Ordered](pool *workerpool.Pool, data []T) {
	parallelQuickSort(pool, data, MaxPart)
}

func parallelMergeSort[T Ordered](pool *workerpool.Pool, data []T, maxPart int) {
	n := len(data)
	if n <= maxPart || n <= 1 {
		mergeSort(data, maxPart)
		return
	}

	middle := n / 2
	forkJoin(pool,
		func() { parallelMergeSort(pool, data[:middle], maxPart) },
		func() { parallelMergeSort(pool, data[middle:], maxPart) },
	)
	merge(data, middle)
}

func parallelQuickSort[T Ordered](pool *workerpool.Pool, data []T, maxPart int) {
	n := len(data)
	if n <= maxPart || n <= 1 {
		quickSort(data, maxPart)
		return
	}

	pivot, ok := pivotForSplit(data)
	if !ok {
		return
	}
	split := partition(data, pivot)
	forkJoin(pool,
		func() { parallelQuickSort(pool, data[:split], maxPart) },
		func() { parallelQuickSort(pool, data[split:], maxPart) },
	)
}

// forkJoin runs left and right concurrently and returns only after both
// have completed. The two closures operate on disjoint subslices, so the
// join barrier is the only synchronization required.
func forkJoin(pool *workerpool.Pool, left, right func()) {
	if pool == nil {
		// Spawn-per-fork: errgroup joins both children and re-raises
		// a child panic in the waiting parent.
		var g errgroup.Group
		g.Go(func() error {
			left()
			return nil
		})
		g.Go(func() error {
			right()
			return nil
		})
		_ = g.Wait()
		return
	}
	pool.Fork(left, right)
}
