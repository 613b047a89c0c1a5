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

import "slices"

// DefaultMaxPart is the default recursion cutoff. Ranges of at most this
// many elements are sorted directly with the standard library instead of
// being split (or forked) further.
const DefaultMaxPart = 8192

// MaxPart is the recursion cutoff used by the exported sort functions. It
// trades parallelism granularity against task-spawn overhead: lower values
// expose more parallelism, higher values amortize scheduling cost over more
// work per task. Set it once at startup, before any sort runs; it is read
// once per top-level call and is not synchronized.
var MaxPart = DefaultMaxPart

// MergeSort sorts data ascending in place using sequential recursive merge
// sort.
func MergeSort[T Ordered](data []T) {
	mergeSort(data, MaxPart)
}

// QuickSort sorts data ascending in place using sequential recursive
// quicksort.
func QuickSort[T Ordered](data []T) {
	quickSort(data, MaxPart)
}

func mergeSort[T Ordered](data []T, maxPart int) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= maxPart {
		slices.Sort(data)
		return
	}

	middle := n / 2
	mergeSort(data[:middle], maxPart)
	mergeSort(data[middle:], maxPart)
	merge(data, middle)
}

func quickSort[T Ordered](data []T, maxPart int) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= maxPart {
		slices.Sort(data)
		return
	}

	pivot, ok := pivotForSplit(data)
	if !ok {
		// All elements equal: already sorted.
		return
	}
	split := partition(data, pivot)
	quickSort(data[:split], maxPart)
	quickSort(data[split:], maxPart)
}
