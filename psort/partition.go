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

// pivotForSplit selects a partition pivot for data, or reports that the
// range is uniform.
//
// It scans past the leading run of elements equal to data[0]. If the run
// covers the whole range there is nothing to partition and ok is false:
// callers must return without recursing, which is what keeps quicksort off
// the quadratic (or non-terminating) path on many-duplicate inputs. A naive
// fixed-position pivot has no such escape hatch.
//
// Otherwise the pivot is the smaller of data[0] and the first differing
// element. At least one element compares <= pivot and at least one compares
// > pivot, so the split returned by partition is always non-trivial and
// every recursion level strictly shrinks.
func pivotForSplit[T Ordered](data []T) (pivot T, ok bool) {
	first := data[0]
	for i := 1; i < len(data); i++ {
		if data[i] != first {
			if data[i] < first {
				return data[i], true
			}
			return first, true
		}
	}
	return first, false
}

// partition reorders data in place around pivot using a Hoare two-pointer
// scan and returns the split point: data[:split] <= pivot and
// data[split:] > pivot.
//
// When pivot comes from pivotForSplit, 0 < split < len(data). The scan
// never reads outside data.
func partition[T Ordered](data []T, pivot T) int {
	head := 0
	tail := len(data) - 1

	for head < tail {
		for head < tail && data[head] <= pivot {
			head++
		}
		for head < tail && data[tail] > pivot {
			tail--
		}
		if head >= tail {
			break
		}
		data[head], data[tail] = data[tail], data[head]
		head++
		tail--
	}

	// The pointers meet on (or cross over) one element the scans never
	// classified; place it explicitly.
	if head > tail {
		return head
	}
	if data[head] <= pivot {
		return head + 1
	}
	return head
}
