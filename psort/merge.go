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

// merge merges the two adjacent sorted halves data[:middle] and
// data[middle:] into one sorted range. Scratch space equal to the smaller
// half is allocated internally; nothing outside data is visible to the
// caller. Preconditions (0 <= middle <= len(data), both halves sorted) are
// not checked; violating them yields garbage, not a fault.
func merge[T Ordered](data []T, middle int) {
	n := len(data)
	if middle <= 0 || middle >= n {
		return
	}
	// Already ordered across the boundary.
	if data[middle-1] <= data[middle] {
		return
	}

	if middle <= n-middle {
		mergeLeft(data, middle)
	} else {
		mergeRight(data, middle)
	}
}

// mergeLeft copies the left half out and merges forward.
func mergeLeft[T Ordered](data []T, middle int) {
	left := make([]T, middle)
	copy(left, data[:middle])

	i, j, k := 0, middle, 0
	for i < len(left) && j < len(data) {
		if data[j] < left[i] {
			data[k] = data[j]
			j++
		} else {
			data[k] = left[i]
			i++
		}
		k++
	}
	copy(data[k:], left[i:])
}

// mergeRight copies the right half out and merges backward.
func mergeRight[T Ordered](data []T, middle int) {
	right := make([]T, len(data)-middle)
	copy(right, data[middle:])

	i, j, k := middle-1, len(right)-1, len(data)-1
	for i >= 0 && j >= 0 {
		if data[i] > right[j] {
			data[k] = data[i]
			i--
		} else {
			data[k] = right[j]
			j--
		}
		k--
	}
	copy(data[:j+1], right[:j+1])
}
