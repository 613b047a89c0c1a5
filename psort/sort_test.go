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
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-parsort/workerpool"
)

// Helper to check if slice is sorted
func isSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// variant names one of the four sort drivers with a forced recursion
// cutoff, so tests exercise the split path on small inputs.
type variant struct {
	name string
	sort func(data []int64)
}

func variantsWithMaxPart(maxPart int) []variant {
	return []variant{
		{"mergeSort", func(d []int64) { mergeSort(d, maxPart) }},
		{"quickSort", func(d []int64) { quickSort(d, maxPart) }},
		{"parallelMergeSort", func(d []int64) { parallelMergeSort(nil, d, maxPart) }},
		{"parallelQuickSort", func(d []int64) { parallelQuickSort(nil, d, maxPart) }},
	}
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, v := range variantsWithMaxPart(2) {
		var empty []int64
		v.sort(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", v.name)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, v := range variantsWithMaxPart(2) {
		data := []int64{7}
		v.sort(data)
		if data[0] != 7 {
			t.Errorf("%s([7]) = %v, want [7]", v.name, data)
		}
	}
}

// TestSortAlreadySorted tests that sorted input comes back unchanged
func TestSortAlreadySorted(t *testing.T) {
	want := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, v := range variantsWithMaxPart(2) {
		data := slices.Clone(want)
		v.sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s(sorted) = %v, want %v", v.name, data, want)
		}
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	for _, v := range variantsWithMaxPart(2) {
		data := []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
		v.sort(data)
		if !isSorted(data) {
			t.Errorf("%s(reverse) produced unsorted result: %v", v.name, data)
		}
	}
}

// TestSortDuplicateRuns tests the duplicate-heavy scenario with the cutoff
// forced to 2, so every variant takes the recursive split path.
func TestSortDuplicateRuns(t *testing.T) {
	input := []int64{5, 3, 3, 1, 4, 1, 5, 9, 2, 6}
	want := []int64{1, 1, 2, 3, 3, 4, 5, 5, 6, 9}
	for _, v := range variantsWithMaxPart(2) {
		data := slices.Clone(input)
		v.sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s(%v) = %v, want %v", v.name, input, data, want)
		}
	}
}

// TestSortAllEqual tests that a long all-equal run terminates and comes
// back unchanged. This is the input that sends a naive middle-pivot
// quicksort quadratic (or into infinite recursion).
func TestSortAllEqual(t *testing.T) {
	input := make([]int64, 1000)
	for i := range input {
		input[i] = 42
	}
	for _, v := range variantsWithMaxPart(4) {
		data := slices.Clone(input)
		v.sort(data)
		if !slices.Equal(data, input) {
			t.Errorf("%s(allEqual) modified the slice", v.name)
		}
	}
}

// TestSortThresholdBoundary tests sizes right at the recursion cutoff,
// exercising both the baseline path and the split path.
func TestSortThresholdBoundary(t *testing.T) {
	const maxPart = 64
	for _, n := range []int{maxPart - 1, maxPart, maxPart + 1} {
		want := make([]int64, n)
		for i := range want {
			want[i] = rand.Int63n(100) - 50
		}
		ref := slices.Clone(want)
		slices.Sort(ref)

		for _, v := range variantsWithMaxPart(maxPart) {
			data := slices.Clone(want)
			v.sort(data)
			if !slices.Equal(data, ref) {
				t.Errorf("%s(n=%d) = %v, want %v", v.name, n, data, ref)
			}
		}
	}
}

// TestSortMatchesStdlib verifies every variant produces the same value
// sequence as slices.Sort across a range of sizes and duplicate densities.
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 4096}
	for _, n := range sizes {
		for _, maxValue := range []int64{10, 1 << 30} {
			input := make([]int64, n)
			for i := range input {
				input[i] = rng.Int63n(maxValue)
			}
			ref := slices.Clone(input)
			slices.Sort(ref)

			for _, v := range variantsWithMaxPart(16) {
				data := slices.Clone(input)
				v.sort(data)
				if !slices.Equal(data, ref) {
					t.Errorf("%s(n=%d, maxValue=%d) mismatch with slices.Sort", v.name, n, maxValue)
				}
			}
		}
	}
}

// TestSortIdempotent verifies sorting twice equals sorting once
func TestSortIdempotent(t *testing.T) {
	for _, v := range variantsWithMaxPart(8) {
		data := make([]int64, 500)
		for i := range data {
			data[i] = rand.Int63n(50)
		}
		v.sort(data)
		once := slices.Clone(data)
		v.sort(data)
		if !slices.Equal(data, once) {
			t.Errorf("%s is not idempotent", v.name)
		}
	}
}

// TestSortStrings tests the Ordered constraint beyond numbers
func TestSortStrings(t *testing.T) {
	input := []string{"pear", "apple", "fig", "apple", "banana", "date", "cherry", "fig"}
	ref := slices.Clone(input)
	slices.Sort(ref)

	data := slices.Clone(input)
	mergeSort(data, 2)
	if !slices.Equal(data, ref) {
		t.Errorf("mergeSort(strings) = %v, want %v", data, ref)
	}

	data = slices.Clone(input)
	quickSort(data, 2)
	if !slices.Equal(data, ref) {
		t.Errorf("quickSort(strings) = %v, want %v", data, ref)
	}
}

// TestExportedAPI tests the package-level entry points with the default
// MaxPart and with a live pool.
func TestExportedAPI(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	input := make([]float64, 2000)
	for i := range input {
		input[i] = rand.Float64() * 1000
	}
	ref := slices.Clone(input)
	slices.Sort(ref)

	for name, sort := range map[string]func([]float64){
		"MergeSort":             MergeSort[float64],
		"QuickSort":             QuickSort[float64],
		"ParallelMergeSort":     func(d []float64) { ParallelMergeSort(pool, d) },
		"ParallelQuickSort":     func(d []float64) { ParallelQuickSort(pool, d) },
		"ParallelMergeSort/nil": func(d []float64) { ParallelMergeSort[float64](nil, d) },
		"ParallelQuickSort/nil": func(d []float64) { ParallelQuickSort[float64](nil, d) },
	} {
		data := slices.Clone(input)
		sort(data)
		if !slices.Equal(data, ref) {
			t.Errorf("%s mismatch with slices.Sort", name)
		}
	}
}
