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

// Command psortbench times the go-parsort variants against the standard
// library on deterministic random input and verifies every result against
// a reference sort.
//
// Usage:
//
//	psortbench -n 10000000 -max-part 16384 -workers 8
//	psortbench -n 1000000 -max-value 10    # duplicate-heavy input
package main

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-parsort/psort"
	"github.com/ajroetker/go-parsort/workerpool"
)

func main() {
	app := &cli.App{
		Name:  "psortbench",
		Usage: "benchmark parallel merge sort and quicksort against the standard library",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "n",
				Aliases: []string{"size"},
				Value:   1 << 23,
				Usage:   "number of elements to sort",
			},
			&cli.IntFlag{
				Name:  "max-part",
				Value: psort.DefaultMaxPart,
				Usage: "recursion cutoff: ranges this size or smaller use the baseline sort",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 0,
				Usage: "pool workers (0 = GOMAXPROCS, negative = one goroutine per task)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
				Usage: "seed for the input generator",
			},
			&cli.Int64Flag{
				Name:  "max-value",
				Value: 1 << 30,
				Usage: "values are drawn from [0, max-value); small values force duplicate runs",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	n := c.Int("n")
	maxValue := c.Int64("max-value")
	if n < 0 || maxValue <= 0 {
		return fmt.Errorf("invalid input shape: n=%d max-value=%d", n, maxValue)
	}
	psort.MaxPart = c.Int("max-part")

	var pool *workerpool.Pool
	if workers := c.Int("workers"); workers >= 0 {
		pool = workerpool.New(workers)
		defer pool.Close()
	}

	numbers := generate(pool, n, c.Int64("seed"), maxValue)

	reference := slices.Clone(numbers)
	slices.Sort(reference)

	variants := []struct {
		name string
		sort func([]int64)
	}{
		{"slices.Sort", func(d []int64) { slices.Sort(d) }},
		{"MergeSort", psort.MergeSort[int64]},
		{"ParallelMergeSort", func(d []int64) { psort.ParallelMergeSort(pool, d) }},
		{"QuickSort", psort.QuickSort[int64]},
		{"ParallelQuickSort", func(d []int64) { psort.ParallelQuickSort(pool, d) }},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "variant\tseconds\tresult\t\n")

	failures := 0
	buf := make([]int64, n)
	for _, v := range variants {
		copy(buf, numbers)

		start := time.Now()
		v.sort(buf)
		elapsed := time.Since(start)

		result := "ok"
		if !slices.Equal(buf, reference) {
			result = "MISMATCH"
			failures++
		}
		fmt.Fprintf(tw, "%s\t%.6f\t%s\t\n", v.name, elapsed.Seconds(), result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d variant(s) diverged from the reference sort", failures)
	}
	return nil
}

// generate fills the input deterministically from seed. With a pool the
// fill is chunked across workers, each chunk seeded from its start offset
// so the content depends only on seed and the chunk layout.
func generate(pool *workerpool.Pool, n int, seed, maxValue int64) []int64 {
	numbers := make([]int64, n)
	fill := func(start, end int) {
		rng := rand.New(rand.NewSource(seed + int64(start)))
		for i := start; i < end; i++ {
			numbers[i] = rng.Int63n(maxValue)
		}
	}
	if pool == nil {
		fill(0, n)
		return numbers
	}
	pool.ParallelFor(n, fill)
	return numbers
}
