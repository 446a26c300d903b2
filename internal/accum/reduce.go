package accum

import (
	"sync"

	"github.com/randomizedcoder/parallel-sum-benchmarks/internal/pfor"
)

// ReduceSummer sums the range in parallel with a private partial sum per
// worker, combined after the join.
//
// Correct, and the strategy that actually wins: workers never touch shared
// state inside the loop, so there is nothing to serialize on. This is the
// reduction pattern a data-parallel runtime generates for you.
type ReduceSummer struct {
	workers int
}

// NewReduce creates a ReduceSummer. workers <= 0 means runtime.GOMAXPROCS(0).
func NewReduce(workers int) *ReduceSummer {
	return &ReduceSummer{workers: workers}
}

// Sum returns the sum of all i in [start, end).
func (r *ReduceSummer) Sum(start, end int64) int64 {
	ranges := pfor.Ranges(start, end, r.workers)
	if len(ranges) == 0 {
		return 0
	}

	// One slot per worker, written only by that worker before the join.
	partials := make([]int64, len(ranges))
	var wg sync.WaitGroup
	for w, rg := range ranges {
		wg.Add(1)
		go func(w int, lo, hi int64) {
			defer wg.Done()
			var local int64
			for i := lo; i < hi; i++ {
				local += i
			}
			partials[w] = local
		}(w, rg.Lo, rg.Hi)
	}
	wg.Wait()

	var sum int64
	for _, p := range partials {
		sum += p
	}
	return sum
}

// Name returns the strategy's display name.
func (r *ReduceSummer) Name() string {
	return Reduce.String()
}

// Workers returns the configured worker count (0 = GOMAXPROCS).
func (r *ReduceSummer) Workers() int {
	return r.workers
}
