package accum

import (
	"sync/atomic"

	"github.com/randomizedcoder/parallel-sum-benchmarks/internal/pfor"
)

// AtomicSummer sums the range in parallel with an atomic add per element.
//
// Correct, but every addition is an indivisible read-modify-write on one
// cache line, so the workers serialize on the accumulator. Expect it to be
// slower than the serial baseline, not faster.
type AtomicSummer struct {
	workers int
}

// NewAtomic creates an AtomicSummer. workers <= 0 means runtime.GOMAXPROCS(0).
func NewAtomic(workers int) *AtomicSummer {
	return &AtomicSummer{workers: workers}
}

// Sum returns the sum of all i in [start, end).
func (a *AtomicSummer) Sum(start, end int64) int64 {
	var sum atomic.Int64
	pfor.ForN(start, end, a.workers, func(i int64) {
		sum.Add(i)
	})
	return sum.Load()
}

// Name returns the strategy's display name.
func (a *AtomicSummer) Name() string {
	return Atomic.String()
}

// Workers returns the configured worker count (0 = GOMAXPROCS).
func (a *AtomicSummer) Workers() int {
	return a.workers
}
