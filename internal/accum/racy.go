package accum

import "github.com/randomizedcoder/parallel-sum-benchmarks/internal/pfor"

// RacySummer sums the range in parallel with NO protection on the shared
// accumulator.
//
// WARNING: This is a deliberate data race, kept as the package's
// demonstration of why naive parallel accumulation is wrong. With more
// than one worker the result is non-deterministic: concurrent
// read-modify-write updates overwrite each other and additions get lost.
// With one worker (or a range too small to split) it degenerates to a
// serial loop and is exact.
type RacySummer struct {
	workers int
}

// NewRacy creates a RacySummer. workers <= 0 means runtime.GOMAXPROCS(0).
func NewRacy(workers int) *RacySummer {
	return &RacySummer{workers: workers}
}

// Sum returns a sum of all i in [start, end) that is only correct when a
// single worker ran. See the type comment.
func (r *RacySummer) Sum(start, end int64) int64 {
	var sum int64
	pfor.ForN(start, end, r.workers, func(i int64) {
		sum += i // Intentional unsynchronized read-modify-write
	})
	return sum
}

// Name returns the strategy's display name.
func (r *RacySummer) Name() string {
	return Racy.String()
}

// Workers returns the configured worker count (0 = GOMAXPROCS).
func (r *RacySummer) Workers() int {
	return r.workers
}
