package accum

import (
	"sync"

	"github.com/randomizedcoder/parallel-sum-benchmarks/internal/pfor"
)

// MutexSummer sums the range in parallel with a mutex around each add.
//
// Correct, and the critical-section counterpart to AtomicSummer: same
// serialization on the accumulator, plus lock acquisition overhead on top.
// Expected to be the slowest strategy.
type MutexSummer struct {
	workers int
}

// NewMutex creates a MutexSummer. workers <= 0 means runtime.GOMAXPROCS(0).
func NewMutex(workers int) *MutexSummer {
	return &MutexSummer{workers: workers}
}

// Sum returns the sum of all i in [start, end).
func (m *MutexSummer) Sum(start, end int64) int64 {
	var mu sync.Mutex
	var sum int64
	pfor.ForN(start, end, m.workers, func(i int64) {
		mu.Lock()
		sum += i
		mu.Unlock()
	})
	return sum
}

// Name returns the strategy's display name.
func (m *MutexSummer) Name() string {
	return Mutex.String()
}

// Workers returns the configured worker count (0 = GOMAXPROCS).
func (m *MutexSummer) Workers() int {
	return m.workers
}
