// Package accum provides integer-range summation strategies for benchmarking.
//
// Every strategy computes the sum of all i in [start, end). The point of the
// package is the contrast between them:
//   - SerialSummer: single-goroutine loop, the baseline
//   - RacySummer: parallel loop with an UNPROTECTED shared accumulator
//   - AtomicSummer: parallel loop, atomic add per element
//   - MutexSummer: parallel loop, mutex around each add
//   - ReduceSummer: per-worker private partial sums, combined after join
//   - ChannelSummer: partial sums handed to the caller over a channel
//
// # RacySummer is broken on purpose (IMPORTANT)
//
// RacySummer has a genuine data race: every worker does an unsynchronized
// read-modify-write on one shared int64. With more than one worker its
// result is non-deterministic and usually below the true sum, because
// concurrent updates get lost. That defect is the demonstration; do not
// "fix" it. Run the race-detector suite with `go test -race ./...`; the
// tests that provoke the race are excluded from race builds.
//
// All parallel strategies use fork-join scheduling via the pfor package:
// fixed subranges, workers sized to GOMAXPROCS unless told otherwise, full
// join before Sum returns.
package accum

import "fmt"

// Summer computes the sum of all integers in [start, end).
type Summer interface {
	// Sum returns the sum of i for start <= i < end, 0 if end <= start.
	// Correct for every implementation except RacySummer with >1 worker.
	Sum(start, end int64) int64

	// Name returns the strategy's display name.
	Name() string
}

// Strategy selects a summation implementation. The zero value is Sequential.
type Strategy int

const (
	Sequential Strategy = iota
	Racy
	Atomic
	Mutex
	Reduce
	Channel
)

// String returns the strategy's display name.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "serial"
	case Racy:
		return "racy"
	case Atomic:
		return "atomic"
	case Mutex:
		return "mutex"
	case Reduce:
		return "reduce"
	case Channel:
		return "channel"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// All returns every strategy in the fixed benchmark run order:
// serial first, then the parallel variants from worst to best.
func All() []Strategy {
	return []Strategy{Sequential, Racy, Atomic, Mutex, Reduce, Channel}
}

// New creates the Summer for a strategy tag. workers <= 0 means
// runtime.GOMAXPROCS(0); Sequential ignores workers.
func New(s Strategy, workers int) (Summer, error) {
	switch s {
	case Sequential:
		return NewSerial(), nil
	case Racy:
		return NewRacy(workers), nil
	case Atomic:
		return NewAtomic(workers), nil
	case Mutex:
		return NewMutex(workers), nil
	case Reduce:
		return NewReduce(workers), nil
	case Channel:
		return NewChannel(workers), nil
	default:
		return nil, fmt.Errorf("accum: unknown strategy %d", int(s))
	}
}

// ClosedForm returns the exact sum of all i in [start, end) via the
// arithmetic-series formula. Used to verify strategy output.
func ClosedForm(start, end int64) int64 {
	n := end - start
	if n <= 0 {
		return 0
	}
	// n and start+end-1 have opposite parity, so one factor is even.
	if n%2 == 0 {
		return n / 2 * (start + end - 1)
	}
	return n * ((start + end - 1) / 2)
}
