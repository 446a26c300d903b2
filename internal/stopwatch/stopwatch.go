// Package stopwatch provides elapsed-time measurement for the benchmark
// harness.
//
// This package offers two implementations of the Stopwatch interface:
//   - Wall: Standard library approach using time.Now
//   - Nano: Optimized approach using runtime.nanotime
//
// Both count only the time between Start and Stop; repeated Start/Stop
// cycles accumulate. The harness measures whole strategy runs, so Wall is
// accurate enough for normal use; Nano exists for callers timing very short
// sections where the cost of constructing time.Time values matters.
package stopwatch

import "time"

// Stopwatch accumulates elapsed time across Start/Stop cycles.
//
// Implementations are NOT safe for concurrent use; a stopwatch belongs to
// the single goroutine driving a measurement.
type Stopwatch interface {
	// Reset clears the stopwatch to zero elapsed, stopped.
	Reset()

	// Start begins (or resumes) counting. Calling Start on a running
	// stopwatch is a no-op.
	Start()

	// Stop pauses counting. Calling Stop on a stopped stopwatch is a no-op.
	Stop()

	// Elapsed returns the accumulated time. On a running stopwatch this
	// includes the in-progress segment.
	Elapsed() time.Duration

	// Milliseconds returns Elapsed truncated to whole milliseconds.
	Milliseconds() int64
}
