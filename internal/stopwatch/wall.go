package stopwatch

import "time"

// Wall measures elapsed time with time.Now.
//
// This is the standard library approach. time.Now on modern platforms reads
// the monotonic clock, so Wall is immune to wall-clock adjustments despite
// the name.
type Wall struct {
	total   time.Duration
	startAt time.Time
	running bool
}

// NewWall creates a stopped Wall stopwatch with zero elapsed time.
func NewWall() *Wall {
	return &Wall{}
}

// Reset clears the stopwatch to zero elapsed, stopped.
func (w *Wall) Reset() {
	w.total = 0
	w.running = false
}

// Start begins or resumes counting.
func (w *Wall) Start() {
	if w.running {
		return
	}
	w.startAt = time.Now()
	w.running = true
}

// Stop pauses counting, folding the current segment into the total.
func (w *Wall) Stop() {
	if !w.running {
		return
	}
	w.total += time.Since(w.startAt)
	w.running = false
}

// Elapsed returns the accumulated time, including any running segment.
func (w *Wall) Elapsed() time.Duration {
	if w.running {
		return w.total + time.Since(w.startAt)
	}
	return w.total
}

// Milliseconds returns Elapsed truncated to whole milliseconds.
func (w *Wall) Milliseconds() int64 {
	return w.Elapsed().Milliseconds()
}
