// Package pfor provides a fork-join parallel loop over an integer range.
//
// The range [start, end) is split into contiguous chunks, one per worker.
// Workers run their chunk to completion and join before the call returns.
// There are no queues and no cancellation: this is the minimal fork-join
// construct the accumulation strategies are built on.
package pfor

import (
	"runtime"
	"sync"
)

// Range is a half-open subrange [Lo, Hi) assigned to one worker.
type Range struct {
	Lo, Hi int64
}

// For executes body for every i in [start, end), split across
// runtime.GOMAXPROCS(0) workers.
func For(start, end int64, body func(i int64)) {
	ForN(start, end, 0, body)
}

// ForN executes body for every i in [start, end) using the given number of
// workers. workers <= 0 means runtime.GOMAXPROCS(0). Workers are clamped to
// the iteration count; a range that fits one worker runs inline on the
// calling goroutine.
func ForN(start, end int64, workers int, body func(i int64)) {
	ranges := Ranges(start, end, workers)
	switch len(ranges) {
	case 0:
		return
	case 1:
		for i := ranges[0].Lo; i < ranges[0].Hi; i++ {
			body(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(lo, hi int64) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				body(i)
			}
		}(r.Lo, r.Hi)
	}
	wg.Wait()
}

// Ranges splits [start, end) into at most `workers` contiguous chunks.
// workers <= 0 means runtime.GOMAXPROCS(0). Returns nil for an empty range.
//
// Chunks cover the range exactly, in order, with no overlap; reduction-style
// callers use this to give each worker a private subrange.
func Ranges(start, end int64, workers int) []Range {
	total := end - start
	if total <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if int64(workers) > total {
		workers = int(total)
	}

	chunk := (total + int64(workers) - 1) / int64(workers)
	ranges := make([]Range, 0, workers)
	for lo := start; lo < end; lo += chunk {
		hi := lo + chunk
		if hi > end {
			hi = end
		}
		ranges = append(ranges, Range{Lo: lo, Hi: hi})
	}
	return ranges
}
