package accum

import "github.com/randomizedcoder/parallel-sum-benchmarks/internal/pfor"

// ChannelSummer sums the range in parallel with workers handing their
// private partial sums to the caller over a buffered channel.
//
// Semantically identical to ReduceSummer; the difference is the combine
// step. The channel buys nothing here over a preallocated slice; it
// exists to measure what the handoff costs.
type ChannelSummer struct {
	workers int
}

// NewChannel creates a ChannelSummer. workers <= 0 means runtime.GOMAXPROCS(0).
func NewChannel(workers int) *ChannelSummer {
	return &ChannelSummer{workers: workers}
}

// Sum returns the sum of all i in [start, end).
func (c *ChannelSummer) Sum(start, end int64) int64 {
	ranges := pfor.Ranges(start, end, c.workers)
	if len(ranges) == 0 {
		return 0
	}

	// Buffered to worker count so no sender ever blocks on the drain.
	parts := make(chan int64, len(ranges))
	for _, rg := range ranges {
		go func(lo, hi int64) {
			var local int64
			for i := lo; i < hi; i++ {
				local += i
			}
			parts <- local
		}(rg.Lo, rg.Hi)
	}

	var sum int64
	for range ranges {
		sum += <-parts
	}
	return sum
}

// Name returns the strategy's display name.
func (c *ChannelSummer) Name() string {
	return Channel.String()
}

// Workers returns the configured worker count (0 = GOMAXPROCS).
func (c *ChannelSummer) Workers() int {
	return c.workers
}
