package combined_test

import (
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// ============================================================================
// Partial-sum handoff: channel vs go-lock-free-ring (MPSC)
// ============================================================================
//
// ReduceSummer writes partials into a preallocated slice; ChannelSummer
// sends them over a buffered channel. These benchmarks ask what a third
// option would cost: handing partials to a collector through a sharded
// MPSC lock-free ring. Producers do a small subrange sum per handoff so
// the measurement reflects a reduction worker, not a bare queue op.

const partialSpan = 512

// partialSum is one reduction worker's private work before handoff.
func partialSum(lo int64) int64 {
	var sum int64
	for i := lo; i < lo+partialSpan; i++ {
		sum += i
	}
	return sum
}

// ============================================================================
// Single producer → single collector
// ============================================================================

func BenchmarkHandoff_SP_Channel(b *testing.B) {
	ch := make(chan int64, 1024)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
			default:
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := partialSum(int64(i))
		for {
			select {
			case ch <- v:
				goto sent
			default:
			}
		}
	sent:
	}
	b.StopTimer()
	close(done)
}

func BenchmarkHandoff_SP_ShardedRing1(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := int(partialSum(int64(i)))
		for !r.Write(0, v) {
		}
	}
	b.StopTimer()
	close(done)
}

// ============================================================================
// Many producers → single collector (the MPSC reduction shape)
// ============================================================================

func BenchmarkHandoff_MP_Channel_4P(b *testing.B) {
	ch := make(chan int64, 1024)
	done := make(chan struct{})
	collectorDone := make(chan struct{})

	go func() {
		defer close(collectorDone)
		for {
			select {
			case <-done:
				return
			case <-ch:
			default:
			}
		}
	}()

	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		lo := int64(0)
		for pb.Next() {
			v := partialSum(lo)
			for {
				select {
				case ch <- v:
					goto sent
				default:
				}
			}
		sent:
			lo += partialSpan
		}
	})

	b.StopTimer()
	close(done)
	<-collectorDone
}

func BenchmarkHandoff_MP_ShardedRing_4P_4S(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 4)
	done := make(chan struct{})
	collectorDone := make(chan struct{})

	go func() {
		defer close(collectorDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		lo := int64(0)
		for pb.Next() {
			v := int(partialSum(lo))
			for !r.Write(pid, v) {
			}
			lo += partialSpan
		}
	})

	b.StopTimer()
	close(done)
	<-collectorDone
}
