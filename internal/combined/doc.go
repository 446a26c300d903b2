// Package combined provides interaction benchmarks that test multiple
// components together.
//
// These benchmarks measure what cmd/sum actually measures: a stopwatch
// wrapped around a full strategy run. They also compare partial-sum handoff
// mechanisms (buffered channel vs sharded lock-free ring), which isolated
// strategy benchmarks cannot.
package combined
