package accum

// SerialSummer sums the range in a plain loop on the calling goroutine.
//
// This is the baseline every parallel strategy's speedup is measured
// against. Always correct.
type SerialSummer struct{}

// NewSerial creates a SerialSummer.
func NewSerial() *SerialSummer {
	return &SerialSummer{}
}

// Sum returns the sum of all i in [start, end).
func (s *SerialSummer) Sum(start, end int64) int64 {
	var sum int64
	for i := start; i < end; i++ {
		sum += i
	}
	return sum
}

// Name returns the strategy's display name.
func (s *SerialSummer) Name() string {
	return Sequential.String()
}
