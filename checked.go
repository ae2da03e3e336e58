package flowstats

import "errors"

var (
	// ErrCounterOverflow is returned by AddChecked when an addition
	// would wrap around.
	ErrCounterOverflow = errors.New("flowstats: counter overflow")
	// ErrCounterUnderflow is returned by SubtractChecked when a
	// subtraction would drive a counter negative.
	ErrCounterUnderflow = errors.New("flowstats: counter underflow")
)

// AddChecked adds the given deltas like Add, but fails instead of
// wrapping around. On error neither counter is modified.
func (s *FlowStats) AddChecked(packets, bytes int64) error {
	p, ok := addInt64(s.packets, packets)
	if !ok {
		return ErrCounterOverflow
	}
	b, ok := addInt64(s.bytes, bytes)
	if !ok {
		return ErrCounterOverflow
	}
	s.packets = p
	s.bytes = b
	return nil
}

// SubtractChecked subtracts the given deltas like Subtract, but fails
// instead of driving a counter negative or wrapping. On error neither
// counter is modified.
func (s *FlowStats) SubtractChecked(packets, bytes int64) error {
	p, ok := subInt64(s.packets, packets)
	if !ok || p < 0 {
		return ErrCounterUnderflow
	}
	b, ok := subInt64(s.bytes, bytes)
	if !ok || b < 0 {
		return ErrCounterUnderflow
	}
	s.packets = p
	s.bytes = b
	return nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	// the sum wrapped if it moved in the wrong direction
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}
