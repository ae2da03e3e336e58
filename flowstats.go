// Package flowstats provides a packet and byte counter pair for a
// single tracked flow.
//
// The counters are signed 64-bit integers. Consumers read them across
// an interop boundary from a runtime without a safe unsigned 64-bit
// type, so the sign bit is part of the contract: a negative counter is
// the detectable fault state (see Underflow), never a valid
// measurement.
//
// FlowStats is meant for per-packet updates. The mutators perform no
// validation, never allocate, and wrap around silently on overflow;
// callers that need detection use the checked variants or poll
// Underflow after subtracting. A FlowStats is not safe for concurrent
// use: one writer owns an instance, and readers needing consistent
// snapshots coordinate externally.
package flowstats

import "fmt"

// FlowStats counts the packets and bytes attributed to a single flow.
//
// It is a plain value: assignment copies it, and the copy is fully
// independent of the original. The zero value has both counters at 0
// and is ready to use.
type FlowStats struct {
	packets int64
	bytes   int64
}

// NewFlowStats returns a FlowStats with the given initial counters.
// The values are not validated; negative inputs are accepted as-is.
func NewFlowStats(packets, bytes int64) FlowStats {
	return FlowStats{packets: packets, bytes: bytes}
}

// Packets returns the packet counter.
func (s FlowStats) Packets() int64 { return s.packets }

// Bytes returns the byte counter.
func (s FlowStats) Bytes() int64 { return s.bytes }

// Reset sets both counters to 0.
func (s *FlowStats) Reset() {
	s.packets = 0
	s.bytes = 0
}

// Add adds the given deltas to both counters in place.
// Overflow is not detected; the counters wrap around.
func (s *FlowStats) Add(packets, bytes int64) {
	s.packets += packets
	s.bytes += bytes
}

// AddStats adds the other instance's counters, see Add.
func (s *FlowStats) AddStats(other FlowStats) {
	s.Add(other.packets, other.bytes)
}

// Subtract subtracts the given deltas from both counters in place.
// A counter may go negative; this is only observable after the fact,
// via Underflow.
func (s *FlowStats) Subtract(packets, bytes int64) {
	s.packets -= packets
	s.bytes -= bytes
}

// SubtractStats subtracts the other instance's counters, see Subtract.
func (s *FlowStats) SubtractStats(other FlowStats) {
	s.Subtract(other.packets, other.bytes)
}

// Underflow reports whether either counter is negative, i.e. whether a
// subtraction removed more than was previously accumulated.
func (s FlowStats) Underflow() bool {
	return s.packets < 0 || s.bytes < 0
}

func (s FlowStats) String() string {
	return fmt.Sprintf("packets: %d, bytes: %d", s.packets, s.bytes)
}
