// Package history provides the fixed-capacity rolling buffer of recent
// glucose readings shown on the gauge.
package history

import "github.com/five82/bgcheck/internal/glucose"

// DefaultCapacity is the number of readings kept when none is configured.
const DefaultCapacity = 6

// Buffer stores the most recent readings, oldest first.
type Buffer struct {
	readings []glucose.Reading
	capacity int
}

// NewBuffer creates an empty buffer. Non-positive capacities use DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		readings: make([]glucose.Reading, 0, capacity),
		capacity: capacity,
	}
}

// Append records r as the most recent reading. When the buffer is already
// full the oldest reading is dropped before r is added.
func (b *Buffer) Append(r glucose.Reading) {
	if len(b.readings) > b.capacity-1 {
		copy(b.readings, b.readings[1:])
		b.readings = b.readings[:len(b.readings)-1]
	}
	b.readings = append(b.readings, r)
}

// Snapshot returns a copy of the buffer contents, oldest first.
func (b *Buffer) Snapshot() []glucose.Reading {
	out := make([]glucose.Reading, len(b.readings))
	copy(out, b.readings)
	return out
}

// Len returns the number of stored readings.
func (b *Buffer) Len() int {
	return len(b.readings)
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Last returns the most recent reading, or glucose.Missing if empty.
func (b *Buffer) Last() glucose.Reading {
	if len(b.readings) == 0 {
		return glucose.Missing
	}
	return b.readings[len(b.readings)-1]
}
