package source

import (
	"context"

	"github.com/five82/bgcheck/internal/glucose"
)

// SimulatedSequence is the fixed reading sequence played back in test mode.
var SimulatedSequence = []glucose.Reading{
	glucose.Numeric(10),
	glucose.Numeric(16),
	glucose.Numeric(3),
	glucose.Missing,
	glucose.Numeric(8),
	glucose.Numeric(6),
	glucose.Numeric(6),
	glucose.Numeric(12),
	glucose.Numeric(19),
	glucose.Numeric(5),
	glucose.Numeric(24),
	glucose.Numeric(99),
}

// Simulated replays a finite sequence of readings once. After the last value
// every fetch returns glucose.Missing.
type Simulated struct {
	readings []glucose.Reading
	next     int
}

// NewSimulated returns a source over readings, or SimulatedSequence when
// readings is empty.
func NewSimulated(readings ...glucose.Reading) *Simulated {
	if len(readings) == 0 {
		readings = SimulatedSequence
	}
	dup := make([]glucose.Reading, len(readings))
	copy(dup, readings)
	return &Simulated{readings: dup}
}

// Fetch returns the next reading in the sequence.
func (s *Simulated) Fetch(context.Context) (glucose.Reading, error) {
	if s.next >= len(s.readings) {
		return glucose.Missing, nil
	}
	r := s.readings[s.next]
	s.next++
	return r, nil
}

// Remaining returns how many scripted readings are left.
func (s *Simulated) Remaining() int {
	return len(s.readings) - s.next
}
