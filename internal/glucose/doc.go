// Package glucose defines the reading and severity model shared by the
// polling loop, the history buffer and the chart projector.
//
// # Readings
//
// A Reading is a tagged value: either a numeric glucose concentration in
// mmol/L or the Missing marker. Missing is kept distinct all the way through
// the buffer and the classifier so "no data" is never confused with a genuine
// reading of zero. Only the chart projector turns Missing into a plotting
// value.
//
// # Severity bands
//
// Classify maps a reading to one of four bands using strict inequalities:
//
//   - Bad: v > 15 or v < 3
//   - Warning: not Bad and (v > 13 or v < 4)
//   - Good: everything else
//   - NoReading: the reading is Missing
//
// Boundary values therefore land as follows: 3 and 15 are Warning, 4 and 13
// are Good. Bad always wins over Warning.
package glucose
