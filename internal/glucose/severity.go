package glucose

// Severity is the alert band derived from a reading.
type Severity int

const (
	Good Severity = iota
	Warning
	Bad
	NoReading
)

// Band limits in mmol/L. All comparisons are strict.
const (
	BadLow      = 3.0
	WarningLow  = 4.0
	WarningHigh = 13.0
	BadHigh     = 15.0
)

// Classify returns the severity band for r.
func Classify(r Reading) Severity {
	v, ok := r.Value()
	if !ok {
		return NoReading
	}
	switch {
	case v > BadHigh || v < BadLow:
		return Bad
	case v < WarningLow || v > WarningHigh:
		return Warning
	default:
		return Good
	}
}

// String returns a lower-case label suitable for logs and metric labels.
func (s Severity) String() string {
	switch s {
	case Good:
		return "good"
	case Warning:
		return "warning"
	case Bad:
		return "bad"
	case NoReading:
		return "missing"
	default:
		return "unknown"
	}
}
