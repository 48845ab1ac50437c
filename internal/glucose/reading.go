package glucose

import (
	"strconv"
	"strings"
	"time"
)

// Reading is a single glucose measurement in mmol/L, or its absence.
type Reading struct {
	value   float64
	present bool

	// Time is the sample time reported by the service (zero when unknown).
	Time time.Time
	// Trend is the service's trend direction, e.g. "Flat" or "SingleUp".
	Trend string
}

// Missing is the reading recorded when no value is available.
var Missing = Reading{}

// Numeric returns a present reading with the given value.
func Numeric(v float64) Reading {
	return Reading{value: v, present: true}
}

// IsMissing reports whether r carries no value.
func (r Reading) IsMissing() bool {
	return !r.present
}

// Value returns the reading's value and whether it is present.
func (r Reading) Value() (float64, bool) {
	return r.value, r.present
}

// PlotValue returns the value used for charting: Missing plots as zero.
func (r Reading) PlotValue() float64 {
	if !r.present {
		return 0
	}
	return r.value
}

// String formats the value the way the gauge displays it ("--" when missing).
func (r Reading) String() string {
	if !r.present {
		return "--"
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

// FormatList renders readings as "[10, 16, --, 8]".
func FormatList(readings []Reading) string {
	parts := make([]string, len(readings))
	for i, r := range readings {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TrendArrow maps a Dexcom trend direction to an arrow glyph.
func TrendArrow(trend string) string {
	switch trend {
	case "DoubleUp":
		return "⇈"
	case "SingleUp":
		return "↑"
	case "FortyFiveUp":
		return "↗"
	case "Flat":
		return "→"
	case "FortyFiveDown":
		return "↘"
	case "SingleDown":
		return "↓"
	case "DoubleDown":
		return "⇊"
	default:
		return ""
	}
}
