// Package chart projects the reading history onto a fixed pixel canvas and
// rasterizes the resulting line segments for terminal display.
//
// The projection works in the gauge's logical 800x600 pixel space. Values are
// scaled linearly against the fixed axis [0, 30] mmol/L and anchored so that
// y=400 is the zero line; with the default chart height of 200 a reading of 30
// lands on y=200. Missing readings are plotted at zero, which draws the flat
// "no data" line the gauge has always shown.
package chart

import "github.com/five82/bgcheck/internal/glucose"

// Logical canvas and axis constants.
const (
	CanvasWidth  = 800
	CanvasHeight = 600

	DefaultChartWidth  = 800
	DefaultChartHeight = 200

	// Baseline is the y coordinate of the axis minimum.
	Baseline = 400

	AxisMin = 0.0
	AxisMax = 30.0
)

// Point is a position in canvas pixels.
type Point struct {
	X int
	Y int
}

// Segment is one line of the history chart. Severity is the band of the
// segment's destination reading.
type Segment struct {
	From     Point
	To       Point
	Severity glucose.Severity
}

// Project maps readings to line segments. Fewer than two readings produce no
// segments. Non-positive dimensions fall back to the defaults.
func Project(readings []glucose.Reading, chartWidth, chartHeight int) []Segment {
	count := len(readings)
	if count < 2 {
		return nil
	}
	if chartWidth <= 0 {
		chartWidth = DefaultChartWidth
	}
	if chartHeight <= 0 {
		chartHeight = DefaultChartHeight
	}

	usable := count * (chartWidth / count)
	step := usable / count

	segments := make([]Segment, 0, count-1)
	for i := 0; i < count-1; i++ {
		segments = append(segments, Segment{
			From: Point{
				X: i * step,
				Y: YCoordinate(readings[i].PlotValue(), chartHeight),
			},
			To: Point{
				X: (i + 1) * step,
				Y: YCoordinate(readings[i+1].PlotValue(), chartHeight),
			},
			Severity: glucose.Classify(readings[i+1]),
		})
	}
	return segments
}

// YCoordinate returns the canvas y for value, truncated toward zero.
func YCoordinate(value float64, chartHeight int) int {
	return int(Baseline - ((value-AxisMin)/(AxisMax-AxisMin))*float64(chartHeight))
}
