package ui

import "time"

// DefaultFrameTick is the render interval. The countdown drops by one per frame.
const DefaultFrameTick = time.Second

// Layout sizes in terminal cells.
const (
	// DefaultWidth is used until the terminal reports its size.
	DefaultWidth = 80

	// ChartRows is the chart height; each row holds four braille dots.
	ChartRows = 8

	// ChartMinCols and ChartMaxCols clamp the chart width.
	ChartMinCols = 20
	ChartMaxCols = 120

	// LogPaneLines is the number of log records shown in the log pane.
	LogPaneLines = 6
)
