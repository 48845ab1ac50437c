package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bgcheck/internal/glucose"
)

// Braille cells hold a 2x4 dot matrix.
const (
	dotsPerCol  = 2
	dotsPerRow  = 4
	brailleBase = 0x2800
)

var brailleBits = [dotsPerCol][dotsPerRow]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Rect is a region of canvas pixels, Min inclusive and Max exclusive.
type Rect struct {
	Min Point
	Max Point
}

// ChartBand is the part of the canvas covering the axis range [0, 30] at the
// default chart height.
var ChartBand = Rect{
	Min: Point{X: 0, Y: Baseline - DefaultChartHeight},
	Max: Point{X: CanvasWidth, Y: Baseline + 1},
}

// Canvas rasterizes segments into a grid of braille cells.
type Canvas struct {
	cols, rows int
	view       Rect
	bits       [][]rune
	severity   [][]glucose.Severity
}

// NewCanvas creates a canvas of cols x rows terminal cells showing view.
func NewCanvas(cols, rows int, view Rect) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if view.Max.X <= view.Min.X || view.Max.Y <= view.Min.Y {
		view = ChartBand
	}
	c := &Canvas{cols: cols, rows: rows, view: view}
	c.bits = make([][]rune, rows)
	c.severity = make([][]glucose.Severity, rows)
	for r := range c.bits {
		c.bits[r] = make([]rune, cols)
		c.severity[r] = make([]glucose.Severity, cols)
	}
	return c
}

// Draw plots every segment. Later segments win the colour of shared cells.
func (c *Canvas) Draw(segments []Segment) {
	for _, s := range segments {
		x0, y0 := c.toDots(s.From)
		x1, y1 := c.toDots(s.To)
		c.line(x0, y0, x1, y1, s.Severity)
	}
}

// Render returns the canvas as rows of text, styling each run of cells with
// the style for its severity.
func (c *Canvas) Render(style func(glucose.Severity) lipgloss.Style) string {
	lines := make([]string, c.rows)
	for r := 0; r < c.rows; r++ {
		var sb strings.Builder
		var run strings.Builder
		runSev := glucose.Severity(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runSev < 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(style(runSev).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			sev := glucose.Severity(-1)
			ch := ' '
			if b := c.bits[r][col]; b != 0 {
				sev = c.severity[r][col]
				ch = brailleBase + b
			}
			if sev != runSev {
				flush()
				runSev = sev
			}
			run.WriteRune(ch)
		}
		flush()
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) toDots(p Point) (int, int) {
	w := c.view.Max.X - c.view.Min.X
	h := c.view.Max.Y - c.view.Min.Y
	x := floorDiv((p.X-c.view.Min.X)*c.cols*dotsPerCol, w)
	y := floorDiv((p.Y-c.view.Min.Y)*c.rows*dotsPerRow, h)
	return x, y
}

// line walks from (x0,y0) to (x1,y1) with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 int, sev glucose.Severity) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, sev)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) set(x, y int, sev glucose.Severity) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/dotsPerCol, y/dotsPerRow
	if col >= c.cols || row >= c.rows {
		return
	}
	c.bits[row][col] |= brailleBits[x%dotsPerCol][y%dotsPerRow]
	c.severity[row][col] = sev
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
