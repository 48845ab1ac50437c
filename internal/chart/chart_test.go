package chart

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bgcheck/internal/glucose"
)

func numeric(values ...float64) []glucose.Reading {
	out := make([]glucose.Reading, len(values))
	for i, v := range values {
		out[i] = glucose.Numeric(v)
	}
	return out
}

func TestProject_TooFewReadings(t *testing.T) {
	if got := Project(nil, DefaultChartWidth, DefaultChartHeight); len(got) != 0 {
		t.Fatalf("Project(nil) = %v, want empty", got)
	}
	if got := Project(numeric(10), DefaultChartWidth, DefaultChartHeight); len(got) != 0 {
		t.Fatalf("Project([10]) = %v, want empty", got)
	}
}

func TestProject_TwoReadingsMakeOneSegment(t *testing.T) {
	got := Project(numeric(10, 20), DefaultChartWidth, DefaultChartHeight)
	if len(got) != 1 {
		t.Fatalf("len(Project([10 20])) = %d, want 1", len(got))
	}
	want := Segment{
		From:     Point{X: 0, Y: 333},
		To:       Point{X: 400, Y: 266},
		Severity: glucose.Bad,
	}
	if got[0] != want {
		t.Fatalf("segment = %+v, want %+v", got[0], want)
	}
}

func TestYCoordinate(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{0, 400},
		{30, 200},
		{15, 300},
		{16, 293},
		{99, -260},
	}
	for _, tt := range tests {
		if got := YCoordinate(tt.value, DefaultChartHeight); got != tt.want {
			t.Errorf("YCoordinate(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestProject_SpacingUsesIntegerDivision(t *testing.T) {
	got := Project(numeric(1, 2, 3, 4, 5, 6, 7), DefaultChartWidth, DefaultChartHeight)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	// 7 * (800/7) = 798, 798/7 = 114
	for i, s := range got {
		if s.From.X != i*114 || s.To.X != (i+1)*114 {
			t.Fatalf("segment %d x = %d..%d, want %d..%d", i, s.From.X, s.To.X, i*114, (i+1)*114)
		}
	}
}

func TestProject_ColorsByDestination(t *testing.T) {
	readings := []glucose.Reading{
		glucose.Numeric(8),
		glucose.Numeric(20),
		glucose.Numeric(14),
		glucose.Missing,
		glucose.Numeric(6),
	}
	got := Project(readings, DefaultChartWidth, DefaultChartHeight)
	want := []glucose.Severity{glucose.Bad, glucose.Warning, glucose.NoReading, glucose.Good}
	for i, s := range got {
		if s.Severity != want[i] {
			t.Fatalf("segment %d severity = %v, want %v", i, s.Severity, want[i])
		}
	}
	if got[2].To.Y != Baseline {
		t.Fatalf("missing reading should plot at the baseline, got y=%d", got[2].To.Y)
	}
}

func TestProject_IsPure(t *testing.T) {
	readings := numeric(10, 16, 3, 8)
	before := glucose.FormatList(readings)

	a := Project(readings, DefaultChartWidth, DefaultChartHeight)
	b := Project(readings, DefaultChartWidth, DefaultChartHeight)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Project not idempotent: %v vs %v", a, b)
	}
	if after := glucose.FormatList(readings); after != before {
		t.Fatalf("Project mutated input: %s -> %s", before, after)
	}
}

func TestCanvas_DrawsAndClips(t *testing.T) {
	c := NewCanvas(20, 5, ChartBand)
	c.Draw(Project(numeric(10, 99, 5), DefaultChartWidth, DefaultChartHeight))

	plain := func(glucose.Severity) lipgloss.Style { return lipgloss.NewStyle() }
	out := c.Render(plain)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d rows, want 5", len(lines))
	}
	dots := 0
	for _, line := range lines {
		if n := len([]rune(line)); n != 20 {
			t.Fatalf("row %q has %d cells, want 20", line, n)
		}
		for _, r := range line {
			if r >= brailleBase && r <= brailleBase+0xff {
				dots++
			}
		}
	}
	if dots == 0 {
		t.Fatal("expected the canvas to contain plotted cells")
	}
}

func TestCanvas_EmptyRendersBlank(t *testing.T) {
	c := NewCanvas(4, 2, Rect{})
	out := c.Render(func(glucose.Severity) lipgloss.Style { return lipgloss.NewStyle() })
	if out != "    \n    " {
		t.Fatalf("empty canvas = %q, want blank rows", out)
	}
}
