package ui

import (
	"testing"

	"github.com/five82/bgcheck/internal/glucose"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "Classic" || names[1] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v, want [Classic Nightfox]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Classic"); got != "Nightfox" {
		t.Fatalf("NextTheme(Classic) = %q, want Nightfox", got)
	}
	if got := NextTheme("Nightfox"); got != "Classic" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Classic", got)
	}
	if got := NextTheme("Unknown"); got != "Classic" {
		t.Fatalf("NextTheme(Unknown) = %q, want Classic", got)
	}
}

func TestGetTheme_FallsBackToClassic(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Classic" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Classic", got)
	}
}

func TestClassicSeverityColors(t *testing.T) {
	th := GetTheme("Classic")
	styles := th.Styles()

	tests := []struct {
		sev      glucose.Severity
		headline string
		line     string
	}{
		{glucose.Good, "#00ff00", "#00ff00"},
		{glucose.Warning, "#ffff00", "#ffff00"},
		{glucose.Bad, "#ff0000", "#ff0000"},
		{glucose.NoReading, "#505050", "#0000ff"},
	}
	for _, tt := range tests {
		if got := styles.headline[tt.sev]; got != tt.headline {
			t.Errorf("headline color for %s = %q, want %q", tt.sev, got, tt.headline)
		}
		if got := styles.line[tt.sev]; got != tt.line {
			t.Errorf("line color for %s = %q, want %q", tt.sev, got, tt.line)
		}
	}
}

func TestColorOr(t *testing.T) {
	if got := colorOr("", "#fff"); got != "#fff" {
		t.Fatalf("colorOr empty = %q, want fallback", got)
	}
	if got := colorOr("#000", "#fff"); got != "#000" {
		t.Fatalf("colorOr = %q, want #000", got)
	}
}
