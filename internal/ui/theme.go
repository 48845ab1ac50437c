package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bgcheck/internal/glucose"
)

// Theme defines colors for the gauge.
type Theme struct {
	Name string

	// Chrome
	Background string
	Surface    string
	Text       string
	Muted      string
	Faint      string
	Accent     string

	// Severity bands, used for the headline and chart lines
	Good      string
	Warning   string
	Bad       string
	NoReading string // headline text while there is no reading

	// MissingLine colors chart segments that end on a missing reading.
	MissingLine string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AlertBadge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Bad)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		headline: map[glucose.Severity]string{
			glucose.Good:      t.Good,
			glucose.Warning:   t.Warning,
			glucose.Bad:       t.Bad,
			glucose.NoReading: t.NoReading,
		},
		line: map[glucose.Severity]string{
			glucose.Good:      t.Good,
			glucose.Warning:   t.Warning,
			glucose.Bad:       t.Bad,
			glucose.NoReading: t.MissingLine,
		},
		text: t.Text,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Header     lipgloss.Style
	Logo       lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AlertBadge lipgloss.Style

	headline map[glucose.Severity]string
	line     map[glucose.Severity]string
	text     string
}

// Headline returns the bold style for the current reading.
func (s Styles) Headline(sev glucose.Severity) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorOr(s.headline[sev], s.text))).
		Bold(true)
}

// Line returns the style for chart cells drawn by a segment of sev.
func (s Styles) Line(sev glucose.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorOr(s.line[sev], s.text)))
}

func colorOr(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}

// Theme definitions

var themes = map[string]Theme{
	"Classic":  classicTheme(),
	"Nightfox": nightfoxTheme(),
}

var themeOrder = []string{"Classic", "Nightfox"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return classicTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func classicTheme() Theme {
	// Pure RGB bands on black, the traditional gauge look.
	return Theme{
		Name: "Classic",

		Background: "#000000",
		Surface:    "#1c1c1c",
		Text:       "#ffffff",
		Muted:      "#a0a0a0",
		Faint:      "#505050",
		Accent:     "#00ffff",

		Good:      "#00ff00",
		Warning:   "#ffff00",
		Bad:       "#ff0000",
		NoReading: "#505050",

		MissingLine: "#0000ff",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Faint:      "#71839b", // fg3
		Accent:     "#719cd6", // blue

		Good:      "#81b29a", // green
		Warning:   "#dbc074", // yellow
		Bad:       "#c94f6d", // red
		NoReading: "#738091", // comment

		MissingLine: "#719cd6", // blue
	}
}
