package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bgcheck/internal/chart"
	"github.com/five82/bgcheck/internal/glucose"
	"github.com/five82/bgcheck/internal/monitor"
)

// renderMain draws one frame of the gauge.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	sections := []string{
		m.renderHeader(styles),
		"",
		m.renderHeadline(styles),
		styles.Text.Render(fmt.Sprintf("Update in: %ds", m.frame.Countdown)),
	}
	if alert := m.renderAlert(styles); alert != "" {
		sections = append(sections, alert)
	}
	if !m.hideChart {
		sections = append(sections, "", m.renderChart(styles))
	}
	sections = append(sections,
		"",
		styles.MutedText.Render("Readings: "+glucose.FormatList(m.frame.Readings)),
	)
	if m.showLogs {
		sections = append(sections, "", m.renderLogs(styles))
	}
	sections = append(sections, "", m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

// renderLogs shows the newest log records, one terminal line each.
func (m Model) renderLogs(styles Styles) string {
	if len(m.logLines) == 0 {
		return styles.FaintText.Render("(log is empty)")
	}
	line := styles.FaintText.MaxWidth(m.width)
	out := make([]string, len(m.logLines))
	for i, l := range m.logLines {
		out[i] = line.Render(l)
	}
	return strings.Join(out, "\n")
}

// renderHeader renders the status bar: name, source and last update.
func (m Model) renderHeader(styles Styles) string {
	parts := []string{styles.Logo.Render("bgcheck")}
	if m.label != "" {
		parts = append(parts, m.label)
	}
	switch {
	case !m.frame.Started:
		parts = append(parts, "starting")
	case !m.frame.LastUpdate.IsZero():
		parts = append(parts, "updated "+m.frame.LastUpdate.Format("15:04:05"))
	}
	if m.frame.LastError != nil {
		parts = append(parts, "last fetch failed: "+m.frame.LastError.Error())
	}

	line := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(line)
}

// renderHeadline shows the latest reading in its severity color.
func (m Model) renderHeadline(styles Styles) string {
	text := fmt.Sprintf("Glucose Level: %s mmol/L", m.frame.Reading)
	if arrow := glucose.TrendArrow(m.frame.Reading.Trend); arrow != "" && !m.frame.Reading.IsMissing() {
		text += " " + arrow
	}
	return styles.Headline(m.frame.Severity).Render(text)
}

// renderAlert explains an active alert.
func (m Model) renderAlert(styles Styles) string {
	if m.frame.Phase != monitor.PhaseAlerting {
		return ""
	}
	msg := "Glucose out of range"
	if m.frame.Reading.IsMissing() {
		msg = fmt.Sprintf("No reading for %d updates", m.frame.ConsecutiveMissing)
	}
	return styles.AlertBadge.Render(msg)
}

// renderChart rasterizes the projected history.
func (m Model) renderChart(styles Styles) string {
	cols := chartCols(m.width)
	canvas := chart.NewCanvas(cols, ChartRows, chart.ChartBand)
	canvas.Draw(m.frame.Segments)

	rule := styles.FaintText.Render(strings.Repeat("─", cols))
	return lipgloss.JoinVertical(lipgloss.Left,
		canvas.Render(styles.Line),
		rule,
	)
}

func chartCols(width int) int {
	cols := width - 2
	if cols < ChartMinCols {
		return ChartMinCols
	}
	if cols > ChartMaxCols {
		return ChartMaxCols
	}
	return cols
}
