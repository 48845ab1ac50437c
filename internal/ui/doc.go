// Package ui renders the glucose gauge as a Bubble Tea program.
//
// # Frame Loop
//
// The model ticks once per DefaultFrameTick. Every frame runs three phases in
// order on the Bubble Tea update goroutine:
//
//  1. Key handling: esc, q or ctrl+c quit
//  2. State update: Session.Elapse then Session.Tick, which fetches a reading
//     when the interval has passed (the fetch blocks the frame)
//  3. Render: View draws the current monitor.Frame
//
// The first frame fires immediately from Init so the startup fetch does not
// wait a full second. A fatal Tick error (bad credentials) is stored on the
// model and returned from Run.
//
// # Layout
//
//	bgcheck  dexcom ous  updated 08:05:00
//
//	Glucose Level: 6.2 mmol/L →
//	Update in: 287s
//
//	⠀⠀⠀⠀⢀⡠⠤⠒⠒⠒⠢⠤⣀⠀⠀⠀   braille chart, colored per segment
//	────────────────
//
//	Readings: [5.8, 6, 6.2]
//
//	? Toggle help • q/esc Quit
//
// # Key Bindings
//
//   - q, esc, ctrl+c: Quit
//   - ?: Toggle full help
//   - c: Toggle chart
//   - l: Toggle the log pane (tail of the bgcheck log file)
//   - T: Cycle theme
//
// Theme and chart visibility are saved with the prefs package.
package ui
