// Package monitor implements the polling loop of the gauge.
//
// A Session owns everything that changes while bgcheck runs: the reading
// history, the consecutive-missing counter that drives dropped-reading
// alerts, the visible countdown and the reading source. The render loop
// drives it from a single goroutine:
//
//	every frame:
//		session.Elapse()                    // countdown, one per frame
//		update, err := session.Tick(ctx, now) // fetch when the interval has passed
//		frame := session.Frame()            // what to draw
//
// Fetch timing is wall-clock based (now minus the last update) while the
// countdown is frame based, so the two may drift apart; the countdown can go
// negative during a slow fetch.
//
// Alerts fire through the alert.Player on every qualifying tick:
//   - a numeric reading classified Bad
//   - the consecutive-missing count reaching the dropped threshold
//
// Non-credential fetch errors are logged, counted and recorded as a Missing
// reading. source.ErrCredentials is returned to the caller and ends the
// session.
package monitor
