// Package app is the composition root for bgcheck.
//
// Run wires the pieces together and blocks in the terminal UI:
//
//  1. Load config.toml (config.Load) and apply test mode (10s interval)
//  2. Open the log file (logging.NewOrNop); a bad path only disables logging
//  3. Pick the reading source: source.Simulated in test mode, otherwise a
//     dexcom.Client built from ACCOUNT and PASSWORD (seeded from .env)
//  4. Start the optional Prometheus listener on metrics_addr
//  5. Build the alert player (terminal bell, plus sound_player when set)
//  6. Create the monitor.Session and hand it to ui.Run
//  7. Print "Closing program" and the final readings to stdout
//
// # Error Handling
//
// Fatal errors (returned from Run, exit code 1):
//   - Invalid or unreadable config file
//   - Unreadable .env file (a missing one is fine)
//   - Unknown Dexcom region
//   - Metrics address that cannot be bound
//   - Credentials rejected by the service on any fetch
//   - Terminal UI failure
//
// Recoverable errors (logged, recorded as a missing reading):
//   - Network failures and HTTP errors while fetching a reading
package app
