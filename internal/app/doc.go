// Package app provides the orchestration layer for orrery.
//
// # Overview
//
// This package wires configuration, the Horizons client, the shared state
// store, the background ephemeris updater, and the UI into the complete
// application. It is the composition root; domain behavior lives in the
// packages it connects.
//
// # Architecture
//
//  1. Load configuration from ~/.config/orrery/config.toml
//  2. Load user preferences (theme, marker set)
//  3. Initialize the Horizons HTTP client
//  4. Create the shared state.Store seeded with view defaults
//  5. Launch the background updater goroutine
//  6. Start the TUI and block until quit or context cancellation
//
// # Refresh Behavior
//
// The updater runs one full pass over the eight planets per cycle, each
// body fetched sequentially with a fixed inter-request delay so the public
// Horizons service is not hammered, then sleeps the cycle interval. A
// failed fetch for one body updates only the shared status string; the
// body keeps its last known position and every other body is unaffected.
// There is no backoff schedule: the next cycle is the retry.
//
// The render loop never waits on the updater. The two sides meet only at
// the store's mutex, held for snapshot copies, so a slow or hung remote
// call can stall the refresh cycle but never the display.
//
// # Error Handling
//
// Fatal errors returned from Run: unreadable configuration, a malformed
// Horizons base URL, terminal setup failure inside the UI layer. Every
// ephemeris failure is recoverable and logged.
package app
