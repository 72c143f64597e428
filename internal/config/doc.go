// Package config handles loading and parsing orrery's configuration file.
//
// # Overview
//
// Configuration lives in ~/.config/orrery/config.toml. Every field is
// optional; a missing file is not an error, so orrery works out of the box
// against the public JPL Horizons endpoint.
//
// # TOML Format
//
//	horizons_url = "https://ssd.jpl.nasa.gov/api/horizons.api"
//	refresh_seconds = 5
//	body_delay_ms = 120
//	symbols = false
//
// refresh_seconds is the sleep between full refresh cycles; body_delay_ms
// is the courtesy pause between per-planet requests inside a cycle;
// symbols selects the astronomical-symbol marker set by default (the
// -unicode flag and the in-app toggle override it).
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. os.ErrNotExist triggers defaults instead. Zero or
// negative intervals fall back to defaults rather than erroring.
package config
