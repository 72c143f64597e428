// Package ui provides the Bubble Tea terminal interface for orrery.
//
// The root Model polls the shared store on a short tick and re-renders a
// three-part layout: a one-line status header, a horizontal split of the
// heliocentric-vectors table and the orbit map panel, and a help line.
// All view mutations (zoom, focus, marker set) are forwarded to the store;
// the Model itself only caches the latest snapshot and theme.
//
// Rendering of the map panel is delegated to internal/render; this package
// never draws geometry itself.
package ui
