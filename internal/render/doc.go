// Package render is the projection and rasterization engine behind the map
// panel: it turns a view-state snapshot and a panel size into a character
// grid of orbit rings and body markers.
//
// Each frame is stateless. Compose allocates a fresh Grid, projects AU
// positions through a Transform fitted to the current focus orbit, samples
// rings as dotted circles, and places markers; every write funnels through
// Grid.Put, whose priority rule is the single source of truth for overlap
// resolution. Lines then serializes the finished grid into styled rows.
//
// The package holds no locks and performs no I/O; it only reads the
// snapshot it is handed.
package render
