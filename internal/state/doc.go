// Package state provides thread-safe view-state management for orrery.
//
// # Overview
//
// The Store is the single coordination point between the three actors in
// the program: the background ephemeris updater (writes positions, status,
// and the update timestamp), the input handler (writes zoom, focus, and
// marker-set choices), and the render loop (reads everything). The renderer
// never sees the lock; it consumes an immutable Snapshot copied out under
// a read lock once per frame.
//
// # Architecture
//
//	Producer (updater):            Producer (input):        Consumer (UI):
//	┌──────────────────┐          ┌───────────────┐        ┌──────────────┐
//	│ FetchVector ×8   │          │ AdjustZoom()  │        │              │
//	│      ↓           │          │ StepFocus()   │        │ Snapshot()   │
//	│ ApplyUpdate()    │─────────→│ ResetView()   │───────→│      ↓       │
//	│      ↓           │ (mutex)  │ ToggleSymbols │ (mutex)│ render frame │
//	│  repeat...       │          └───────────────┘        └──────────────┘
//	└──────────────────┘
//
// # Update Semantics
//
// ApplyUpdate merges rather than replaces: a body missing from the cycle's
// results keeps its previous position. Stale-but-present beats absent, so
// a single failed fetch never blanks a planet off the map. The status
// string always reflects the most recent cycle, success or failure.
//
// The Sun is special-cased throughout: it is pinned to the heliocentric
// origin, never fetched, and never stored in the position table.
//
// # Concurrency Model
//
// A readers-writer lock guards the snapshot. Mutators take the write lock
// for a few field assignments; Snapshot takes the read lock for a struct
// copy plus a clone of the position map. No lock is ever held across
// network I/O or rendering.
package state
