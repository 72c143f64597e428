package state

import (
	"sync"
	"time"

	"github.com/rvail/orrery/internal/body"
	"github.com/rvail/orrery/internal/horizons"
)

// Zoom is multiplicative and clamped so one keypress can never scale the
// view into uselessness.
const (
	MinZoom     = 0.2
	MaxZoom     = 50.0
	DefaultZoom = 1.0
)

// Snapshot is the immutable view of shared state the renderer consumes once
// per frame.
type Snapshot struct {
	Positions   map[body.Body]horizons.Vector3
	Zoom        float64
	FocusIndex  int
	Symbols     bool // astronomical symbols instead of ASCII markers
	LastUpdated time.Time
	Status      string
}

// Position returns the last known heliocentric position for b. The Sun is
// pinned to the origin and always known.
func (s Snapshot) Position(b body.Body) (horizons.Vector3, bool) {
	if b == body.Sun {
		return horizons.Vector3{}, true
	}
	v, ok := s.Positions[b]
	return v, ok
}

// FocusLevel resolves the snapshot's focus index to its fit-to-orbit level.
func (s Snapshot) FocusLevel() body.FocusLevel {
	return body.FocusLevelAt(s.FocusIndex)
}

// Store coordinates the ephemeris updater and the render loop. The lock is
// held only while copying state, never across I/O or rendering.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a Store with startup defaults: no known positions, unit
// zoom, the outermost focus level.
func NewStore(symbols bool) *Store {
	return &Store{
		snapshot: Snapshot{
			Zoom:       DefaultZoom,
			FocusIndex: body.DefaultFocus(),
			Symbols:    symbols,
			Status:     "Starting…",
		},
	}
}

// Snapshot returns a copy of the current state, with the position table
// cloned so callers cannot mutate shared data.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Positions = clonePositions(s.snapshot.Positions)
	return snap
}

// ApplyUpdate merges one refresh cycle's results. Bodies absent from
// positions keep their previous vector: a failed fetch must not erase a
// known position. The Sun is never stored; it is implicitly at the origin.
func (s *Store) ApplyUpdate(positions map[body.Body]horizons.Vector3, status string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Positions == nil {
		s.snapshot.Positions = make(map[body.Body]horizons.Vector3, len(positions))
	}
	for b, v := range positions {
		if b == body.Sun {
			continue
		}
		s.snapshot.Positions[b] = v
	}
	s.snapshot.Status = status
	s.snapshot.LastUpdated = at
}

// AdjustZoom multiplies the zoom factor and clamps it to the allowed range.
func (s *Store) AdjustZoom(factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Zoom = clampZoom(s.snapshot.Zoom * factor)
}

// StepFocus moves the focus level by delta, clamped to the valid range.
func (s *Store) StepFocus(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.FocusIndex = body.ClampFocus(s.snapshot.FocusIndex + delta)
}

// ResetView restores default zoom and focus.
func (s *Store) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Zoom = DefaultZoom
	s.snapshot.FocusIndex = body.DefaultFocus()
}

// ToggleSymbols flips between the two marker sets.
func (s *Store) ToggleSymbols() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Symbols = !s.snapshot.Symbols
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

func clonePositions(src map[body.Body]horizons.Vector3) map[body.Body]horizons.Vector3 {
	if len(src) == 0 {
		return nil
	}
	dup := make(map[body.Body]horizons.Vector3, len(src))
	for b, v := range src {
		dup[b] = v
	}
	return dup
}
