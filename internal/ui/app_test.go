package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvail/orrery/internal/body"
	"github.com/rvail/orrery/internal/horizons"
	"github.com/rvail/orrery/internal/state"
)

func newTestModel(t *testing.T, store *state.Store) Model {
	t.Helper()
	m := New(Options{
		Store:     store,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_ZoomAndFocusKeysMutateStore(t *testing.T) {
	store := state.NewStore(false)
	m := newTestModel(t, store)

	m.Update(keyRune('+'))
	if z := store.Snapshot().Zoom; z != state.DefaultZoom*zoomStep {
		t.Fatalf("Zoom = %v after '+', want %v", z, state.DefaultZoom*zoomStep)
	}

	m.Update(keyRune('-'))
	if z := store.Snapshot().Zoom; z != state.DefaultZoom {
		t.Fatalf("Zoom = %v after '+-', want back to default", z)
	}

	m.Update(keyRune('['))
	if f := store.Snapshot().FocusIndex; f != body.DefaultFocus()-1 {
		t.Fatalf("FocusIndex = %d after '[', want %d", f, body.DefaultFocus()-1)
	}

	m.Update(keyRune(']'))
	m.Update(keyRune(']'))
	if f := store.Snapshot().FocusIndex; f != body.DefaultFocus() {
		t.Fatalf("FocusIndex = %d, want clamped at %d", f, body.DefaultFocus())
	}

	m.Update(keyRune('+'))
	m.Update(keyRune('0'))
	snap := store.Snapshot()
	if snap.Zoom != state.DefaultZoom || snap.FocusIndex != body.DefaultFocus() {
		t.Fatalf("reset left zoom=%v focus=%d", snap.Zoom, snap.FocusIndex)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	store := state.NewStore(false)
	m := newTestModel(t, store)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("'q' should produce a command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("'q' command returned nil msg, want tea.Quit")
	} else if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("'q' produced %T, want tea.QuitMsg", msg)
	}
}

func TestUpdate_MarkerToggleReachesStore(t *testing.T) {
	store := state.NewStore(false)
	m := newTestModel(t, store)

	m.Update(keyRune('u'))
	if !store.Snapshot().Symbols {
		t.Fatal("'u' should enable the symbol marker set")
	}
}

func TestUpdate_ThemeCycle(t *testing.T) {
	store := state.NewStore(false)
	m := newTestModel(t, store)

	before := m.theme.Name
	updated, _ := m.Update(keyRune('T'))
	after := updated.(Model).theme.Name
	if after == before {
		t.Fatalf("theme did not change from %q", before)
	}
}

func TestView_ShowsUnknownBodiesAsDashes(t *testing.T) {
	store := state.NewStore(false)
	m := newTestModel(t, store)

	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	view := updated.(Model).View()

	if !strings.Contains(view, "Neptune") {
		t.Fatal("view should list Neptune in the readout")
	}
	if !strings.Contains(view, "—") {
		t.Fatal("unknown positions should read as —")
	}
	if !strings.Contains(view, "Orbits + positions") {
		t.Fatal("map panel title missing")
	}
}

func TestView_ShowsKnownPositionAndStatus(t *testing.T) {
	store := state.NewStore(false)
	store.ApplyUpdate(map[body.Body]horizons.Vector3{
		body.Mars: {X: 1.5, Y: 0.25, Z: 0.01},
	}, "Fetch error (Venus): timeout", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	m := newTestModel(t, store)
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	view := updated.(Model).View()

	if !strings.Contains(view, "+1.500000") {
		t.Fatal("Mars X coordinate missing from readout")
	}
	if !strings.Contains(view, "Fetch error (Venus)") {
		t.Fatal("status string missing from header")
	}
	if !strings.Contains(view, "12:00:00") {
		t.Fatal("update timestamp missing from header")
	}
}

func TestView_NotReadyBeforeWindowSize(t *testing.T) {
	m := New(Options{Store: state.NewStore(false)})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before sizing = %q", got)
	}
}

func TestInit_SchedulesTickAndSnapshot(t *testing.T) {
	m := New(Options{Store: state.NewStore(false)})
	if m.Init() == nil {
		t.Fatal("Init should schedule commands")
	}
}
