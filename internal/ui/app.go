package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvail/orrery/internal/prefs"
	"github.com/rvail/orrery/internal/state"
)

// zoomStep is the multiplicative zoom change per keypress.
const zoomStep = 1.25

const defaultPollTick = 500 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	prefsPath string
	pollTick  time.Duration

	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. View mutations go through the store
// so the updater and the renderer observe a single source of truth.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.store.AdjustZoom(zoomStep)

	case key.Matches(msg, m.keys.ZoomOut):
		m.store.AdjustZoom(1 / zoomStep)

	case key.Matches(msg, m.keys.Reset):
		m.store.ResetView()

	case key.Matches(msg, m.keys.FocusIn):
		m.store.StepFocus(-1)

	case key.Matches(msg, m.keys.FocusOut):
		m.store.StepFocus(1)

	case key.Matches(msg, m.keys.Markers):
		m.store.ToggleSymbols()
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	default:
		return m, nil
	}

	// Reflect the mutation immediately instead of waiting for the tick.
	return m, fetchSnapshotCmd(m.store)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" || m.store == nil {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:   m.theme.Name,
		Symbols: m.store.Snapshot().Symbols,
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	helpLine := m.help.View(m.keys)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(helpLine)
	if contentHeight < 3 {
		contentHeight = 3
	}

	tableWidth := m.width * 40 / 100
	mapWidth := m.width - tableWidth

	table := m.renderVectorPanel(tableWidth, contentHeight)
	orbits := m.renderMapPanel(mapWidth, contentHeight)

	return header + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, table, orbits) + "\n" +
		helpLine
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if m.ctx.Err() != nil {
		// Cancellation is a normal shutdown, not a failure.
		return nil
	}
	return err
}
