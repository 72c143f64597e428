package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// renderHeader renders the one-line status bar: last update, fetch status,
// zoom, and the current focus orbit.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	last := "—"
	if !m.snapshot.LastUpdated.IsZero() {
		last = m.snapshot.LastUpdated.Format("15:04:05") + " UTC"
	}

	status := m.snapshot.Status
	statusStyle := styles.SuccessText
	if status != "OK" {
		statusStyle = styles.WarningText
	}

	focus := m.snapshot.FocusLevel()

	parts := []string{
		styles.Logo.Render("orrery"),
		styles.MutedText.Render("updated ") + styles.Text.Render(last),
		statusStyle.Render(truncate.StringWithTail(status, 48, "…")),
		styles.MutedText.Render("zoom ") + styles.Text.Render(fmt.Sprintf("%.2fx", m.snapshot.Zoom)),
		styles.MutedText.Render("focus ") + styles.AccentText.Render(fmt.Sprintf("%s (%.2f AU)", focus.Name, focus.RadiusAU)),
	}

	line := strings.Join(parts, styles.FaintText.Render("  │  "))
	return styles.Header.Width(m.width).Render(line)
}
