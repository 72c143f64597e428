package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvail/orrery/internal/body"
)

// renderVectorPanel renders the heliocentric-vectors readout: one row per
// catalog body, position columns in AU, "—" while a body is still unknown.
func (m Model) renderVectorPanel(width, height int) string {
	styles := m.theme.Styles()

	header := fmt.Sprintf("%-2s %-8s %13s %13s %13s %11s", "", "Body", "X", "Y", "Z", "R")
	lines := []string{styles.MutedText.Render(header)}

	for _, b := range body.All() {
		meta := b.Meta()
		icon := lipgloss.NewStyle().
			Foreground(lipgloss.Color(meta.Color)).
			Render(string(meta.Icon(m.snapshot.Symbols)))

		x, y, z, r := "—", "—", "—", "—"
		if v, ok := m.snapshot.Position(b); ok {
			x = fmt.Sprintf("%+.6f", v.X)
			y = fmt.Sprintf("%+.6f", v.Y)
			z = fmt.Sprintf("%+.6f", v.Z)
			r = fmt.Sprintf("%.6f", v.Radius())
		}

		row := icon + " " + styles.Text.Render(fmt.Sprintf("%-8s", meta.Name)) + " " +
			styles.Text.Render(fmt.Sprintf("%13s %13s %13s %11s", x, y, z, r))
		lines = append(lines, row)
	}

	return m.renderTitledBox("Heliocentric vectors (AU)", strings.Join(lines, "\n"), width, height)
}
