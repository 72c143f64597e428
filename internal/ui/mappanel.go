package ui

import (
	"strings"

	"github.com/rvail/orrery/internal/render"
)

// renderMapPanel rasterizes the orbit map into the panel's inner area.
// The engine owns all geometry; this only sizes the canvas and frames it.
func (m Model) renderMapPanel(width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2

	grid := render.Compose(m.snapshot, innerWidth, innerHeight)
	content := strings.Join(grid.Lines(), "\n")

	return m.renderTitledBox("Orbits + positions", content, width, height)
}
