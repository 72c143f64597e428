package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines serializes the grid into one styled string per row: a colored span
// per occupied cell, a plain blank otherwise. Pure transform; the grid is
// not modified.
func (g *Grid) Lines() []string {
	styles := make(map[string]lipgloss.Style)
	styleFor := func(color string) lipgloss.Style {
		s, ok := styles[color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = s
		}
		return s
	}

	lines := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			p, ok := g.At(x, y)
			if !ok {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(styleFor(p.Color).Render(string(p.Glyph)))
		}
		lines[y] = b.String()
	}
	return lines
}
