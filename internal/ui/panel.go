package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Content is padded or cut to fill the box
// exactly, so horizontal joins stay aligned.
func (m Model) renderTitledBox(title, content string, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleText := " " + title + " "
	if len(titleText) > innerWidth {
		titleText = titleText[:innerWidth]
	}
	leftPad := (innerWidth - len(titleText)) / 2
	rightPad := innerWidth - len(titleText) - leftPad

	topBorder := borderStyle.Render("┌"+strings.Repeat("─", leftPad)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightPad)+"┐")

	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", innerWidth) + "┘")

	padStyle := lipgloss.NewStyle().Width(innerWidth)
	side := borderStyle.Render("│")

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	rows := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			// Cut, never wrap: a wrapped row would shift the side borders.
			line = truncate.String(contentLines[i], uint(innerWidth))
		}
		rows = append(rows, side+padStyle.Render(line)+side)
	}

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + bottomBorder
}
