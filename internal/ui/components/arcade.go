package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every card on a screen so
// that stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 24), 76)
}

// CabinetFrame draws a double border filling width x height and centers
// content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders a bordered button, filled when selected. It grows past
// width when the label would otherwise wrap.
func Button(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		label = "▸ " + label
		style = style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Gold).
			BorderForeground(theme.Gold)
	} else {
		style = style.Foreground(theme.Text).
			BorderForeground(theme.Border)
	}
	// border (2) + padding (2)
	return style.Width(max(width, lipgloss.Width(label)+4)).Render(label)
}
