package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/ui/theme"
)

// lowFraction is where the countdown bar turns to the warning color.
const lowFraction = 1.0 / 3

// Countdown displays remaining seconds as a shrinking bar.
type Countdown struct {
	Remaining int
	Total     int
	Width     int
}

// NewCountdown creates a countdown bar.
func NewCountdown(remaining, total, width int) Countdown {
	return Countdown{Remaining: remaining, Total: total, Width: width}
}

// fraction returns the share of time left, clamped to [0, 1].
func (c Countdown) fraction() float64 {
	if c.Total <= 0 {
		return 0
	}
	return min(max(float64(c.Remaining)/float64(c.Total), 0), 1)
}

// View renders the bar followed by the seconds left.
func (c Countdown) View() string {
	label := fmt.Sprintf("  %2ds", max(c.Remaining, 0))
	barWidth := max(c.Width-lipgloss.Width(label), 4)

	frac := c.fraction()
	filled := int(float64(barWidth) * frac)
	if frac > 0 && filled == 0 {
		filled = 1
	}

	fill := theme.ProgressFilled
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if frac <= lowFraction {
		fill = theme.ProgressLow
		labelStyle = theme.Warning
	}

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		labelStyle.Render(label)
}
