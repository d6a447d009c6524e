// Package details implements the "Learn More" screen listing every
// intervention in the catalog.
package details

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/screen"
	"github.com/abhisek/wellquiz/internal/ui/components"
	"github.com/abhisek/wellquiz/internal/ui/layout"
	"github.com/abhisek/wellquiz/internal/ui/theme"
)

// DetailsScreen shows dosage, timing and benefits for each intervention.
type DetailsScreen struct {
	interventions []catalog.Intervention
	vp            viewport.Model
	width         int
}

var _ screen.Screen = (*DetailsScreen)(nil)
var _ screen.KeyHintProvider = (*DetailsScreen)(nil)

// New creates a DetailsScreen for the given interventions.
func New(interventions []catalog.Intervention) *DetailsScreen {
	return &DetailsScreen{
		interventions: interventions,
		vp:            viewport.New(),
	}
}

func (d *DetailsScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailsScreen) Title() string {
	return "Learn More"
}

func (d *DetailsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DetailsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

func (d *DetailsScreen) View(width, height int) string {
	if width != d.width {
		d.width = width
		d.vp.SetContent(d.render(components.ContentWidth(width)))
	}
	d.vp.SetWidth(width)
	d.vp.SetHeight(height)
	return d.vp.View()
}

func (d *DetailsScreen) render(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(d.width, lipgloss.Center,
		theme.Title.Render("About the recommendations")))
	b.WriteString("\n\n")

	for _, iv := range d.interventions {
		b.WriteString(lipgloss.PlaceHorizontal(d.width, lipgloss.Center, entry(iv, cw)))
		b.WriteString("\n")
	}
	return b.String()
}

// entry renders one intervention card.
func entry(iv catalog.Intervention, cw int) string {
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(strings.TrimSpace(iv.Emoji + " " + iv.Name))
	lines := []string{name}

	if usage := Usage(iv); usage != "" {
		lines = append(lines, theme.Hint.Render(usage))
	}
	for _, benefit := range iv.Benefits {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render("• ")+
			theme.Body.Render(benefit))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// Usage formats dosage and timing as "dosage • timing", skipping empty parts.
func Usage(iv catalog.Intervention) string {
	var parts []string
	if iv.Dosage != "" {
		parts = append(parts, iv.Dosage)
	}
	if iv.Timing != "" {
		parts = append(parts, iv.Timing)
	}
	return strings.Join(parts, " • ")
}
