package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
	"github.com/abhisek/wellquiz/internal/screens/details"
	"github.com/abhisek/wellquiz/internal/ui/components"
	"github.com/abhisek/wellquiz/internal/ui/layout"
	"github.com/abhisek/wellquiz/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.engine.Phase() {
	case quiz.PhasePlaying:
		body = s.viewPlaying(cw, height, layout.IsCompactWidth(width))
	case quiz.PhaseFinished:
		body = s.viewResults(cw)
	default:
		body = s.viewIntro(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *PlayScreen) viewIntro(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Energy & Wellness Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(
		"Find your perfect mix of supplements and activities"))
	b.WriteString("\n\n")

	// Two-column list of everything the quiz can recommend.
	ivs := s.engine.Interventions()
	colWidth := (cw - 8) / 2
	var rows []string
	for i := 0; i < len(ivs); i += 2 {
		left := lipgloss.NewStyle().Width(colWidth).Render(label(ivs[i]))
		right := ""
		if i+1 < len(ivs) {
			right = lipgloss.NewStyle().Width(colWidth).Render(label(ivs[i+1]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	list := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Includes recommendations for:") + "\n\n" +
		lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(rows, "\n"))
	b.WriteString(components.Card(list, cw))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"Pick the symptom that bothers you more. You have %d seconds.",
		s.engine.Duration())))
	b.WriteString("\n\n")
	b.WriteString(s.introMenu.View())
	return b.String()
}

func (s *PlayScreen) viewPlaying(cw, height int, compact bool) string {
	var b strings.Builder
	b.WriteString(components.NewCountdown(
		s.engine.RemainingSeconds(), s.engine.Duration(), cw).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d", s.engine.ShownCount(), s.engine.PromptCount())))
	b.WriteString("\n\n")

	if s.showingQuitConfirm {
		b.WriteString(components.Card(
			theme.Warning.Render("End the quiz now?")+"\n\n"+
				theme.Hint.Render("y to see your results, n to keep going"), cw))
		return b.String()
	}

	b.WriteString(s.pair.View(cw))
	b.WriteString("\n\n")

	// Header rows above: countdown, counter, pair cards and the ranking title.
	room := max(height-14, 1)
	b.WriteString(theme.Title.Width(cw).Render("Top Recommendations"))
	b.WriteString("\n\n")
	for i, st := range s.engine.Top(room) {
		b.WriteString(s.rankingRow(i, st, cw, compact))
		b.WriteString("\n")
	}
	return b.String()
}

// rankingRow renders one live standing. Compact rows drop the usage hint.
func (s *PlayScreen) rankingRow(i int, st quiz.Standing, cw int, compact bool) string {
	rank := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Width(4).
		Render(fmt.Sprintf("#%d", i+1))
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label(st.Intervention))
	score := lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%d", st.Score))

	badge := ""
	if s.engine.Gained(st.Name()) {
		badge = " " + theme.Badge.Render("+1")
	}

	usage := ""
	if !compact {
		usage = theme.Hint.Render(details.Usage(st.Intervention))
	}
	left := rank + name + badge
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(usage)-lipgloss.Width(score)-2, 1)
	return left + strings.Repeat(" ", gap) + usage + "  " + score
}

func (s *PlayScreen) viewResults(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("🏆 Your Personalized Plan"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(reasonText(s.engine.EndReason())))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Mix and match these for optimal results"))
	b.WriteString("\n\n")

	for i, st := range s.engine.Top(s.resultsShown) {
		b.WriteString(resultCard(st, i == 0, cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.resultsMenu.ButtonRow(min(cw/3-1, 18)))
	return b.String()
}

func resultCard(st quiz.Standing, leader bool, cw int) string {
	iv := st.Intervention
	border := theme.Border
	if leader {
		border = theme.Gold
	}

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label(iv)) +
		lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  %d %s", st.Score, plural(st.Score, "point", "points")))
	lines := []string{head}
	if usage := details.Usage(iv); usage != "" {
		lines = append(lines, theme.Hint.Render(usage))
	}
	if len(iv.Benefits) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(strings.Join(iv.Benefits, " • ")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func reasonText(r quiz.EndReason) string {
	switch r {
	case quiz.ReasonTimeUp:
		return "Time's up!"
	case quiz.ReasonExhausted:
		return "You've answered every question."
	case quiz.ReasonStopped:
		return "Quiz ended early."
	default:
		return ""
	}
}

func label(iv catalog.Intervention) string {
	return strings.TrimSpace(iv.Emoji + " " + iv.Name)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
