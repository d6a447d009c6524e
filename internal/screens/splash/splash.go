// Package splash shows a short intro animation before handing over to the
// quiz.
package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/router"
	"github.com/abhisek/wellquiz/internal/screen"
	"github.com/abhisek/wellquiz/internal/ui/components"
	"github.com/abhisek/wellquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 600 * time.Millisecond
	totalDur     = 2 * time.Second
)

const leafArt = `    ▄▄▄▄
  ▄█████▄
 ████▀ ▀██
 ██▀  ▄██▀
  ▀▄▄██▀
    █`

var glowFrames = []string{"·", "•", "●", "•"}

type tickMsg time.Time

// SplashScreen animates the logo, then replaces itself with the next screen
// on the first key press.
type SplashScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	frame        int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *SplashScreen {
	return &SplashScreen{next: next}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Done reports whether the animation has finished.
func (s *SplashScreen) Done() bool {
	return s.elapsed >= totalDur
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		s.frame++
		if s.Done() {
			// Stop ticking once the animation is over.
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyPressMsg:
		// First key skips the animation, the next one continues.
		if !s.Done() {
			s.elapsed = totalDur
			return s, nil
		}
		return s, s.transition()
	}
	return s, nil
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	glow := lipgloss.NewStyle().Foreground(theme.Gold).
		Render(glowFrames[s.frame%len(glowFrames)])

	leaf := lipgloss.NewStyle().Foreground(theme.Success).Render(leafArt)
	sections := []string{glow + "   " + leaf + "   " + glow}

	if s.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width-2),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Find your perfect mix of supplements and activities"),
		)
	}
	if s.Done() {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return components.CabinetFrame(strings.Join(sections, "\n"), width, height)
}
