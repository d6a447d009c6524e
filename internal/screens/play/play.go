// Package play implements the quiz screen: intro, the timed run of paired
// prompts, and the results.
package play

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellquiz/internal/quiz"
	"github.com/abhisek/wellquiz/internal/router"
	"github.com/abhisek/wellquiz/internal/screen"
	"github.com/abhisek/wellquiz/internal/screens/details"
	"github.com/abhisek/wellquiz/internal/ui/components"
	"github.com/abhisek/wellquiz/internal/ui/layout"
)

// DefaultResultsShown is how many interventions the results view lists.
const DefaultResultsShown = 4

// PlayScreen renders whichever phase the engine is in and feeds player input
// and clock ticks back to it.
type PlayScreen struct {
	engine       *quiz.Engine
	clock        *Clock
	log          *slog.Logger
	resultsShown int

	introMenu   components.Menu
	resultsMenu components.Menu
	pair        components.PairChoice

	showingQuitConfirm bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the quiz screen. The engine must have been built with
// quiz.WithClock(clock) so that its countdown reaches this screen.
func New(engine *quiz.Engine, clock *Clock, resultsShown int, log *slog.Logger) *PlayScreen {
	if resultsShown <= 0 {
		resultsShown = DefaultResultsShown
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &PlayScreen{
		engine:       engine,
		clock:        clock,
		log:          log,
		resultsShown: resultsShown,
		pair:         components.NewPairChoice("", ""),
	}

	start := func() tea.Cmd { return func() tea.Msg { return startMsg{} } }
	learnMore := func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: details.New(engine.Interventions())}
		}
	}
	exit := func() tea.Cmd { return tea.Quit }

	s.introMenu = components.NewMenu([]components.MenuItem{
		{Label: "Start Quiz", Action: start},
		{Label: "Learn More", Action: learnMore},
		{Label: "Exit", Action: exit},
	})
	s.resultsMenu = components.NewMenu([]components.MenuItem{
		{Label: "Try Again", Action: start},
		{Label: "Learn More", Action: learnMore},
		{Label: "Exit", Action: exit},
	})
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	switch s.engine.Phase() {
	case quiz.PhasePlaying:
		return "Which bothers you more?"
	case quiz.PhaseFinished:
		return "Your Personalized Plan"
	default:
		return "Energy & Wellness Quiz"
	}
}

// Status is shown on the right of the header.
func (s *PlayScreen) Status() string {
	if s.engine.Phase() != quiz.PhasePlaying {
		return ""
	}
	return fmt.Sprintf("%d of %d", s.engine.ShownCount(), s.engine.PromptCount())
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "y", Description: "End quiz"},
			{Key: "n", Description: "Keep going"},
		}
	}
	if s.engine.Phase() == quiz.PhasePlaying {
		keys := s.pair.Keys
		hints := make([]layout.KeyHint, 0, 4)
		for _, b := range []key.Binding{keys.PickLeft, keys.Left, keys.Confirm} {
			h := b.Help()
			hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return s.handleStart()

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case components.PickedMsg:
		return s.handlePicked(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleStart() (screen.Screen, tea.Cmd) {
	s.showingQuitConfirm = false
	s.engine.Start()
	s.syncPair()
	s.resultsMenu.Selected = 0
	return s, s.clock.Next()
}

func (s *PlayScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if !s.clock.Live(msg.id) {
		return s, nil
	}
	s.engine.Tick()
	if s.engine.Phase() != quiz.PhasePlaying {
		s.showingQuitConfirm = false
		return s, nil
	}
	return s, s.clock.Next()
}

func (s *PlayScreen) handlePicked(msg components.PickedMsg) (screen.Screen, tea.Cmd) {
	if err := s.engine.ChooseSide(msg.Side); err != nil {
		// A pick can race the countdown; anything else is a bug.
		if !errors.Is(err, quiz.ErrInvalidState) {
			s.log.Error("choice failed", slog.Any("error", err))
		}
		return s, nil
	}
	s.syncPair()
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	pressed := msg.String()

	switch s.engine.Phase() {
	case quiz.PhaseIntro:
		var cmd tea.Cmd
		s.introMenu, cmd = s.introMenu.Update(msg)
		return s, cmd

	case quiz.PhaseFinished:
		var cmd tea.Cmd
		s.resultsMenu, cmd = s.resultsMenu.Update(msg)
		return s, cmd
	}

	if s.showingQuitConfirm {
		switch pressed {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.engine.End()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if pressed == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	var cmd tea.Cmd
	s.pair, cmd = s.pair.Update(msg)
	return s, cmd
}

// syncPair copies the engine's current pair into the selector.
func (s *PlayScreen) syncPair() {
	pair := s.engine.CurrentPair()
	if len(pair) != 2 {
		return
	}
	s.pair.SetPair(pair[0].Text, pair[1].Text)
}
