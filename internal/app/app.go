package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/quiz"
	"github.com/abhisek/wellquiz/internal/router"
	"github.com/abhisek/wellquiz/internal/screen"
	"github.com/abhisek/wellquiz/internal/screens/play"
	"github.com/abhisek/wellquiz/internal/screens/splash"
	"github.com/abhisek/wellquiz/internal/ui/layout"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	// Engine must have been created with quiz.WithClock(Clock).
	Engine       *quiz.Engine
	Clock        *play.Clock
	ResultsShown int
	Logger       *slog.Logger

	// Splash shows the intro animation before the quiz.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *quiz.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel with the quiz screen at the root,
// behind the splash when enabled.
func newAppModel(opts Options) AppModel {
	quizScreen := func() screen.Screen {
		return play.New(opts.Engine, opts.Clock, opts.ResultsShown, opts.Logger)
	}

	var root screen.Screen
	if opts.Splash {
		root = splash.New(quizScreen)
	} else {
		root = quizScreen()
	}
	return AppModel{
		router: router.New(root),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.engine.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// The root screen uses esc for its own quit confirmation.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kh, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kh.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. The engine is closed on return so an
// interrupted run releases its timer.
func Run(opts Options) error {
	defer opts.Engine.Close()

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
