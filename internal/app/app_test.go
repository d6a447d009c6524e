package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
	"github.com/abhisek/wellquiz/internal/router"
	"github.com/abhisek/wellquiz/internal/screens/details"
	"github.com/abhisek/wellquiz/internal/screens/play"
)

func newTestModel() AppModel {
	clock := play.NewClock()
	e := quiz.New(catalog.Default(), quiz.WithClock(clock), quiz.WithRand(quiz.NewRand(3)))
	return newAppModel(Options{Engine: e, Clock: clock})
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func TestCtrlCClosesEngine(t *testing.T) {
	m := sized(newTestModel())
	m.engine.Start()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.engine.Phase() != quiz.PhaseFinished {
		t.Errorf("expected run ended, got %s", m.engine.Phase())
	}
	if m.engine.EndReason() != quiz.ReasonClosed {
		t.Errorf("expected closed, got %s", m.engine.EndReason())
	}
}

func TestEscAtRootReachesScreen(t *testing.T) {
	m := sized(newTestModel())
	m.engine.Start()

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	if m.engine.EndReason() != quiz.ReasonStopped {
		t.Errorf("expected esc+y to stop the run, got %s", m.engine.EndReason())
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := sized(newTestModel())
	m.router.Update(router.PushScreenMsg{Screen: details.New(nil)})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewShowsHeaderAndStatus(t *testing.T) {
	m := sized(newTestModel())
	m.engine.Start()

	content := m.render()
	if !strings.Contains(content, "Wellquiz") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(content, "0 of 20") {
		t.Error("expected progress status in header")
	}
}

func TestSplashHandsOverToQuiz(t *testing.T) {
	clock := play.NewClock()
	e := quiz.New(catalog.Default(), quiz.WithClock(clock))
	m := sized(newAppModel(Options{Engine: e, Clock: clock, Splash: true}))

	if m.router.Active().Title() != "" {
		t.Fatalf("expected splash first, got %q", m.router.Active().Title())
	}

	// First key skips the animation, the second continues.
	m.Update(tea.KeyPressMsg{Code: ' '})
	_, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	m.Update(cmd())

	if m.router.Depth() != 1 {
		t.Errorf("expected splash replaced, depth %d", m.router.Depth())
	}
	if m.router.Active().Title() != "Energy & Wellness Quiz" {
		t.Errorf("expected quiz intro, got %q", m.router.Active().Title())
	}
}

func TestViewTooSmall(t *testing.T) {
	next, _ := newTestModel().Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
