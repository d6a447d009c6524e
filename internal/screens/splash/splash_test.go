package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellquiz/internal/router"
	"github.com/abhisek/wellquiz/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func newTestSplash() (*SplashScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(s *SplashScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	s, _ := newTestSplash()

	if strings.Contains(s.View(100, 30), "██╗    ██╗") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(s, 6)
	if !strings.Contains(s.View(100, 30), "██╗    ██╗") {
		t.Error("banner should be visible after 600ms")
	}
}

func TestTickingStopsWhenDone(t *testing.T) {
	s, _ := newTestSplash()

	if cmd := sendTicks(s, 5); cmd == nil {
		t.Error("expected ticks to continue mid-animation")
	}
	if cmd := sendTicks(s, 30); cmd != nil {
		t.Error("expected ticking to stop after the animation")
	}
	if !s.Done() {
		t.Error("expected animation done")
	}
}

func TestKeypressDuringAnimationSkips(t *testing.T) {
	s, calls := newTestSplash()
	sendTicks(s, 2)

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("first key should only skip the animation")
	}
	if !s.Done() {
		t.Error("expected animation skipped to the end")
	}
	if *calls != 0 {
		t.Error("next screen should not be built yet")
	}
	if !strings.Contains(s.View(100, 30), "press any key") {
		t.Error("expected continue hint")
	}
}

func TestKeypressAfterAnimationEmitsReplace(t *testing.T) {
	s, calls := newTestSplash()
	sendTicks(s, 20)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'a'})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("expected next screen, got %q", msg.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("expected factory called once, got %d", *calls)
	}

	// A second key must not build another screen.
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("expected no second transition")
	}
	if *calls != 1 {
		t.Errorf("expected factory still called once, got %d", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "W E L L Q U I Z") {
		t.Error("expected compact banner on narrow terminals")
	}
}

func TestViewFillsFrame(t *testing.T) {
	s, _ := newTestSplash()
	sendTicks(s, 20)

	view := s.View(100, 30)
	if !strings.Contains(view, "╔") {
		t.Error("expected cabinet border")
	}
	if w, h := lipgloss.Width(view), lipgloss.Height(view); w != 100 || h != 30 {
		t.Errorf("expected 100x30, got %dx%d", w, h)
	}
}
