package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestSplash(d time.Duration) (*SplashScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory, d), &callCount
}

func sendTicks(w *SplashScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func expectReplace(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
}

func TestBannerAppears(t *testing.T) {
	w, _ := newTestSplash(0)

	if strings.Contains(w.View(100, 30), "Train Your Mind") {
		t.Error("tagline should not be visible at start")
	}
	sendTicks(w, 5)
	if !strings.Contains(w.View(100, 30), "Train Your Mind") {
		t.Error("tagline should be visible after the banner delay")
	}
}

func TestAutoTransitionAfterDuration(t *testing.T) {
	w, calls := newTestSplash(0)

	cmd := sendTicks(w, 29)
	if *calls != 0 {
		t.Fatalf("factory called before %v", DefaultDuration)
	}
	if _, ok := cmd().(tickMsg); !ok {
		t.Fatal("splash should keep ticking until the duration elapses")
	}

	expectReplace(t, sendTicks(w, 1))
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestCustomDuration(t *testing.T) {
	w, calls := newTestSplash(time.Second)
	expectReplace(t, sendTicks(w, 10))
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestKeypressSkipsAfterBanner(t *testing.T) {
	w, calls := newTestSplash(0)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress before the banner should be ignored")
	}

	sendTicks(w, 5)
	_, cmd = w.Update(tea.KeyPressMsg{Code: ' '})
	expectReplace(t, cmd)
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, calls := newTestSplash(0)

	sendTicks(w, 5)
	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if sendTicks(w, 30) != nil {
		t.Error("ticks after the transition should stop")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestSplash(0)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
