package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/session"
)

func testSummary() (*session.SessionSummary, []session.Result) {
	sum := &session.SessionSummary{
		Section:        section.Addition,
		Difficulty:     problemgen.Medium,
		Score:          40,
		Duration:       2 * time.Minute,
		TotalQuestions: 3,
		Answered:       3,
		TotalCorrect:   2,
		Accuracy:       2.0 / 3.0,
	}
	results := []session.Result{
		{Index: 0, Prompt: "12 + 30", Selected: problemgen.Number(42), Correct: problemgen.Number(42), IsCorrect: true},
		{Index: 1, Prompt: "15 + 15", Selected: problemgen.Number(31), Correct: problemgen.Number(30)},
		{Index: 2, Prompt: "20 + 21", Selected: problemgen.Number(41), Correct: problemgen.Number(41), IsCorrect: true},
	}
	return sum, results
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Review" {
		t.Errorf("Title = %q, want %q", s.Title(), "Review")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)
	for _, want := range []string{"Addition · medium", "Score: 40", "15 + 15", "(answer 30)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_UntimedSectionHidesDifficulty(t *testing.T) {
	sum, results := testSummary()
	sum.Section = section.Division
	view := New(sum, results).View(100, 30)
	if strings.Contains(view, "medium") {
		t.Error("sections without a difficulty picker should not show one")
	}
}

func TestSummaryScreen_Scroll(t *testing.T) {
	s := New(testSummary())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 2 {
		t.Errorf("offset = %d, want 2 (clamped)", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 1 {
		t.Errorf("offset = %d, want 1", s.offset)
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command on key %d", code)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg on key %d", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
