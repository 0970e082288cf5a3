package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/session"
	"github.com/abhisek/brainquiz/internal/ui/layout"
	"github.com/abhisek/brainquiz/internal/ui/theme"
)

// SummaryScreen reviews a finished run question by question.
type SummaryScreen struct {
	summary *session.SessionSummary
	results []session.Result
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary, results []session.Result) *SummaryScreen {
	return &SummaryScreen{summary: summary, results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Review"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.results)-1 {
				s.offset++
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	title := sum.Section.Title()
	if section.Default(sum.Section).HasDifficulty {
		title += " · " + sum.Difficulty.String()
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Score: %d    Correct: %d/%d    Accuracy: %.0f%%    Time: %d:%02d",
		sum.Score, sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	// Rows that fit under the header block.
	rows := max(height-6, 1)
	end := min(len(s.results), s.offset+rows)
	for _, r := range s.results[s.offset:end] {
		mark := "✓"
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if !r.IsCorrect {
			mark = "✗"
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		line := fmt.Sprintf("%s %3d. %s  →  %s", mark, r.Index+1, oneLine(r.Prompt, 40), r.Selected)
		if !r.IsCorrect {
			line += fmt.Sprintf("  (answer %s)", r.Correct)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// oneLine flattens multi-line prompts and truncates them to n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
