package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/feedback"
	sess "github.com/abhisek/brainquiz/internal/session"
	"github.com/abhisek/brainquiz/internal/ui/components"
	"github.com/abhisek/brainquiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.stage {
	case stageError:
		return renderError(width, height, s.errMsg)
	case stagePickDifficulty:
		return s.renderPicker(width, height)
	case stageGameOver:
		return s.renderGameOver(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) renderPicker(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(s.cfg.Title)
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Choose your difficulty")

	content := strings.Join([]string{
		title,
		sub,
		"",
		components.Card(s.picker.View(), cw, components.ToneNeutral),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	e := s.engine
	q := e.Current()
	if q == nil {
		return renderError(width, height, "no question available")
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Progress line.
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", e.Index()+1, e.Total()),
		float64(e.Index())/float64(max(e.Total(), 1)),
		false, cw)
	b.WriteString(progress.View())
	b.WriteString("\n")

	if s.cfg.Timed() {
		cd := e.Countdown()
		b.WriteString(components.TimerBar(cd.Remaining, cd.Duration, s.cfg.TickWarning, cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Question card, flashed while feedback is up.
	b.WriteString(components.QuestionCard(q.Prompt, cw, cueTone(s.cue)))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View(cw))
	b.WriteString("\n\n")
	b.WriteString(s.renderStatus(cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderStatus is the one-line verdict under the options.
func (s *SessionScreen) renderStatus(cw int) string {
	e := s.engine
	line := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	switch e.Outcome() {
	case sess.OutcomeCorrect:
		msg := "Correct!"
		if e.Streak() > 1 {
			msg = fmt.Sprintf("Correct! %d in a row", e.Streak())
		}
		return line.Inherit(theme.Correct).Render(msg)
	case sess.OutcomeIncorrect:
		q := e.Current()
		msg := "Not quite"
		if e.Selected().IsTimeout() {
			msg = "Time's up!"
		}
		if q != nil {
			msg += " · answer: " + q.Correct.String()
		}
		return line.Inherit(theme.Incorrect).Render(msg)
	}
	return line.Foreground(theme.TextDim).Italic(true).Render("Select 1-4 or use arrows + Enter")
}

func (s *SessionScreen) renderGameOver(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("Challenge Complete!")

	score := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Score: %d", sum.Score))

	stats := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d / %d correct   %.0f%% accuracy   best streak %d",
			sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, sum.BestStreak))

	lines := []string{title, "", score, stats}
	if sum.Timeouts > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d timed out", sum.Timeouts)))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.KeyButton("Try Again", "R", true),
		" ",
		components.KeyButton("Review", "D", false),
		" ",
		components.KeyButton("Home", "Esc", false),
	)
	lines = append(lines, "", buttons)

	return components.CabinetFrame(
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n")),
		width, height)
}

func cueTone(h feedback.Haptic) components.Tone {
	switch h {
	case feedback.HapticSuccess:
		return components.ToneSuccess
	case feedback.HapticError:
		return components.ToneError
	}
	return components.ToneNeutral
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
