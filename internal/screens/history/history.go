package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/store"
	"github.com/abhisek/brainquiz/internal/ui/layout"
	"github.com/abhisek/brainquiz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Filter   string
	Sessions []store.SessionRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen displays past sessions, optionally filtered by section.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	answers   map[string][]store.AnswerRecord // sessionID → answers
	filter    int                             // 0 = all, else index into section.All()+1
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) filterID() string {
	if s.filter == 0 {
		return ""
	}
	return section.All()[s.filter-1].ID()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo, filter := s.eventRepo, s.filterID()
	return func() tea.Msg {
		sessions, err := repo.RecentSessions(context.Background(),
			store.QueryOpts{Limit: pageSize, Section: filter})
		return historyLoadedMsg{Filter: filter, Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.Answers(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Filter != s.filterID() {
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "tab":
			s.filter = (s.filter + 1) % (len(section.All()) + 1)
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.load()
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.sessions[s.selected].SessionID
			if _, ok := s.answers[id]; s.expanded[s.selected] && !ok {
				return s, s.loadAnswers(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	filterName := "All sections"
	if s.filter > 0 {
		filterName = section.All()[s.filter-1].Title()
	}
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("◂ "+filterName+" ▸")))
	b.WriteString("\n\n")

	if !s.loaded {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Loading history..."))
		return b.String()
	}
	if len(s.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No sessions yet. Pick a section and play!"))
		return b.String()
	}

	for i, rec := range s.sessions {
		dateStr := rec.FinishedAt.Format("Jan 02 15:04")
		mins := int(rec.Duration.Minutes())
		secs := int(rec.Duration.Seconds()) % 60

		name := sectionTitle(rec.Section)
		if rec.Difficulty != "" {
			name += " (" + rec.Difficulty + ")"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-28s  score %4d  %d/%d  %3.0f%%  %d:%02d",
			prefix, dateStr, name, rec.Score, rec.Correct, rec.Total, rec.Accuracy()*100, mins, secs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(rec, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(rec store.SessionRecord, width int) string {
	answers, ok := s.answers[rec.SessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    loading answers...")) + "\n"
	}

	wrong := 0
	var b strings.Builder
	for _, a := range answers {
		if a.IsCorrect {
			continue
		}
		wrong++
		line := fmt.Sprintf("    ✗ %s  →  %s (answer %s)",
			strings.Join(strings.Fields(a.Prompt), " "), a.Selected, a.CorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
		b.WriteString("\n")
	}
	if wrong == 0 {
		msg := fmt.Sprintf("    %d answers, all correct", len(answers))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Render(msg)))
		b.WriteString("\n")
	}
	return b.String()
}

func sectionTitle(id string) string {
	if k, err := section.Parse(id); err == nil {
		return k.Title()
	}
	return id
}
