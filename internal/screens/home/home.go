package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/screens/history"
	sessionscreen "github.com/abhisek/brainquiz/internal/screens/session"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/store"
	"github.com/abhisek/brainquiz/internal/ui/components"
	"github.com/abhisek/brainquiz/internal/ui/layout"
)

type bestScoresMsg struct {
	Scores map[string]store.BestScore
	Err    error
}

// HomeScreen lists the nine sections plus history and exit.
type HomeScreen struct {
	deps  sessionscreen.Deps
	kinds []section.Kind
	menu  components.Menu
	best  map[string]store.BestScore
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps sessionscreen.Deps) *HomeScreen {
	h := &HomeScreen{
		deps:  deps,
		kinds: section.All(),
		best:  map[string]store.BestScore{},
	}

	items := make([]components.MenuItem, 0, len(h.kinds)+2)
	for _, k := range h.kinds {
		items = append(items, components.MenuItem{
			Label: k.Title(),
			Action: func() tea.Cmd {
				quiz := sessionscreen.New(h.deps, k)
				return func() tea.Msg { return router.PushScreenMsg{Screen: quiz} }
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "History",
			Disabled: deps.EventRepo == nil,
			Action: func() tea.Cmd {
				hs := history.New(h.deps.EventRepo)
				return func() tea.Msg { return router.PushScreenMsg{Screen: hs} }
			},
		},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)
	h.refreshDetails()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadBestScores()
}

func (h *HomeScreen) loadBestScores() tea.Cmd {
	repo := h.deps.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		scores, err := repo.BestScores(context.Background())
		return bestScoresMsg{Scores: scores, Err: err}
	}
}

// refreshDetails rebuilds the per-section description and best score.
func (h *HomeScreen) refreshDetails() {
	for i, k := range h.kinds {
		cfg := section.Default(k)
		detail := cfg.Description
		if b, ok := h.best[k.ID()]; ok {
			detail += fmt.Sprintf(" · best %d", b.Score)
		}
		h.menu.Items[i].Detail = detail
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ResumedMsg:
		return h, h.loadBestScores()
	case bestScoresMsg:
		if msg.Err != nil {
			if h.deps.Logger != nil {
				h.deps.Logger.Warn("load best scores failed", zap.Error(msg.Err))
			}
			return h, nil
		}
		h.best = msg.Scores
		h.refreshDetails()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-9", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 30 || width < 100
	cw := components.ContentWidth(width)

	var played, top int
	topSection := ""
	for _, k := range h.kinds {
		b, ok := h.best[k.ID()]
		if !ok {
			continue
		}
		played += b.Sessions
		if b.Score > top || topSection == "" {
			top, topSection = b.Score, k.Title()
		}
	}

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(played, top, topSection, cw),
		lipgloss.NewStyle().Width(cw).Render(h.menu.View()),
	}
	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
