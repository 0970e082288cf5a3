package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/screens/home"
	sessionscreen "github.com/abhisek/brainquiz/internal/screens/session"
	"github.com/abhisek/brainquiz/internal/screens/splash"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps sessionscreen.Deps

	// SplashDuration is how long the splash shows. Zero uses the default.
	SplashDuration time.Duration

	// Section, when set, skips the splash and opens that section on top
	// of the home screen.
	Section *section.Kind
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	pending screen.Screen // pushed over the root on Init
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel creates the root model. It starts on the splash screen
// unless a section was requested.
func newAppModel(opts Options) AppModel {
	logger := opts.Deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	homeFactory := func() screen.Screen { return home.New(opts.Deps) }

	if opts.Section != nil {
		return AppModel{
			router:  router.New(homeFactory()),
			pending: sessionscreen.New(opts.Deps, *opts.Section),
			logger:  logger,
		}
	}
	return AppModel{
		router: router.New(splash.New(homeFactory, opts.SplashDuration)),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.pending != nil {
		cmd = tea.Batch(cmd, m.router.Push(m.pending))
	}
	return cmd
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
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var board *layout.Scoreboard
	if active != nil {
		title = active.Title()
		if sp, ok := active.(layout.ScoreboardProvider); ok {
			if b, ok := sp.Scoreboard(); ok {
				board = &b
			}
		}
	}

	header := layout.RenderHeader(title, board, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
