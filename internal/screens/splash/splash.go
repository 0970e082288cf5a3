package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond

	// DefaultDuration is how long the splash stays before home appears.
	DefaultDuration = 3 * time.Second
)

const brainArt = `   ╭─────╮╭─────╮
  ╭╯ ◠ ◠ ╰╯ ◠ ◠ ╰╮
  │  ╭──╮    ╭──╮ │
  ╰╮ ╰──╯ ++ ╰──╯╭╯
   ╰─────╮╭─────╯
         ╰╯`

// sparkle frames cycle around the brain
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// SplashScreen shows the title for a fixed time, then replaces itself
// with the home screen. Any key skips ahead once the banner is up.
type SplashScreen struct {
	homeFactory  func() screen.Screen
	duration     time.Duration
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen that transitions to the screen produced by
// homeFactory after d. A non-positive d uses DefaultDuration.
func New(homeFactory func() screen.Screen, d time.Duration) *SplashScreen {
	if d <= 0 {
		d = DefaultDuration
	}
	return &SplashScreen{
		homeFactory: homeFactory,
		duration:    d,
	}
}

func (w *SplashScreen) Title() string {
	return ""
}

func (w *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if w.transitioned {
		return w, nil
	}

	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= w.duration {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		if w.elapsed >= bannerAt {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *SplashScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *SplashScreen) View(width, height int) string {
	rendered := lipgloss.NewStyle().Foreground(theme.Accent).Render(brainArt)

	lines := strings.Split(rendered, "\n")
	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	s1 := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(sparkle)
	s2 := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(sparkle)
	if len(lines) > 3 {
		lines[0] = s1 + "  " + lines[0]
		lines[3] = lines[3] + "  " + s2
	}

	sections := []string{strings.Join(lines, "\n")}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Train Your Mind"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
