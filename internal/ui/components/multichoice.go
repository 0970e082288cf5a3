package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/ui/theme"
)

// MultiChoice renders a numbered option list. It holds no input logic;
// the owning screen moves the cursor and reveals the answer.
type MultiChoice struct {
	Options []string
	Cursor  int

	// Revealed switches to answer colors: Correct in green, Chosen in red
	// when it differs, everything else dimmed.
	Revealed bool
	Correct  int
	Chosen   int // -1 when the question timed out
}

// NewMultiChoice creates a selector with the cursor on the first option.
func NewMultiChoice(options []string, correct int) MultiChoice {
	return MultiChoice{
		Options: options,
		Correct: correct,
		Chosen:  -1,
	}
}

// Move shifts the cursor by delta, clamped to the option range.
func (m *MultiChoice) Move(delta int) {
	if m.Revealed || len(m.Options) == 0 {
		return
	}
	m.Cursor = max(0, min(len(m.Options)-1, m.Cursor+delta))
}

// Reveal marks chosen as the picked option, -1 for none.
func (m *MultiChoice) Reveal(chosen int) {
	m.Revealed = true
	m.Chosen = chosen
	if chosen >= 0 {
		m.Cursor = chosen
	}
}

// View renders the options at the given width, one per line.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Width(width).Padding(0, 1)
		switch {
		case m.Revealed && i == m.Correct:
			style = style.Foreground(theme.Success).Bold(true)
			line += "  ✓"
		case m.Revealed && i == m.Chosen:
			style = style.Foreground(theme.Error).Bold(true)
			line += "  ✗"
		case m.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Cursor:
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
