package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20
	cabinetChrome   = 6 // border plus inner padding
)

// ContentWidth is the shared inner width of every box on a screen, so
// cards, bars and option lists line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetChrome, minContentWidth), maxContentWidth)
}

// CabinetFrame centers content inside a double border filling the screen.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Tone colors a card after an answer.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

func (t Tone) color() color.Color {
	switch t {
	case ToneSuccess:
		return theme.Success
	case ToneError:
		return theme.Error
	}
	return theme.Border
}

// Card draws content in a rounded box cw wide. A non-neutral tone colors
// the border.
func Card(content string, cw int, tone Tone) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tone.color()).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// QuestionCard is a Card whose prompt text takes the tone color as well.
func QuestionCard(prompt string, cw int, tone Tone) string {
	text := lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	if tone != ToneNeutral {
		text = text.Foreground(tone.color())
	}
	return Card(text.Render(prompt), cw, tone)
}

// KeyButton renders a button labelled with its hotkey, e.g. "Try Again (R)".
// The primary button is filled.
func KeyButton(label, hotkey string, primary bool) string {
	text := label + " (" + hotkey + ")"
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if primary {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + text)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(text)
}
