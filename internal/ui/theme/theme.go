package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: dark charcoal cards with bright quiz accents
var (
	Primary   = lipgloss.Color("#4ECDC4") // Turquoise
	Secondary = lipgloss.Color("#96CEB4") // Sage
	Accent    = lipgloss.Color("#FFD700") // Gold
	Success   = lipgloss.Color("#4CAF50") // Green
	Error     = lipgloss.Color("#FF6B6B") // Coral
	Warning   = lipgloss.Color("#FFA94D") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#A9A9A9") // Dark Gray
	BgDark    = lipgloss.Color("#1E2124") // Charcoal
	BgCard    = lipgloss.Color("#3A3D42") // Slate Gray
	Border    = lipgloss.Color("#555A61") // Gray

	ArcadeYellow = lipgloss.Color("#FFE66D")
	ArcadeCyan   = lipgloss.Color("#45B7D1")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Flash backgrounds shown briefly after an answer.
	FlashCorrect = lipgloss.NewStyle().
			Background(Success).
			Foreground(BgDark).
			Bold(true)

	FlashIncorrect = lipgloss.NewStyle().
			Background(Error).
			Foreground(BgDark).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
