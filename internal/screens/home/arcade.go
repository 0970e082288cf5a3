package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/ui/theme"
)

// Block-letter title, first word only so it fits beside the menu.
const arcadeTitleFull = ` ██████╗ ██████╗  █████╗ ██╗███╗   ██╗
 ██╔══██╗██╔══██╗██╔══██╗██║████╗  ██║
 ██████╔╝██████╔╝███████║██║██╔██╗ ██║
 ██╔══██╗██╔══██╗██╔══██║██║██║╚██╗██║
 ██████╔╝██║  ██║██║  ██║██║██║ ╚████║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝
               Q U I Z`

const arcadeTitleCompact = "B · R · A · I · N   Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(sessions, topScore int, topSection string, cw int) string {
	playedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := dimStyle.Render("Train Your Mind · pick a challenge")
	if sessions > 0 {
		stats = fmt.Sprintf("%s  %s",
			playedStyle.Render(fmt.Sprintf("★ %d PLAYED", sessions)),
			bestStyle.Render(fmt.Sprintf("◆ BEST %d (%s)", topScore, topSection)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
