package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  █████╗ ██╗███╗   ██╗     ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗██╔══██╗██╔══██╗██║████╗  ██║    ██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝██████╔╝███████║██║██╔██╗ ██║    ██║   ██║██║   ██║██║  ███╔╝
 ██╔══██╗██╔══██╗██╔══██║██║██║╚██╗██║    ██║▄▄ ██║██║   ██║██║ ███╔╝
 ██████╔╝██║  ██║██║  ██║██║██║ ╚████║    ╚██████╔╝╚██████╔╝██║███████╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "B R A I N   Q U I Z"

// RenderBanner returns the Brain Quiz banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
