package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/ui/theme"
)

const (
	gameName      = "КВЕСТЛЭНД"
	bannerCompact = "✦ " + gameName + " ✦"
	bannerMinWide = 40
)

// RenderBanner draws the game name in a rounded frame with letters
// alternating gold and sky. Narrow terminals get a single plain line.
func RenderBanner(width int) string {
	if width < bannerMinWide {
		return lipgloss.NewStyle().Foreground(theme.BannerGold).Bold(true).Render(bannerCompact)
	}

	gold := lipgloss.NewStyle().Foreground(theme.BannerGold).Bold(true)
	sky := lipgloss.NewStyle().Foreground(theme.BannerSky).Bold(true)

	var b strings.Builder
	for i, r := range []rune(gameName) {
		if i > 0 {
			b.WriteString(" ")
		}
		style := gold
		if i%2 == 1 {
			style = sky
		}
		b.WriteString(style.Render(string(r)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.BannerGold).
		Padding(1, 4).
		Render(gold.Render("✦") + "  " + b.String() + "  " + gold.Render("✦"))
}
