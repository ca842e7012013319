package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/ui/theme"
)

// MascotVariant selects which owl art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no quest finished yet
	MascotCelebrating                      // at least one badge earned
	MascotChampion                         // every quest completed
)

const mascotIdle = ` ,___,
 (o,o)
 /)  )
--"-"--`

const mascotCelebrating = ` ,___,
 (^,^)  ♪
 /)  )\
--"-"--`

const mascotChampion = `  ♛
 ,___,
 (★,★)
 /)  )
--"-"--`

// mascotFor picks the variant from the player's progress.
func mascotFor(u quest.User, totalQuests int) MascotVariant {
	switch {
	case totalQuests > 0 && len(u.CompletedQuests) >= totalQuests:
		return MascotChampion
	case len(u.Achievements) > 0:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// RenderMascot returns the owl art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotChampion:
		art = mascotChampion
		fg = theme.BannerGold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
