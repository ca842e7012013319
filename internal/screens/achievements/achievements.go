package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/theme"
)

// AchievementsScreen shows every badge in the catalog, unlocked ones first
// followed by the locked ones.
type AchievementsScreen struct {
	game *quest.Game
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates an AchievementsScreen.
func New(game *quest.Game) *AchievementsScreen {
	return &AchievementsScreen{game: game}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Достижения"
}

func (s *AchievementsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	u, _ := s.game.User()
	all := s.game.Catalog().Achievements()

	var unlocked, locked []string
	for _, a := range all {
		if u.HasAchievement(a.ID) {
			unlocked = append(unlocked, theme.Correct.Render(a.Icon+" "+a.Name)+"\n   "+theme.Body.Render(a.Description))
		} else {
			locked = append(locked, theme.Locked.Render("🔒 "+a.Name+"\n   "+a.Description))
		}
	}

	summary := theme.Points.Render(fmt.Sprintf("Получено %d из %d", len(unlocked), len(all)))
	list := strings.Join(append(unlocked, locked...), "\n\n")

	content := strings.Join([]string{
		theme.Title.Width(cw).Render("Твои награды"),
		"",
		components.HighlightCard(summary, cw),
		"",
		components.Card(list, cw),
	}, "\n")
	return components.Center(content, width, height)
}
