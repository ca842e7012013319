package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/theme"
)

// ProfileScreen shows the player's name, level, points and completed
// quests for this run.
type ProfileScreen struct {
	game *quest.Game
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(game *quest.Game) *ProfileScreen {
	return &ProfileScreen{game: game}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Профиль"
}

func (s *ProfileScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	u, _ := s.game.User()
	c := s.game.Catalog()

	stats := fmt.Sprintf("👤 %s\n\nУровень: %d\nОчки: %s\nНаграды: %d из %d",
		u.Name, u.Level, theme.Points.Render(fmt.Sprint(u.Points)),
		len(u.Achievements), len(c.Achievements()))

	bar := components.ProgressBar{
		Label:   "До уровня 2",
		Percent: u.LevelProgress(),
		Caption: fmt.Sprintf("%d/%d", min(u.Points, quest.NextLevelPoints), quest.NextLevelPoints),
		Width:   cw - 6,
	}

	var done []string
	for _, id := range u.CompletedQuests {
		if q, err := c.Quest(id); err == nil {
			done = append(done, "✓ "+q.Icon+" "+q.Title)
		}
	}
	completed := theme.Hint.Render("Пока ни одного пройденного квеста")
	if len(done) > 0 {
		completed = strings.Join(done, "\n")
	}

	content := strings.Join([]string{
		components.Card(stats+"\n\n"+bar.View(), cw),
		"",
		components.Card("Пройденные квесты\n\n"+completed, cw),
	}, "\n")
	return components.Center(content, width, height)
}
