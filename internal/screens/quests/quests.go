package quests

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/screens/play"
	"github.com/abhisek/questland/internal/screens/results"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

// QuestsScreen lists the catalog's quests and starts the selected one.
type QuestsScreen struct {
	game      *quest.Game
	explainer results.Explainer
	quests    []catalog.Quest
	menu      components.Menu
	toast     components.Toast
}

var _ screen.Screen = (*QuestsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestsScreen)(nil)

// New creates a QuestsScreen. explainer may be nil.
func New(game *quest.Game, explainer results.Explainer) *QuestsScreen {
	s := &QuestsScreen{
		game:      game,
		explainer: explainer,
		quests:    game.Catalog().Quests(),
	}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *QuestsScreen) menuItems() []components.MenuItem {
	u, _ := s.game.User()
	items := make([]components.MenuItem, len(s.quests))
	for i, q := range s.quests {
		detail := fmt.Sprintf("%s · %d очков", q.Difficulty.DisplayName(), q.Points)
		if u.HasCompleted(q.ID) {
			detail += " · ✓"
		}
		id := q.ID
		items[i] = components.MenuItem{
			Label:  q.Icon + " " + q.Title,
			Detail: detail,
			Action: func() tea.Cmd { return s.start(id) },
		}
	}
	return items
}

// refresh rebuilds the labels from the player's completed set, keeping the
// cursor. Results pop straight back here without a message, so View calls
// it too.
func (s *QuestsScreen) refresh() {
	selected := s.menu.Selected
	s.menu.Items = s.menuItems()
	s.menu.Selected = selected
}

func (s *QuestsScreen) start(id int) tea.Cmd {
	if err := s.game.StartQuest(id); err != nil {
		var cmd tea.Cmd
		s.toast, cmd = s.toast.Show("Этот квест сейчас недоступен", components.ToastError)
		return cmd
	}
	next := play.New(s.game, s.explainer)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *QuestsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestsScreen) Title() string {
	return "Квесты"
}

func (s *QuestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Начать"},
		{Key: "↑↓", Description: "Выбор"},
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *QuestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(components.ToastExpiredMsg); ok {
		s.toast = s.toast.Update(m)
		return s, nil
	}

	s.refresh()
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *QuestsScreen) View(width, height int) string {
	s.refresh()
	cw := components.ContentWidth(width)
	sections := []string{
		theme.Title.Width(cw).Render("Выбери квест"),
		"",
		components.Card(strings.TrimRight(s.menu.View(), "\n"), cw),
	}

	if s.menu.Selected < len(s.quests) {
		q := s.quests[s.menu.Selected]
		info := fmt.Sprintf("%s\n\nВопросов: %d", q.Description, len(q.Questions))
		sections = append(sections, "", components.Card(theme.Body.Render(info), cw))
	}

	sections = append(sections, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.toast.View()))
	return components.Center(strings.Join(sections, "\n"), width, height)
}
