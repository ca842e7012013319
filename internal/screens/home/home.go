package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/screens/achievements"
	"github.com/abhisek/questland/internal/screens/help"
	"github.com/abhisek/questland/internal/screens/history"
	"github.com/abhisek/questland/internal/screens/placeholder"
	"github.com/abhisek/questland/internal/screens/profile"
	"github.com/abhisek/questland/internal/screens/quests"
	"github.com/abhisek/questland/internal/screens/results"
	"github.com/abhisek/questland/internal/store"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

const titleArt = `✦ ─────────────────────── ✦
    К В Е С Т Л Э Н Д
✦ ─────────────────────── ✦`

const titleCompact = "К В Е С Т Л Э Н Д"

// Deps are the services reachable from the home menu. EventRepo and
// Explainer may be nil.
type Deps struct {
	Game      *quest.Game
	EventRepo store.EventRepo
	Explainer results.Explainer
}

// HomeScreen is the main menu shown after login.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	g := deps.Game
	items := []components.MenuItem{
		{Label: "Квесты", Action: func() tea.Cmd { return push(quests.New(g, deps.Explainer)) }},
		{Label: "Достижения", Action: func() tea.Cmd { return push(achievements.New(g)) }},
		{Label: "Профиль", Action: func() tea.Cmd { return push(profile.New(g)) }},
		{Label: "Помощь", Action: func() tea.Cmd { return push(help.New()) }},
		{Label: "История", Action: func() tea.Cmd {
			if deps.EventRepo == nil {
				return push(placeholder.New("История", "Журнал попыток недоступен."))
			}
			return push(history.New(deps.EventRepo, g.Catalog()))
		}},
		{Label: "Выход", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Главная"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Выбрать"},
		{Key: "↑↓", Description: "Меню"},
		{Key: "Ctrl+C", Description: "Выход"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)
	u, _ := h.deps.Game.User()
	c := h.deps.Game.Catalog()

	title := titleArt
	if compact {
		title = titleCompact
	}

	sections := []string{
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.BannerGold).Bold(true).Render(title),
	}
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, RenderMascot(mascotFor(u, len(c.Quests())))))
	}
	sections = append(sections,
		components.HighlightCard(statsLine(u, c, compact), cw),
		components.Card(strings.TrimRight(h.menu.View(), "\n"), cw),
	)

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func statsLine(u quest.User, c *catalog.Catalog, compact bool) string {
	points := theme.Points.Render(fmt.Sprintf("★ %d", u.Points))
	badges := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("🏅 %d/%d", len(u.Achievements), len(c.Achievements())))
	done := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("✓ %d/%d", len(u.CompletedQuests), len(c.Quests())))

	if compact {
		return points + "  " + badges + "  " + done
	}
	return fmt.Sprintf("Привет, %s!\n\n%s очков   %s наград   %s квестов",
		u.Name, points, badges, done)
}
