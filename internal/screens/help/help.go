package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/theme"
)

const rules = `1. Выбери квест в разделе «Квесты».
2. Отвечай на вопросы по порядку. Выбирай вариант стрелками
   или цифрой, а ответ пиши с клавиатуры.
3. После последнего вопроса ты увидишь оценку и очки.
4. Очки начисляются за каждую попытку, даже повторную.`

const grades = `90% и больше   5 (Отлично!)
75% и больше   4 (Хорошо!)
60% и больше   3 (Удовлетворительно)
меньше 60%     2 (Попробуй ещё раз!)`

const keys = `Enter    ответить / выбрать
Esc      назад или выйти из квеста
t        попросить сову объяснить ошибки
Ctrl+C   выйти из игры`

// HelpScreen explains the rules, the grade scale and the keys.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (s *HelpScreen) Init() tea.Cmd {
	return nil
}

func (s *HelpScreen) Title() string {
	return "Помощь"
}

func (s *HelpScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	content := strings.Join([]string{
		theme.Title.Width(cw).Render("Как играть"),
		"",
		components.Card(rules, cw),
		"",
		components.Card(theme.Points.Render("Оценки")+"\n\n"+grades, cw),
		"",
		components.Card(theme.Points.Render("Клавиши")+"\n\n"+keys, cw),
	}, "\n")
	return components.Center(content, width, height)
}
