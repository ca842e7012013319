package play

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/screens/results"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

const maxAnswerLen = 64

// PlayScreen asks the questions of the active quest one at a time.
type PlayScreen struct {
	game      *quest.Game
	explainer results.Explainer

	quest    catalog.Quest
	question catalog.Question
	index    int

	choice components.MultiChoice
	input  components.TextInput
	toast  components.Toast
	left   bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.BackHandler = (*PlayScreen)(nil)

// New creates a PlayScreen for the game's active quest. The quest must
// already be started.
func New(game *quest.Game, explainer results.Explainer) *PlayScreen {
	s := &PlayScreen{game: game, explainer: explainer}
	s.quest, _ = game.ActiveQuest()
	s.loadQuestion()
	return s
}

// loadQuestion builds the input widget for the game's current question.
func (s *PlayScreen) loadQuestion() {
	q, idx, ok := s.game.CurrentQuestion()
	if !ok {
		return
	}
	s.question, s.index = q, idx
	if q.IsChoice() {
		s.choice = components.NewMultiChoice(q.Prompt, q.Options)
	} else {
		s.input = components.NewTextInput("Напиши ответ", maxAnswerLen)
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	if !s.question.IsChoice() {
		return s.input.Init()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	return s.quest.Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Ответить"}}
	if s.question.IsChoice() {
		hints = append(hints, layout.KeyHint{Key: "↑↓ / 1-9", Description: "Выбор"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Выйти из квеста"})
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToastExpiredMsg:
		s.toast = s.toast.Update(msg)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.question.IsChoice() {
		s.choice, cmd = s.choice.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *PlayScreen) answer() string {
	if s.question.IsChoice() {
		return s.choice.Chosen()
	}
	return s.input.Value()
}

func (s *PlayScreen) submit() tea.Cmd {
	if s.left {
		return nil
	}

	res, err := s.game.SubmitAnswer(context.Background(), s.answer())
	if err != nil {
		text := "Что-то пошло не так"
		if errors.Is(err, quest.ErrEmptyAnswer) {
			text = "Сначала напиши ответ"
		}
		var cmd tea.Cmd
		s.toast, cmd = s.toast.Show(text, components.ToastError)
		return cmd
	}

	if res != nil {
		s.left = true
		next := results.New(s.game, res, s.explainer)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.loadQuestion()
	return s.Init()
}

// Back abandons the attempt without scoring it.
func (s *PlayScreen) Back() tea.Cmd {
	if s.left {
		return nil
	}
	s.left = true
	_ = s.game.Abandon()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	total := len(s.quest.Questions)

	header := theme.Title.Width(cw).Render(s.quest.Icon + " " + s.quest.Title)
	bar := components.NewStepBar("Вопрос", s.index+1, total, cw)

	var body string
	if s.question.IsChoice() {
		body = s.choice.View()
	} else {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.question.Prompt)
		body = prompt + "\n\n" + s.input.View()
	}

	sections := []string{
		header,
		"",
		bar.View(),
		"",
		components.Card(strings.TrimRight(body, "\n"), cw),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.toast.View()),
	}
	if s.toast.Visible() {
		return components.Center(strings.Join(sections, "\n"), width, height)
	}
	sections[len(sections)-1] = theme.Hint.Render(fmt.Sprintf("Ответов: %d из %d", s.index, total))
	return components.Center(strings.Join(sections, "\n"), width, height)
}
