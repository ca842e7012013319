package results

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/llm"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/tutor"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

// Explainer produces tutor feedback for a finished attempt.
type Explainer interface {
	Explain(ctx context.Context, res *quest.Result) (*tutor.Explanation, error)
}

type explainedMsg struct {
	Explanation *tutor.Explanation
	Err         error
}

type tutorState int

const (
	tutorIdle tutorState = iota
	tutorLoading
	tutorDone
	tutorFailed
)

// ResultsScreen shows the grade, score and per-question review of a
// finished attempt. Leaving it dismisses the results in the game.
type ResultsScreen struct {
	game      *quest.Game
	result    *quest.Result
	explainer Explainer

	tutorState  tutorState
	explanation *tutor.Explanation
	tutorErr    string
	left        bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.BackHandler = (*ResultsScreen)(nil)

// New creates a ResultsScreen for res. explainer may be nil, which hides
// the tutor.
func New(game *quest.Game, res *quest.Result, explainer Explainer) *ResultsScreen {
	return &ResultsScreen{game: game, result: res, explainer: explainer}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Результаты"
}

func (s *ResultsScreen) canExplain() bool {
	return s.explainer != nil && len(s.result.Mistakes()) > 0
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "К квестам"}}
	if s.canExplain() && s.tutorState == tutorIdle {
		hints = append(hints, layout.KeyHint{Key: "t", Description: "Объясни ошибки"})
	}
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		if msg.Err != nil {
			s.tutorState = tutorFailed
			s.tutorErr = tutorErrorText(msg.Err)
		} else {
			s.tutorState = tutorDone
			s.explanation = msg.Explanation
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.Back()
		case "t":
			return s, s.requestExplanation()
		}
	}
	return s, nil
}

// Back dismisses the results and returns to the quest list.
func (s *ResultsScreen) Back() tea.Cmd {
	if s.left {
		return nil
	}
	s.left = true
	_ = s.game.Dismiss()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ResultsScreen) requestExplanation() tea.Cmd {
	if !s.canExplain() || s.tutorState == tutorLoading || s.tutorState == tutorDone {
		return nil
	}
	s.tutorState = tutorLoading
	explainer, res := s.explainer, s.result
	return func() tea.Msg {
		exp, err := explainer.Explain(context.Background(), res)
		return explainedMsg{Explanation: exp, Err: err}
	}
}

const unusableReplyText = "Сова не смогла объяснить ответы."

func tutorErrorText(err error) string {
	var (
		rl      *llm.ErrRateLimit
		invalid *llm.ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Сова думала слишком долго. Попробуй ещё раз."
	case errors.As(err, &rl):
		return "Сова сейчас помогает другим ребятам. Попробуй через минутку."
	case errors.As(err, &invalid):
		return unusableReplyText
	case llm.Transient(err):
		return "Сова сейчас не может помочь. Попробуй ещё раз позже."
	default:
		return unusableReplyText
	}
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := s.result

	banner := fmt.Sprintf("%s  %s %s\n\n%s",
		res.Grade.Emoji, res.Quest.Icon, res.Quest.Title, res.Grade.Label)

	score := fmt.Sprintf("Правильных ответов: %d из %d (%.0f%%)",
		res.Score.Correct, res.Score.Total, res.Score.Percentage)
	points := theme.Points.Render(fmt.Sprintf("+%d очков", res.Score.EarnedPoints))

	sections := []string{
		components.HighlightCard(theme.Title.Render(banner), cw),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, score+"   "+points),
	}

	if len(res.NewAchievements) > 0 {
		var lines []string
		for _, a := range res.NewAchievements {
			lines = append(lines, theme.Correct.Render(fmt.Sprintf("%s %s", a.Icon, a.Name))+
				"  "+theme.Hint.Render(a.Description))
		}
		sections = append(sections, "", components.Card("Новые награды!\n"+strings.Join(lines, "\n"), cw))
	}

	sections = append(sections, "", components.Card(s.renderReview(), cw))

	switch s.tutorState {
	case tutorLoading:
		sections = append(sections, "", theme.Hint.Render("Сова думает..."))
	case tutorFailed:
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.tutorErr))
	}

	return components.Center(strings.Join(sections, "\n"), width, height)
}

func (s *ResultsScreen) renderReview() string {
	var b strings.Builder
	if s.explanation != nil && s.explanation.Encouragement != "" {
		b.WriteString(theme.Points.Render("🦉 "+s.explanation.Encouragement) + "\n\n")
	}

	for i, r := range s.result.Review {
		if i > 0 {
			b.WriteString("\n")
		}
		mark := theme.Correct.Render("✓")
		if !r.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, i+1, r.Question.Prompt)
		fmt.Fprintf(&b, "     Твой ответ: %s\n", r.Answer)
		if r.Correct {
			continue
		}
		fmt.Fprintf(&b, "     Правильный ответ: %s\n", r.Question.CorrectAnswer)
		if s.explanation != nil {
			if text, ok := s.explanation.ByQuestion[r.Question.ID]; ok {
				b.WriteString(theme.Hint.Render("     "+text) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
