package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/store"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

// pageSize bounds how many attempts the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptEvent
	// Achievements maps attemptKey to the badges earned by that attempt.
	Achievements map[string][]store.AchievementEvent
	Err          error
}

func attemptKey(sessionID string, questID int) string {
	return fmt.Sprintf("%s/%d", sessionID, questID)
}

// HistoryScreen lists past quest attempts from the journal, newest first.
type HistoryScreen struct {
	eventRepo    store.EventRepo
	catalog      *catalog.Catalog
	attempts     []store.AttemptEvent
	achievements map[string][]store.AchievementEvent
	selected     int
	expanded     map[int]bool
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, c *catalog.Catalog) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		catalog:   c,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := repo.QueryAttemptEvents(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		byAttempt := make(map[string][]store.AchievementEvent)
		achievements, err := repo.QueryAchievementEvents(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Attempts: attempts, Achievements: byAttempt}
		}
		for _, a := range achievements {
			k := attemptKey(a.SessionID, a.QuestID)
			byAttempt[k] = append(byAttempt[k], a)
		}
		return historyLoadedMsg{Attempts: attempts, Achievements: byAttempt}
	}
}

func (s *HistoryScreen) Title() string {
	return "История"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Подробнее"},
		{Key: "↑↓", Description: "Выбор"},
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.achievements = msg.Achievements
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nОшибка: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).
			Render("\n\n  Загружаем историю...")
	}
	if len(s.attempts) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Пока нет ни одной попытки. Выбери квест!")
	}

	var b strings.Builder
	b.WriteString("\n")
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  %s  %d/%d  %.0f%%  +%d  %s",
			prefix, a.Timestamp.Format("02.01.2006 15:04"), a.PlayerName, a.QuestTitle,
			a.CorrectCount, a.TotalQuestions, a.Percentage, a.EarnedPoints, a.Grade)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range s.details(a) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// details renders the expanded lines for one attempt: each answer, then the
// badges it earned.
func (s *HistoryScreen) details(a store.AttemptEvent) []string {
	var lines []string
	for i, ans := range a.Answers {
		lines = append(lines, fmt.Sprintf("    %d. %s", i+1, ans))
	}
	if a.FirstCompletion {
		lines = append(lines, "    Квест пройден впервые")
	}
	for _, ach := range s.achievements[attemptKey(a.SessionID, a.QuestID)] {
		name := ach.AchievementID
		if def, ok := s.catalog.Achievement(ach.AchievementID); ok {
			name = def.Icon + " " + def.Name
		}
		lines = append(lines, "    Награда: "+name)
	}
	return lines
}
