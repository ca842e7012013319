package play

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func startedGame(t *testing.T, questID int) *quest.Game {
	t.Helper()
	g := quest.NewGame(catalog.Builtin())
	if err := g.Login(context.Background(), "Маша"); err != nil {
		t.Fatal(err)
	}
	if err := g.StartQuest(questID); err != nil {
		t.Fatal(err)
	}
	return g
}

func send(s screen.Screen, msgs ...tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, m := range msgs {
		s, cmd = s.Update(m)
	}
	return s, cmd
}

func TestPlayThroughQuest(t *testing.T) {
	g := startedGame(t, 1)
	s := New(g, nil)

	if s.index != 0 || !s.question.IsChoice() {
		t.Fatalf("expected first choice question, got index %d", s.index)
	}

	// 5 + 3: option 3 is "8".
	send(s, keyPress('3'), enter())
	if s.index != 1 {
		t.Fatalf("expected second question, got %d", s.index)
	}

	// 10 - 4: option 3 is "6".
	send(s, keyPress('3'), enter())
	if s.index != 2 || s.question.IsChoice() {
		t.Fatalf("expected text question, got index %d", s.index)
	}

	_, cmd := send(s, keyPress('6'), enter())
	if cmd == nil {
		t.Fatal("expected replace command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Результаты" {
		t.Errorf("expected results screen, got %q", msg.Screen.Title())
	}

	if g.Phase() != quest.PhaseResults {
		t.Errorf("expected results phase, got %v", g.Phase())
	}
	res, _ := g.Result()
	if res.Score.Correct != 3 || res.Score.EarnedPoints != 100 {
		t.Errorf("unexpected score %+v", res.Score)
	}
}

func TestEmptyTextAnswerShowsToast(t *testing.T) {
	g := startedGame(t, 1)
	s := New(g, nil)
	send(s, enter(), enter())

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected toast expiry command")
	}
	if !s.toast.Visible() {
		t.Error("expected a warning toast")
	}
	if len(g.Answers()) != 2 {
		t.Errorf("empty answer must not be recorded, got %d answers", len(g.Answers()))
	}
	if g.Phase() != quest.PhaseAnswering {
		t.Errorf("expected answering, got %v", g.Phase())
	}
}

func TestBackAbandons(t *testing.T) {
	g := startedGame(t, 2)
	s := New(g, nil)
	send(s, enter())

	cmd := s.Back()
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if g.Phase() != quest.PhaseBrowsing {
		t.Errorf("expected browsing after abandon, got %v", g.Phase())
	}
	u, _ := g.User()
	if u.Points != 0 {
		t.Errorf("abandoned attempt must not score, got %d points", u.Points)
	}
	if s.Back() != nil {
		t.Error("second back should be a no-op")
	}
}

func TestViewShowsProgress(t *testing.T) {
	g := startedGame(t, 3)
	s := New(g, nil)
	send(s, enter())

	view := s.View(100, 30)
	for _, want := range []string{"Космическое путешествие", "2/3", "Сколько планет"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
