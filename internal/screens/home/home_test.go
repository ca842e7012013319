package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
)

func newTestHome(t *testing.T) *HomeScreen {
	t.Helper()
	g := quest.NewGame(catalog.Builtin())
	if err := g.Login(context.Background(), "Маша"); err != nil {
		t.Fatal(err)
	}
	return New(Deps{Game: g})
}

// selectItem moves the cursor to index i and presses enter.
func selectItem(h *HomeScreen, i int) tea.Cmd {
	for j := 0; j < i; j++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMenuOpensScreens(t *testing.T) {
	tests := []struct {
		index int
		title string
	}{
		{0, "Квесты"},
		{1, "Достижения"},
		{2, "Профиль"},
		{3, "Помощь"},
		{4, "История"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			h := newTestHome(t)
			cmd := selectItem(h, tt.index)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			msg, ok := cmd().(router.PushScreenMsg)
			if !ok {
				t.Fatal("expected PushScreenMsg")
			}
			if msg.Screen.Title() != tt.title {
				t.Errorf("expected %q, got %q", tt.title, msg.Screen.Title())
			}
		})
	}
}

func TestExitQuits(t *testing.T) {
	h := newTestHome(t)
	cmd := selectItem(h, 5)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestMascotVariant(t *testing.T) {
	u := quest.User{Name: "Маша"}
	if mascotFor(u, 3) != MascotIdle {
		t.Error("expected idle mascot for a new player")
	}
	u.Achievements = []string{catalog.AchievementFirstQuest}
	u.CompletedQuests = []int{1}
	if mascotFor(u, 3) != MascotCelebrating {
		t.Error("expected celebrating mascot after a badge")
	}
	u.CompletedQuests = []int{1, 2, 3}
	if mascotFor(u, 3) != MascotChampion {
		t.Error("expected champion mascot after every quest")
	}
}
