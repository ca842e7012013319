package login

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Главная" }

func typeText(s *LoginScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newTestLogin() (*LoginScreen, *quest.Game, *int) {
	g := quest.NewGame(catalog.Builtin())
	calls := 0
	s := New(g, func() screen.Screen {
		calls++
		return &stubScreen{}
	})
	return s, g, &calls
}

func TestLoginReplacesWithHome(t *testing.T) {
	s, g, calls := newTestLogin()
	typeText(s, "  Маша ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	u, ok := g.User()
	if !ok || u.Name != "Маша" {
		t.Errorf("expected trimmed name, got %q", u.Name)
	}
	if *calls != 1 {
		t.Errorf("expected factory called once, got %d", *calls)
	}

	if _, again := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); again != nil {
		t.Error("second enter should do nothing")
	}
}

func TestEmptyNameWarns(t *testing.T) {
	s, g, calls := newTestLogin()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected toast command")
	}
	if !s.toast.Visible() {
		t.Error("expected warning toast")
	}
	if g.Phase() != quest.PhaseAuth || *calls != 0 {
		t.Error("empty name must not log in")
	}
}

func TestRegisterTab(t *testing.T) {
	s, g, _ := newTestLogin()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Title() != "Регистрация" {
		t.Fatalf("expected register tab, got %q", s.Title())
	}

	typeText(s, "Петя")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	u, ok := g.User()
	if !ok || u.Name != "Петя" {
		t.Errorf("register should log in, got %q", u.Name)
	}
}
