package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/screen"
)

func typeText(m AppModel, s string) AppModel {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		m = updated.(AppModel)
	}
	return m
}

// press sends a key and feeds the resulting navigation message back in.
func press(t *testing.T, m AppModel, code rune) AppModel {
	t.Helper()
	updated, cmd := m.Update(tea.KeyPressMsg{Code: code})
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	updated, _ = m.Update(cmd())
	return updated.(AppModel)
}

func title(m AppModel) string {
	return m.router.Active().Title()
}

func TestLoginToQuestAndBack(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g, SkipSplash: true})

	if title(m) != "Вход" {
		t.Fatalf("expected login screen, got %q", title(m))
	}

	m = typeText(m, "Маша")
	m = press(t, m, tea.KeyEnter)
	if title(m) != "Главная" {
		t.Fatalf("expected home after login, got %q", title(m))
	}
	if g.Phase() != quest.PhaseBrowsing {
		t.Fatalf("expected browsing, got %v", g.Phase())
	}

	m = press(t, m, tea.KeyEnter) // Квесты
	if title(m) != "Квесты" {
		t.Fatalf("expected quest list, got %q", title(m))
	}

	m = press(t, m, tea.KeyEnter) // first quest
	if g.Phase() != quest.PhaseAnswering {
		t.Fatalf("expected answering, got %v", g.Phase())
	}
	if m.router.Depth() != 3 {
		t.Errorf("expected depth 3, got %d", m.router.Depth())
	}

	m = press(t, m, tea.KeyEscape)
	if g.Phase() != quest.PhaseBrowsing {
		t.Errorf("esc should abandon the quest, got %v", g.Phase())
	}
	if title(m) != "Квесты" {
		t.Errorf("expected quest list after abandon, got %q", title(m))
	}
}

func TestEmptyNameStaysOnLogin(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g, SkipSplash: true})

	m = typeText(m, "   ")
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(AppModel)

	if cmd == nil {
		t.Fatal("expected toast expiry command")
	}
	if title(m) != "Вход" {
		t.Errorf("expected to stay on login, got %q", title(m))
	}
	if g.Phase() != quest.PhaseAuth {
		t.Errorf("expected auth phase, got %v", g.Phase())
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g, SkipSplash: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g, SkipSplash: true})

	hints := m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[0].Description != "Войти" {
		t.Errorf("expected login hints, got %+v", hints)
	}
}

func TestSplashFirst(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g})
	var s screen.Screen = m.router.Active()
	if s.Title() != "" {
		t.Errorf("expected splash screen first, got %q", s.Title())
	}
}

func TestHomeGreetsPlayer(t *testing.T) {
	g := quest.NewGame(catalog.Builtin())
	m := newAppModel(Options{Game: g, SkipSplash: true})

	m = typeText(m, "Петя")
	m = press(t, m, tea.KeyEnter)

	if got := m.router.View(100, 34); !strings.Contains(got, "Привет, Петя!") {
		t.Error("expected greeting on the home screen")
	}
}
