package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

const (
	tabLogin = iota
	tabRegister
)

const maxNameLen = 32

// LoginScreen asks for the player's name. Both tabs lead to the same
// login; the register tab only changes the wording.
type LoginScreen struct {
	game        *quest.Game
	homeFactory func() screen.Screen
	tabs        components.Tabs
	input       components.TextInput
	toast       components.Toast
	done        bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen that replaces itself with homeFactory's screen
// after a successful login.
func New(game *quest.Game, homeFactory func() screen.Screen) *LoginScreen {
	return &LoginScreen{
		game:        game,
		homeFactory: homeFactory,
		tabs:        components.NewTabs("Вход", "Регистрация"),
		input:       components.NewTextInput("Как тебя зовут?", maxNameLen),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	if s.tabs.Active == tabRegister {
		return "Регистрация"
	}
	return "Вход"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Войти"},
		{Key: "Tab", Description: "Вход / Регистрация"},
		{Key: "Ctrl+C", Description: "Выход"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToastExpiredMsg:
		s.toast = s.toast.Update(msg)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.submit()
		}
		var changed bool
		if s.tabs, changed = s.tabs.Update(msg); changed {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.done {
		return nil
	}

	login := s.game.Login
	if s.tabs.Active == tabRegister {
		login = s.game.Register
	}

	if err := login(context.Background(), s.input.Value()); err != nil {
		text := "Не получилось войти"
		if errors.Is(err, quest.ErrEmptyName) {
			text = "Пожалуйста, введи своё имя"
		}
		var cmd tea.Cmd
		s.toast, cmd = s.toast.Show(text, components.ToastError)
		return cmd
	}

	s.done = true
	home := s.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := "Привет! Как тебя зовут?"
	if s.tabs.Active == tabRegister {
		heading = "Новый искатель приключений!"
	}

	sections := []string{
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.tabs.View()),
		"",
		theme.Title.Width(cw).Render(heading),
		"",
		components.Card(s.input.View(), cw),
	}

	sections = append(sections, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.toast.View()))

	return components.Center(strings.Join(sections, "\n"), width, height)
}
