package app

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/router"
	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/screens/home"
	"github.com/abhisek/questland/internal/screens/login"
	"github.com/abhisek/questland/internal/screens/results"
	"github.com/abhisek/questland/internal/screens/welcome"
	"github.com/abhisek/questland/internal/store"
	"github.com/abhisek/questland/internal/ui/layout"
)

// Options configures the TUI. Game is required; the rest may be zero.
type Options struct {
	Game      *quest.Game
	EventRepo store.EventRepo
	Explainer results.Explainer
	Logger    *slog.Logger

	// SkipSplash starts on the login screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	game   *quest.Game
	logger *slog.Logger
	width  int
	height int
}

// newAppModel creates the model with the splash (or login) screen on top.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	deps := home.Deps{
		Game:      opts.Game,
		EventRepo: opts.EventRepo,
		Explainer: opts.Explainer,
	}
	loginFactory := func() screen.Screen {
		return login.New(opts.Game, func() screen.Screen { return home.New(deps) })
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = loginFactory()
	} else {
		first = welcome.New(loginFactory)
	}

	return AppModel{
		router: router.New(first),
		game:   opts.Game,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("quit", "phase", m.game.Phase().String())
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok {
				return m, bh.Back()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.logger.Debug("push screen", "title", msg.Screen.Title())
	case router.ReplaceScreenMsg:
		m.logger.Debug("replace screen", "title", msg.Screen.Title())
	case router.PopScreenMsg:
		m.logger.Debug("pop screen", "depth", m.router.Depth())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := strings.Join(m.router.Trail(2), " › ")

	var player string
	var points int
	if u, ok := m.game.User(); ok {
		player, points = u.Name, u.Points
	}
	header := layout.RenderHeader(title, player, points, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Назад"},
			{Key: "Ctrl+C", Description: "Выход"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Дальше"},
		{Key: "Ctrl+C", Description: "Выход"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Game == nil {
		return fmt.Errorf("app: game is required")
	}
	m := newAppModel(opts)
	m.logger.Info("tui started", "tutor", opts.Explainer != nil, "journal", opts.EventRepo != nil)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
