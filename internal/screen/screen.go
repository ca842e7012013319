package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/ui/layout"
)

// Screen is one page of the TUI. The app draws the header and footer;
// a screen renders only the area between them.
type Screen interface {
	// Init runs each time the screen is pushed or swapped in.
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	// Title names the screen in the header trail. Empty hides it.
	Title() string
}

// KeyHintProvider replaces the footer's default key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is implemented by screens that need to run game logic when
// the player presses Esc. The returned command replaces the default pop.
type BackHandler interface {
	Back() tea.Cmd
}
