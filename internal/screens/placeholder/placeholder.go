package placeholder

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/screen"
	"github.com/abhisek/questland/internal/ui/components"
	"github.com/abhisek/questland/internal/ui/layout"
	"github.com/abhisek/questland/internal/ui/theme"
)

const sleepyOwl = ` ,_,
(-,-)
/)  )
 "" "`

// Unavailable stands in for a screen whose backing service is missing,
// e.g. history when the journal could not be opened.
type Unavailable struct {
	title  string
	reason string
}

var _ screen.Screen = (*Unavailable)(nil)

// New returns a notice titled title that explains reason to the player.
func New(title, reason string) *Unavailable {
	return &Unavailable{title: title, reason: reason}
}

func (u *Unavailable) Init() tea.Cmd                           { return nil }
func (u *Unavailable) Update(tea.Msg) (screen.Screen, tea.Cmd) { return u, nil }
func (u *Unavailable) Title() string                           { return u.title }

func (u *Unavailable) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Назад"}}
}

func (u *Unavailable) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := strings.Join([]string{
		theme.Hint.Render(sleepyOwl),
		"",
		theme.Body.Render(u.reason),
		theme.Hint.Render("Сова пока дремлет. Загляни сюда позже."),
	}, "\n")
	return components.Center(components.Card(body, cw), width, height)
}
