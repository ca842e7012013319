package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questland/internal/ui/theme"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ToastExpiredMsg hides the toast with the matching sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// Toast is a transient one-line notification.
type Toast struct {
	Text string
	Kind ToastKind
	seq  int
}

// Show replaces the current message and schedules its expiry. An older
// expiry tick does not hide a newer message.
func (t Toast) Show(text string, kind ToastKind) (Toast, tea.Cmd) {
	t.seq++
	t.Text = text
	t.Kind = kind
	seq := t.seq
	return t, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update clears the toast when its expiry arrives.
func (t Toast) Update(msg tea.Msg) Toast {
	if m, ok := msg.(ToastExpiredMsg); ok && m.Seq == t.seq {
		t.Text = ""
	}
	return t
}

// Visible reports whether there is a message to show.
func (t Toast) Visible() bool {
	return t.Text != ""
}

// View renders the toast, or "" when hidden.
func (t Toast) View() string {
	if t.Text == "" {
		return ""
	}
	switch t.Kind {
	case ToastError:
		return theme.ToastError.Render(t.Text)
	case ToastSuccess:
		return theme.ToastSuccess.Render(t.Text)
	default:
		return theme.ToastInfo.Render(t.Text)
	}
}
