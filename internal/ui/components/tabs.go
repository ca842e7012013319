package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/questland/internal/ui/theme"
)

// Tabs is a horizontal tab switcher driven by tab and shift+tab. Arrow keys
// are left to the focused input.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates tabs with the first label active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update switches tabs. changed reports whether the active tab moved.
func (t Tabs) Update(msg tea.Msg) (tabs Tabs, changed bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Labels) == 0 {
		return t, false
	}

	prev := t.Active
	switch kmsg.String() {
	case "tab":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	}
	return t, t.Active != prev
}

// View renders the tab row.
func (t Tabs) View() string {
	active := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Background(theme.BgCard).
		Padding(0, 2)

	parts := make([]string, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts[i] = active.Render(l)
		} else {
			parts[i] = inactive.Render(l)
		}
	}
	return strings.Join(parts, " ")
}
