package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoiceNavigation(t *testing.T) {
	mc := NewMultiChoice("Сколько ног у паука?", []string{"6", "8", "10"})
	if mc.Chosen() != "6" {
		t.Fatalf("expected first option selected, got %q", mc.Chosen())
	}

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Chosen() != "10" {
		t.Errorf("expected cursor to stop at last option, got %q", mc.Chosen())
	}

	mc, _ = mc.Update(keyPress('2'))
	if mc.Chosen() != "8" {
		t.Errorf("expected digit shortcut to select 8, got %q", mc.Chosen())
	}

	mc, _ = mc.Update(keyPress('9'))
	if mc.Chosen() != "8" {
		t.Errorf("out of range digit should be ignored, got %q", mc.Chosen())
	}
}

func TestMultiChoiceEmpty(t *testing.T) {
	mc := NewMultiChoice("?", nil)
	if mc.Chosen() != "" {
		t.Errorf("expected empty choice, got %q", mc.Chosen())
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected to skip disabled item, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestTabsWrap(t *testing.T) {
	tabs := NewTabs("Вход", "Регистрация")
	tabs, changed := tabs.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !changed || tabs.Active != 1 {
		t.Fatalf("expected tab 1, got %d", tabs.Active)
	}
	tabs, _ = tabs.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if tabs.Active != 0 {
		t.Errorf("expected wrap to tab 0, got %d", tabs.Active)
	}
	_, changed = tabs.Update(keyPress('x'))
	if changed {
		t.Error("unrelated key should not switch tabs")
	}
}

func TestToastExpiry(t *testing.T) {
	var toast Toast
	toast, cmd := toast.Show("Введите имя", ToastError)
	if cmd == nil {
		t.Fatal("expected expiry command")
	}
	if !toast.Visible() || !strings.Contains(toast.View(), "Введите имя") {
		t.Fatal("expected toast to be visible")
	}

	first := toast.seq
	toast, _ = toast.Show("Ещё раз", ToastInfo)

	// The first message's tick must not hide the second message.
	toast = toast.Update(ToastExpiredMsg{Seq: first})
	if !toast.Visible() {
		t.Fatal("stale expiry hid a newer toast")
	}

	toast = toast.Update(ToastExpiredMsg{Seq: toast.seq})
	if toast.Visible() {
		t.Error("expected toast hidden after expiry")
	}
	if toast.View() != "" {
		t.Error("hidden toast should render empty")
	}
}

func TestStepBarCaption(t *testing.T) {
	bar := NewStepBar("Вопрос", 2, 3, 40)
	if !strings.Contains(bar.View(), "2/3") {
		t.Error("expected 2/3 caption")
	}
	if NewStepBar("", 0, 0, 10).Percent != 0 {
		t.Error("zero total should give zero percent")
	}
}
