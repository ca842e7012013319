package achievements

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
)

func TestUnlockedCount(t *testing.T) {
	ctx := context.Background()
	g := quest.NewGame(catalog.Builtin())
	if err := g.Login(ctx, "Маша"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(New(g).View(100, 40), "Получено 0 из 3") {
		t.Error("expected no badges for a new player")
	}

	if err := g.StartQuest(1); err != nil {
		t.Fatal(err)
	}
	for _, a := range []string{"8", "6", "6"} {
		if _, err := g.SubmitAnswer(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	view := New(g).View(100, 40)
	if !strings.Contains(view, "Получено 2 из 3") {
		t.Error("expected first quest and perfect score badges")
	}
	if !strings.Contains(view, "🔒 Исследователь") {
		t.Error("expected locked explorer badge")
	}
}
