package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
)

func TestProfileShowsProgress(t *testing.T) {
	ctx := context.Background()
	g := quest.NewGame(catalog.Builtin())
	if err := g.Login(ctx, "Маша"); err != nil {
		t.Fatal(err)
	}

	view := New(g).View(100, 40)
	for _, want := range []string{"Маша", "Уровень: 1", "0/500", "Пока ни одного"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if err := g.StartQuest(3); err != nil {
		t.Fatal(err)
	}
	for _, a := range []string{"Меркурий", "8", "Земля"} {
		if _, err := g.SubmitAnswer(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	view = New(g).View(100, 40)
	for _, want := range []string{"150/500", "Космическое путешествие"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
