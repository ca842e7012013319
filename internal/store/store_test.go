package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Each test gets its own named in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestOpenFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questland.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"login_events", "attempt_events", "achievement_events",
		"llm_request_events", "global_sequence",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func seedAttempts(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()

	mustLogin := func(session, name string) {
		if err := repo.AppendLoginEvent(ctx, LoginEventData{SessionID: session, PlayerName: name}); err != nil {
			t.Fatalf("append login: %v", err)
		}
	}
	mustAttempt := func(d AttemptEventData) {
		if err := repo.AppendAttemptEvent(ctx, d); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	mustLogin("s1", "Маша")
	mustAttempt(AttemptEventData{
		SessionID: "s1", PlayerName: "Маша", QuestID: 1, QuestTitle: "Приключение математика",
		CorrectCount: 3, TotalQuestions: 3, Percentage: 100, EarnedPoints: 100, Grade: 5,
		Answers: []string{"8", "6", "6"}, FirstCompletion: true,
	})
	mustAttempt(AttemptEventData{
		SessionID: "s1", PlayerName: "Маша", QuestID: 1, QuestTitle: "Приключение математика",
		CorrectCount: 1, TotalQuestions: 3, Percentage: 100.0 / 3, EarnedPoints: 33, Grade: 2,
		Answers: []string{"8", "5", "1"},
	})
	mustLogin("s2", "Петя")
	mustAttempt(AttemptEventData{
		SessionID: "s2", PlayerName: "Петя", QuestID: 3, QuestTitle: "Космическое путешествие",
		CorrectCount: 2, TotalQuestions: 3, Percentage: 200.0 / 3, EarnedPoints: 100, Grade: 3,
		Answers: []string{"Меркурий", "8", "Марс"}, FirstCompletion: true,
	})

	for _, id := range []string{"first_quest", "perfect_score"} {
		err := repo.AppendAchievementEvent(ctx, AchievementEventData{
			SessionID: "s1", PlayerName: "Маша", AchievementID: id, QuestID: 1,
		})
		if err != nil {
			t.Fatalf("append achievement: %v", err)
		}
	}
}

func TestAttemptEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedAttempts(t, repo)

	events, err := repo.QueryAttemptEvents(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d attempts, want 3", len(events))
	}

	// Newest first.
	newest := events[0]
	if newest.PlayerName != "Петя" || newest.QuestID != 3 {
		t.Errorf("newest = %+v", newest.AttemptEventData)
	}
	if len(newest.Answers) != 3 || newest.Answers[0] != "Меркурий" {
		t.Errorf("answers = %v", newest.Answers)
	}
	if !newest.FirstCompletion {
		t.Error("expected first completion flag")
	}
	if newest.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("events not ordered by sequence desc: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
}

func TestQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedAttempts(t, repo)
	ctx := context.Background()

	masha, err := repo.QueryAttemptEvents(ctx, QueryOpts{Player: "Маша"})
	if err != nil {
		t.Fatalf("query player: %v", err)
	}
	if len(masha) != 2 {
		t.Errorf("player filter: got %d, want 2", len(masha))
	}

	limited, err := repo.QueryAttemptEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit: got %d, want 1", len(limited))
	}

	after, err := repo.QueryAttemptEvents(ctx, QueryOpts{After: masha[0].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].PlayerName != "Петя" {
		t.Errorf("after: got %+v", after)
	}

	before, err := repo.QueryAttemptEvents(ctx, QueryOpts{Before: masha[0].Sequence})
	if err != nil {
		t.Fatalf("query before: %v", err)
	}
	if len(before) != 1 {
		t.Errorf("before: got %d, want 1", len(before))
	}

	future, err := repo.QueryAttemptEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("from future: got %d, want 0", len(future))
	}

	logins, err := repo.QueryLoginEvents(ctx, QueryOpts{Player: "Петя"})
	if err != nil {
		t.Fatalf("query logins: %v", err)
	}
	if len(logins) != 1 || logins[0].SessionID != "s2" {
		t.Errorf("logins = %+v", logins)
	}
}

func TestPlayerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedAttempts(t, repo)

	stats, err := repo.PlayerStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d players, want 2", len(stats))
	}

	masha := stats[0]
	if masha.PlayerName != "Маша" {
		t.Fatalf("first player = %q, want Маша (most points)", masha.PlayerName)
	}
	if masha.Attempts != 2 || masha.QuestsCompleted != 1 || masha.TotalPoints != 133 {
		t.Errorf("masha = %+v", masha)
	}
	if masha.PerfectAttempts != 1 || masha.BestPercentage != 100 || masha.Achievements != 2 {
		t.Errorf("masha = %+v", masha)
	}
	if masha.Sessions != 1 || masha.LastPlayed.IsZero() {
		t.Errorf("masha = %+v", masha)
	}

	petya := stats[1]
	if petya.Attempts != 1 || petya.TotalPoints != 100 || petya.Achievements != 0 {
		t.Errorf("petya = %+v", petya)
	}
}

func TestPlayerStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().PlayerStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("got %d players, want 0", len(stats))
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, model := range []string{"claude-haiku-4-5", "claude-haiku-4-5", "gpt-4o-mini"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			SessionID:    "s-1",
			Provider:     "test",
			Model:        model,
			Purpose:      "explain",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(100 * (i + 1)),
			Success:      i != 2,
			ErrorMessage: map[bool]string{true: "", false: "boom"}[i != 2],
			RequestBody:  "[user]\nпочему?",
			ResponseBody: `{"explanations":[]}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Success || events[0].ErrorMessage != "boom" {
		t.Errorf("newest event = %+v", events[0].LLMRequestEventData)
	}

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.SessionID != "s-1" || e.RequestBody != "[user]\nпочему?" || e.ResponseBody != `{"explanations":[]}` {
		t.Errorf("get = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d purposes, want 1", len(byPurpose))
	}
	u := byPurpose[0]
	if u.Purpose != "explain" || u.Calls != 3 || u.InputTokens != 300 || u.OutputTokens != 150 || u.AvgLatencyMs != 200 {
		t.Errorf("usage = %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-haiku-4-5" || byModel[0].Calls != 2 {
		t.Errorf("by model = %+v", byModel)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	seedAttempts(t, repo)

	n, err := s.TotalEvents(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if n != 7 {
		t.Errorf("total events = %d, want 7", n)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, err = s.TotalEvents(ctx)
	if err != nil {
		t.Fatalf("total after reset: %v", err)
	}
	if n != 0 {
		t.Errorf("total events after reset = %d, want 0", n)
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}
