package store

import (
	"context"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"
)

// PlayerStats folds the attempt, achievement and login tables into one
// summary per player name.
func (r *eventRepo) PlayerStats(ctx context.Context) ([]PlayerStats, error) {
	attempts, err := r.QueryAttemptEvents(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}
	achievements, err := r.QueryAchievementEvents(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}
	logins, err := r.QueryLoginEvents(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}

	byName := map[string]*PlayerStats{}
	get := func(name string) *PlayerStats {
		ps, ok := byName[name]
		if !ok {
			ps = &PlayerStats{PlayerName: name}
			byName[name] = ps
		}
		return ps
	}

	for _, l := range logins {
		ps := get(l.PlayerName)
		ps.Sessions++
		if l.Timestamp.After(ps.LastPlayed) {
			ps.LastPlayed = l.Timestamp
		}
	}

	quests := map[string]map[int]bool{}
	for _, a := range attempts {
		ps := get(a.PlayerName)
		ps.Attempts++
		ps.TotalPoints += a.EarnedPoints
		if a.TotalQuestions > 0 && a.CorrectCount == a.TotalQuestions {
			ps.PerfectAttempts++
		}
		if a.Percentage > ps.BestPercentage {
			ps.BestPercentage = a.Percentage
		}
		if a.Timestamp.After(ps.LastPlayed) {
			ps.LastPlayed = a.Timestamp
		}
		if quests[a.PlayerName] == nil {
			quests[a.PlayerName] = map[int]bool{}
		}
		quests[a.PlayerName][a.QuestID] = true
	}

	earned := map[string]map[string]bool{}
	for _, a := range achievements {
		if earned[a.PlayerName] == nil {
			earned[a.PlayerName] = map[string]bool{}
		}
		earned[a.PlayerName][a.AchievementID] = true
	}

	out := make([]PlayerStats, 0, len(byName))
	for name, ps := range byName {
		ps.QuestsCompleted = len(quests[name])
		ps.Achievements = len(earned[name])
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].PlayerName < out[j].PlayerName
	})

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// TotalEvents counts every stored event across the journal tables.
func (s *Store) TotalEvents(ctx context.Context) (int, error) {
	total := 0
	for _, t := range journalTables() {
		b := builder()
		query, args := b.Select(entsql.Count("*")).From(b.Table(t.Name)).Query()
		var n int
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			return 0, fmt.Errorf("count %s: %w", t.Name, err)
		}
		total += n
	}
	return total, nil
}
