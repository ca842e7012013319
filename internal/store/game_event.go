package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

func (r *eventRepo) AppendLoginEvent(ctx context.Context, data LoginEventData) error {
	err := r.insert(ctx, loginEventsTable,
		[]string{"session_id", "player_name"},
		[]any{data.SessionID, data.PlayerName},
	)
	if err != nil {
		return fmt.Errorf("save login event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	answers := data.Answers
	if answers == nil {
		answers = []string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	err = r.insert(ctx, attemptEventsTable,
		attemptColumns,
		[]any{
			data.SessionID,
			data.PlayerName,
			data.QuestID,
			data.QuestTitle,
			data.CorrectCount,
			data.TotalQuestions,
			data.Percentage,
			data.EarnedPoints,
			data.Grade,
			string(answersJSON),
			data.FirstCompletion,
		},
	)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	err := r.insert(ctx, achievementEventsTable,
		achievementColumns,
		[]any{data.SessionID, data.PlayerName, data.AchievementID, data.QuestID},
	)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

var attemptColumns = []string{
	"session_id", "player_name", "quest_id", "quest_title",
	"correct_count", "total_questions", "percentage", "earned_points",
	"grade", "answers", "first_completion",
}

var achievementColumns = []string{"session_id", "player_name", "achievement_id", "quest_id"}

func (r *eventRepo) QueryLoginEvents(ctx context.Context, opts QueryOpts) ([]LoginEvent, error) {
	query, args := selectEvents(loginEventsTable, opts, true, "session_id", "player_name")

	var out []LoginEvent
	err := r.queryRows(ctx, query, args, func(rows *sql.Rows) error {
		var e LoginEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.PlayerName); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query login events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEvent, error) {
	query, args := selectEvents(attemptEventsTable, opts, true, attemptColumns...)

	var out []AttemptEvent
	err := r.queryRows(ctx, query, args, func(rows *sql.Rows) error {
		var (
			e       AttemptEvent
			answers string
		)
		err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.PlayerName, &e.QuestID, &e.QuestTitle,
			&e.CorrectCount, &e.TotalQuestions, &e.Percentage, &e.EarnedPoints,
			&e.Grade, &answers, &e.FirstCompletion,
		)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(answers), &e.Answers); err != nil {
			return fmt.Errorf("decode answers of event %d: %w", e.ID, err)
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEvent, error) {
	query, args := selectEvents(achievementEventsTable, opts, true, achievementColumns...)

	var out []AchievementEvent
	err := r.queryRows(ctx, query, args, func(rows *sql.Rows) error {
		var e AchievementEvent
		err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.PlayerName, &e.AchievementID, &e.QuestID,
		)
		if err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}
	return out, nil
}
