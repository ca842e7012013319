package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names of the journal.
const (
	loginEventsTable       = "login_events"
	attemptEventsTable     = "attempt_events"
	achievementEventsTable = "achievement_events"
	llmRequestEventsTable  = "llm_request_events"
)

// eventTable builds a table carrying the base columns every event shares:
// an auto-increment id, the unique global sequence and the UTC timestamp,
// followed by the event's own columns. Sequence and timestamp are indexed.
func eventTable(name string, cols ...*schema.Column) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	seq := &schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}
	ts := &schema.Column{Name: "timestamp", Type: field.TypeTime}

	t := &schema.Table{
		Name:       name,
		Columns:    append([]*schema.Column{id, seq, ts}, cols...),
		PrimaryKey: []*schema.Column{id},
	}
	t.Indexes = []*schema.Index{
		{Name: name + "_sequence", Columns: []*schema.Column{seq}},
		{Name: name + "_timestamp", Columns: []*schema.Column{ts}},
	}
	return t
}

func stringColumn(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Default: ""}
}

func intColumn(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeInt, Default: 0}
}

// index adds a non-unique index on the named column.
func index(t *schema.Table, column string) {
	for _, c := range t.Columns {
		if c.Name == column {
			t.Indexes = append(t.Indexes, &schema.Index{
				Name:    t.Name + "_" + column,
				Columns: []*schema.Column{c},
			})
			return
		}
	}
}

// journalTables returns the schema of every event table.
func journalTables() []*schema.Table {
	login := eventTable(loginEventsTable,
		stringColumn("session_id"),
		stringColumn("player_name"),
	)
	index(login, "player_name")

	attempt := eventTable(attemptEventsTable,
		stringColumn("session_id"),
		stringColumn("player_name"),
		intColumn("quest_id"),
		stringColumn("quest_title"),
		intColumn("correct_count"),
		intColumn("total_questions"),
		&schema.Column{Name: "percentage", Type: field.TypeFloat64, Default: 0},
		intColumn("earned_points"),
		intColumn("grade"),
		&schema.Column{Name: "answers", Type: field.TypeString, Size: 1 << 16, Default: "[]"},
		&schema.Column{Name: "first_completion", Type: field.TypeBool, Default: false},
	)
	index(attempt, "player_name")
	index(attempt, "quest_id")

	achievement := eventTable(achievementEventsTable,
		stringColumn("session_id"),
		stringColumn("player_name"),
		stringColumn("achievement_id"),
		intColumn("quest_id"),
	)
	index(achievement, "player_name")

	llmRequest := eventTable(llmRequestEventsTable,
		stringColumn("session_id"),
		stringColumn("provider"),
		stringColumn("model"),
		stringColumn("purpose"),
		intColumn("input_tokens"),
		intColumn("output_tokens"),
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool, Default: false},
		stringColumn("error_message"),
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
	)
	index(llmRequest, "purpose")
	index(llmRequest, "success")
	index(llmRequest, "session_id")

	return []*schema.Table{login, attempt, achievement, llmRequest}
}
