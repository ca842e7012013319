package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Player string    // exact player name; ignored for LLM events
}

// LoginEventData captures a player entering a session.
type LoginEventData struct {
	SessionID  string
	PlayerName string
}

// AttemptEventData captures one finished quest attempt.
type AttemptEventData struct {
	SessionID       string
	PlayerName      string
	QuestID         int
	QuestTitle      string
	CorrectCount    int
	TotalQuestions  int
	Percentage      float64
	EarnedPoints    int
	Grade           int
	Answers         []string
	FirstCompletion bool
}

// AchievementEventData captures an achievement awarded after an attempt.
type AchievementEventData struct {
	SessionID     string
	PlayerName    string
	AchievementID string
	QuestID       int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	// SessionID links the call to the login session it explained; empty
	// for calls made outside a game.
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventHeader holds the columns every stored event has.
type EventHeader struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LoginEvent is a stored login.
type LoginEvent struct {
	EventHeader
	LoginEventData
}

// AttemptEvent is a stored quest attempt.
type AttemptEvent struct {
	EventHeader
	AttemptEventData
}

// AchievementEvent is a stored achievement award.
type AchievementEvent struct {
	EventHeader
	AchievementEventData
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	EventHeader
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// PlayerStats summarizes the journal for one player name across sessions.
type PlayerStats struct {
	PlayerName      string
	Sessions        int
	Attempts        int
	QuestsCompleted int // distinct quest ids
	PerfectAttempts int
	TotalPoints     int
	BestPercentage  float64
	Achievements    int // distinct achievement ids
	LastPlayed      time.Time
}

// EventRepo provides append and query access to the journal.
type EventRepo interface {
	AppendLoginEvent(ctx context.Context, data LoginEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryLoginEvents(ctx context.Context, opts QueryOpts) ([]LoginEvent, error)
	QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEvent, error)
	QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEvent, error)
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// PlayerStats aggregates attempts and achievements per player name,
	// ordered by total points descending.
	PlayerStats(ctx context.Context) ([]PlayerStats, error)

	// Reset deletes every event and rewinds the global sequence.
	Reset(ctx context.Context) error
}
