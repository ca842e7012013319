package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/questland/internal/llm"
	"github.com/abhisek/questland/internal/quest"
)

// Purpose is the LLM purpose label recorded in the journal.
const Purpose = "explain"

// ErrNoMistakes is returned when an attempt has nothing to explain.
var ErrNoMistakes = errors.New("no mistakes to explain")

// Config tunes tutor requests.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one Explain call including retries. Zero means no
	// extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns the tutor defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3, Timeout: 30 * time.Second}
}

// Explanation is the tutor's feedback for one finished attempt.
type Explanation struct {
	Encouragement string
	// ByQuestion maps question id to its explanation.
	ByQuestion map[int]string
}

// Service explains wrong answers with an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Encouragement string `json:"encouragement"`
	Explanations  []struct {
		QuestionID int    `json:"question_id"`
		Text       string `json:"text"`
	} `json:"explanations"`
}

// Explain asks the provider to explain every wrong answer of res.
// Explanations for question ids that were not mistakes are dropped.
func (s *Service) Explain(ctx context.Context, res *quest.Result) (*Explanation, error) {
	mistakes := res.Mistakes()
	if len(mistakes) == 0 {
		return nil, ErrNoMistakes
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	ctx = llm.WithSession(llm.WithPurpose(ctx, Purpose), res.SessionID)
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(res)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explain mistakes: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	wrong := make(map[int]bool, len(mistakes))
	for _, m := range mistakes {
		wrong[m.Question.ID] = true
	}

	exp := &Explanation{
		Encouragement: out.Encouragement,
		ByQuestion:    make(map[int]string, len(out.Explanations)),
	}
	for _, e := range out.Explanations {
		if wrong[e.QuestionID] && e.Text != "" {
			exp.ByQuestion[e.QuestionID] = e.Text
		}
	}
	return exp, nil
}
