package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/store"
)

var (
	// ErrEmptyName is a user warning: the login name was blank.
	ErrEmptyName = errors.New("name is empty")

	// ErrEmptyAnswer is a user warning: the submitted answer was blank.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrNotLoggedIn is returned by operations that need a player.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrUnknownQuest is returned when a quest id is not in the catalog.
	ErrUnknownQuest = catalog.ErrQuestNotFound

	// ErrWrongPhase is returned when an operation does not apply to the
	// current phase.
	ErrWrongPhase = errors.New("operation not allowed in current phase")
)

// Phase is the state of the quest session state machine.
type Phase int

const (
	PhaseAuth      Phase = iota // no player yet
	PhaseBrowsing               // player picks a quest
	PhaseAnswering              // active quest, question index in range
	PhaseResults                // active quest, all questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseAuth:
		return "auth"
	case PhaseBrowsing:
		return "browsing"
	case PhaseAnswering:
		return "answering"
	case PhaseResults:
		return "results"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Journal receives a copy of every login, attempt and achievement.
// store.EventRepo satisfies it.
type Journal interface {
	AppendLoginEvent(ctx context.Context, data store.LoginEventData) error
	AppendAttemptEvent(ctx context.Context, data store.AttemptEventData) error
	AppendAchievementEvent(ctx context.Context, data store.AchievementEventData) error
}

// Result is everything the results view needs about a finished attempt.
type Result struct {
	SessionID       string
	Quest           catalog.Quest
	Score           Score
	Grade           Grade
	Review          []QuestionResult
	FirstCompletion bool
	NewAchievements []catalog.Achievement
}

// Mistakes returns the review entries that were answered wrong.
func (r *Result) Mistakes() []QuestionResult {
	var out []QuestionResult
	for _, qr := range r.Review {
		if !qr.Correct {
			out = append(out, qr)
		}
	}
	return out
}

// Game is the quest session state machine. It is not safe for concurrent
// use; all calls are expected from a single event loop.
type Game struct {
	catalog *catalog.Catalog
	journal Journal
	logger  *slog.Logger

	sessionID string
	user      *User

	quest   *catalog.Quest
	index   int
	answers []string
	result  *Result
}

// Option configures a Game.
type Option func(*Game)

// WithJournal records logins, attempts and achievements to j.
func WithJournal(j Journal) Option {
	return func(g *Game) { g.journal = j }
}

// WithLogger sets the logger used for journal failures and transitions.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// NewGame creates a Game in the auth phase.
func NewGame(c *catalog.Catalog, opts ...Option) *Game {
	g := &Game{catalog: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	return g
}

// Catalog returns the catalog the game plays from.
func (g *Game) Catalog() *catalog.Catalog {
	return g.catalog
}

// Phase returns the current state.
func (g *Game) Phase() Phase {
	switch {
	case g.user == nil:
		return PhaseAuth
	case g.quest == nil:
		return PhaseBrowsing
	case g.result != nil:
		return PhaseResults
	default:
		return PhaseAnswering
	}
}

// SessionID identifies the current login; empty before login.
func (g *Game) SessionID() string {
	return g.sessionID
}

// User returns a copy of the player profile. ok is false before login.
func (g *Game) User() (u User, ok bool) {
	if g.user == nil {
		return User{}, false
	}
	return g.user.clone(), true
}

// Login creates the player. The name is trimmed; a blank name is rejected
// with ErrEmptyName and nothing changes.
func (g *Game) Login(ctx context.Context, name string) error {
	if g.user != nil {
		return ErrWrongPhase
	}
	name = catalog.TrimAnswer(name)
	if name == "" {
		return ErrEmptyName
	}

	g.user = newUser(name)
	g.sessionID = uuid.NewString()
	g.logger.Info("player logged in", "player", name, "session_id", g.sessionID)

	if g.journal != nil {
		err := g.journal.AppendLoginEvent(ctx, store.LoginEventData{
			SessionID:  g.sessionID,
			PlayerName: name,
		})
		if err != nil {
			g.logger.Warn("record login", "error", err)
		}
	}
	return nil
}

// Register is the sign-up path; a profile is just a name, so it is Login.
func (g *Game) Register(ctx context.Context, name string) error {
	return g.Login(ctx, name)
}

// StartQuest selects a quest and resets the answer sheet. Selecting a quest
// while another attempt is open abandons that attempt unscored.
func (g *Game) StartQuest(id int) error {
	if g.user == nil {
		return ErrNotLoggedIn
	}
	q, err := g.catalog.Quest(id)
	if err != nil {
		return err
	}

	g.quest = &q
	g.index = 0
	g.answers = nil
	g.result = nil
	g.logger.Debug("quest started", "quest_id", id, "session_id", g.sessionID)
	return nil
}

// ActiveQuest returns the selected quest while answering or viewing results.
func (g *Game) ActiveQuest() (catalog.Quest, bool) {
	if g.quest == nil {
		return catalog.Quest{}, false
	}
	return *g.quest, true
}

// CurrentQuestion returns the question awaiting an answer and its zero-based
// index. ok is false outside the answering phase.
func (g *Game) CurrentQuestion() (q catalog.Question, index int, ok bool) {
	if g.Phase() != PhaseAnswering {
		return catalog.Question{}, 0, false
	}
	return g.quest.Questions[g.index], g.index, true
}

// Answers returns a copy of the answers submitted so far.
func (g *Game) Answers() []string {
	return slices.Clone(g.answers)
}

// SubmitAnswer records the answer to the current question. A blank answer is
// rejected with ErrEmptyAnswer and nothing changes. When the answer completes
// the quest, the attempt is scored, points and achievements are applied to
// the player, and the result is returned; otherwise the result is nil.
func (g *Game) SubmitAnswer(ctx context.Context, value string) (*Result, error) {
	if g.Phase() != PhaseAnswering {
		if g.user == nil {
			return nil, ErrNotLoggedIn
		}
		return nil, ErrWrongPhase
	}
	if catalog.TrimAnswer(value) == "" {
		return nil, ErrEmptyAnswer
	}

	g.answers = append(g.answers, value)
	if g.index+1 < len(g.quest.Questions) {
		g.index++
		return nil, nil
	}

	g.index = len(g.quest.Questions)
	g.result = g.complete(ctx)
	return g.result, nil
}

// Result returns the scored attempt while in the results phase.
func (g *Game) Result() (*Result, bool) {
	if g.result == nil {
		return nil, false
	}
	return g.result, true
}

// Dismiss closes the results and returns to browsing.
func (g *Game) Dismiss() error {
	if g.Phase() != PhaseResults {
		return ErrWrongPhase
	}
	g.clearQuest()
	return nil
}

// Abandon leaves an unfinished quest without scoring it. In the results phase
// it behaves like Dismiss.
func (g *Game) Abandon() error {
	switch g.Phase() {
	case PhaseAnswering, PhaseResults:
		g.clearQuest()
		return nil
	default:
		return ErrWrongPhase
	}
}

func (g *Game) clearQuest() {
	g.quest = nil
	g.index = 0
	g.answers = nil
	g.result = nil
}

// complete scores the finished attempt and applies it to the player.
func (g *Game) complete(ctx context.Context) *Result {
	q := *g.quest
	score := ScoreQuest(q, g.answers)
	grade := GradeFor(score.Percentage)
	first := !g.user.HasCompleted(q.ID)

	g.user.Points += score.EarnedPoints
	awarded := g.user.award(q.ID, score)

	res := &Result{
		SessionID:       g.sessionID,
		Quest:           q,
		Score:           score,
		Grade:           grade,
		Review:          Review(q, g.answers),
		FirstCompletion: first,
	}
	for _, id := range awarded {
		if a, ok := g.catalog.Achievement(id); ok {
			res.NewAchievements = append(res.NewAchievements, a)
		} else {
			res.NewAchievements = append(res.NewAchievements, catalog.Achievement{ID: id, Name: id})
		}
	}

	g.logger.Info("quest completed",
		"quest_id", q.ID,
		"correct", score.Correct,
		"total", score.Total,
		"earned_points", score.EarnedPoints,
		"grade", grade.Mark,
		"achievements", awarded,
	)
	g.record(ctx, res)
	return res
}

func (g *Game) record(ctx context.Context, res *Result) {
	if g.journal == nil {
		return
	}
	err := g.journal.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID:       g.sessionID,
		PlayerName:      g.user.Name,
		QuestID:         res.Quest.ID,
		QuestTitle:      res.Quest.Title,
		CorrectCount:    res.Score.Correct,
		TotalQuestions:  res.Score.Total,
		Percentage:      res.Score.Percentage,
		EarnedPoints:    res.Score.EarnedPoints,
		Grade:           res.Grade.Mark,
		Answers:         slices.Clone(g.answers),
		FirstCompletion: res.FirstCompletion,
	})
	if err != nil {
		g.logger.Warn("record attempt", "quest_id", res.Quest.ID, "error", err)
	}

	for _, a := range res.NewAchievements {
		err := g.journal.AppendAchievementEvent(ctx, store.AchievementEventData{
			SessionID:     g.sessionID,
			PlayerName:    g.user.Name,
			AchievementID: a.ID,
			QuestID:       res.Quest.ID,
		})
		if err != nil {
			g.logger.Warn("record achievement", "achievement_id", a.ID, "error", err)
		}
	}
}
