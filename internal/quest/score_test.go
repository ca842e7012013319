package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/questland/internal/catalog"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		mark int
	}{
		{100, 5},
		{90, 5},
		{89.9, 4},
		{75, 4},
		{74.9, 3},
		{60, 3},
		{59.9, 2},
		{0, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mark, GradeFor(tt.pct).Mark, "GradeFor(%v)", tt.pct)
	}
	assert.Equal(t, "2 (Попробуй ещё раз!)", GradeFor(10).String())
	assert.Equal(t, "4 (Хорошо!)", GradeFor(80).Label)
}

func TestScoreQuestMissingAnswers(t *testing.T) {
	q, _ := catalog.Builtin().Quest(1)
	s := ScoreQuest(q, []string{q.Questions[0].CorrectAnswer})

	assert.Equal(t, 1, s.Correct)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 33, s.EarnedPoints)
	assert.False(t, s.Perfect())

	review := Review(q, []string{q.Questions[0].CorrectAnswer})
	assert.True(t, review[0].Correct)
	assert.False(t, review[1].Correct)
	assert.Empty(t, review[2].Answer)
}

func TestScoreEmptyQuest(t *testing.T) {
	s := ScoreQuest(catalog.Quest{Points: 100}, nil)
	assert.Zero(t, s.Percentage)
	assert.Zero(t, s.EarnedPoints)
	assert.False(t, s.Perfect())
}

func TestLevelProgress(t *testing.T) {
	u := newUser("a")
	assert.Zero(t, u.LevelProgress())
	u.Points = 250
	assert.InDelta(t, 0.5, u.LevelProgress(), 1e-9)
	u.Points = 900
	assert.Equal(t, 1.0, u.LevelProgress())
}
