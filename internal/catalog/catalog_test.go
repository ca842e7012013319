package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	require.Len(t, c.Quests(), 3)
	require.Len(t, c.Achievements(), 3)
	assert.Equal(t, "v1.0.0", c.Version())

	q, err := c.Quest(3)
	require.NoError(t, err)
	assert.Equal(t, "Космическое путешествие", q.Title)
	assert.Equal(t, 150, q.Points)
	assert.Equal(t, DifficultyMedium, q.Difficulty)
	assert.Len(t, q.Questions, 3)

	_, err = c.Quest(42)
	assert.True(t, errors.Is(err, ErrQuestNotFound))

	a, ok := c.Achievement(AchievementPerfectScore)
	require.True(t, ok)
	assert.Equal(t, "Отличник", a.Name)

	_, ok = c.Achievement("nope")
	assert.False(t, ok)
}

func TestBuiltinChoiceQuestionsContainAnswer(t *testing.T) {
	for _, q := range Builtin().Quests() {
		for _, qu := range q.Questions {
			if !qu.IsChoice() {
				assert.Empty(t, qu.Options, "quest %d question %d", q.ID, qu.ID)
				continue
			}
			found := false
			for _, opt := range qu.Options {
				if qu.IsCorrect(opt) {
					found = true
				}
			}
			assert.True(t, found, "quest %d question %d", q.ID, qu.ID)
		}
	}
}

func TestMatchAnswer(t *testing.T) {
	tests := []struct {
		given   string
		correct string
		want    bool
	}{
		{"  Земля ", "земля", true},
		{"земля", "земля", true},
		{"ЗЕМЛЯ", "земля", true},
		{"\tКОТ\n", "кот", true},
		{"\uFEFF8", "8", true},
		{"синий  кит", "Синий кит", false},
		{"Марс", "Меркурий", false},
		{"", "8", false},
		{"ЁЖИК", "ёжик", true},
		{"ЁЖИК", "ежик", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchAnswer(tt.given, tt.correct), "MatchAnswer(%q, %q)", tt.given, tt.correct)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "большая медведица", NormalizeAnswer(" Большая МЕДВЕДИЦА\n"))
	assert.Equal(t, "ёлка", NormalizeAnswer("ЁЛКА"))
}

func TestDifficultyDisplayName(t *testing.T) {
	assert.Equal(t, "Легко", DifficultyEasy.DisplayName())
	assert.Equal(t, "Средне", DifficultyMedium.DisplayName())
	assert.Equal(t, "Сложно", DifficultyHard.DisplayName())
	assert.Equal(t, "legendary", Difficulty("legendary").DisplayName())
}

const validYAML = `
version: v1.2.0
quests:
  - id: 7
    title: Цвета радуги
    icon: "🌈"
    difficulty: hard
    points: 120
    questions:
      - id: 1
        prompt: Сколько цветов у радуги?
        type: choice
        options: ["5", "6", "7"]
        correct_answer: "7"
      - id: 2
        prompt: Какой цвет идёт после красного?
        type: input
        correct_answer: оранжевый
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	q, err := c.Quest(7)
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, q.Difficulty)
	assert.Equal(t, QuestionInput, q.Questions[1].Type)

	// Achievements fall back to the built-in set.
	assert.Len(t, c.Achievements(), 3)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	c, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", c.Version())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveEmptyPathIsBuiltin(t *testing.T) {
	c, err := Resolve("")
	require.NoError(t, err)
	assert.Len(t, c.Quests(), 3)
}

func TestValidate(t *testing.T) {
	good := func() []Quest {
		return []Quest{{
			ID: 1, Title: "t", Difficulty: DifficultyEasy, Points: 10,
			Questions: []Question{
				{ID: 1, Prompt: "p", Type: QuestionChoice, Options: []string{"a", "b"}, CorrectAnswer: "A"},
			},
		}}
	}

	tests := []struct {
		name    string
		version string
		mutate  func([]Quest) []Quest
		achs    []Achievement
		wantErr bool
	}{
		{"valid", "v1.0.0", func(q []Quest) []Quest { return q }, builtinAchievements, false},
		{"bad version", "1.0", func(q []Quest) []Quest { return q }, builtinAchievements, true},
		{"wrong major", "v2.0.0", func(q []Quest) []Quest { return q }, builtinAchievements, true},
		{"no quests", "v1.0.0", func([]Quest) []Quest { return nil }, builtinAchievements, true},
		{"zero points", "v1.0.0", func(q []Quest) []Quest { q[0].Points = 0; return q }, builtinAchievements, true},
		{"bad difficulty", "v1.0.0", func(q []Quest) []Quest { q[0].Difficulty = "insane"; return q }, builtinAchievements, true},
		{"no questions", "v1.0.0", func(q []Quest) []Quest { q[0].Questions = nil; return q }, builtinAchievements, true},
		{"duplicate quest", "v1.0.0", func(q []Quest) []Quest { return append(q, q[0]) }, builtinAchievements, true},
		{"answer not in options", "v1.0.0", func(q []Quest) []Quest {
			q[0].Questions[0].CorrectAnswer = "c"
			return q
		}, builtinAchievements, true},
		{"single option", "v1.0.0", func(q []Quest) []Quest {
			q[0].Questions[0].Options = []string{"a"}
			return q
		}, builtinAchievements, true},
		{"input with options", "v1.0.0", func(q []Quest) []Quest {
			q[0].Questions[0].Type = QuestionInput
			return q
		}, builtinAchievements, true},
		{"missing rule achievement", "v1.0.0", func(q []Quest) []Quest { return q }, builtinAchievements[:2], true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.version, tt.mutate(good()), tt.achs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{"a", "b"}
	assert.Equal(t, "invalid catalog: a; b", err.Error())
}
