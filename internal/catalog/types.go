package catalog

// Difficulty is the coarse difficulty band of a quest.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DisplayName returns the label shown on quest cards.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Легко"
	case DifficultyMedium:
		return "Средне"
	case DifficultyHard:
		return "Сложно"
	default:
		return string(d)
	}
}

// QuestionType distinguishes option lists from free-text answers.
type QuestionType string

const (
	QuestionChoice QuestionType = "choice"
	QuestionInput  QuestionType = "input"
)

// Question is a single prompt inside a quest.
type Question struct {
	ID            int          `yaml:"id" validate:"required,gt=0"`
	Prompt        string       `yaml:"prompt" validate:"required"`
	Type          QuestionType `yaml:"type" validate:"required,oneof=choice input"`
	Options       []string     `yaml:"options,omitempty" validate:"omitempty,dive,required"`
	CorrectAnswer string       `yaml:"correct_answer" validate:"required"`
}

// IsChoice reports whether the question is answered by picking an option.
func (q Question) IsChoice() bool {
	return q.Type == QuestionChoice
}

// Quest is an immutable catalog entry: a themed quiz with a points reward.
type Quest struct {
	ID          int        `yaml:"id" validate:"required,gt=0"`
	Title       string     `yaml:"title" validate:"required"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Difficulty  Difficulty `yaml:"difficulty" validate:"required,oneof=easy medium hard"`
	Points      int        `yaml:"points" validate:"required,gt=0"`
	Questions   []Question `yaml:"questions" validate:"required,min=1,dive"`
}

// Achievement is a badge unlocked by a condition over player progress.
type Achievement struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Achievement ids with rules in the quest engine.
const (
	AchievementFirstQuest   = "first_quest"
	AchievementThreeQuests  = "three_quests"
	AchievementPerfectScore = "perfect_score"
)
