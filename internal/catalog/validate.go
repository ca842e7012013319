package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build understands.
const SupportedMajor = "v1"

// ValidationErrors collects business-rule violations found in a catalog.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "invalid catalog: " + strings.Join(v, "; ")
}

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func getValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// Validate checks struct constraints and the cross-field rules the quest
// engine relies on.
func Validate(version string, quests []Quest, achievements []Achievement) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid catalog version %q", version)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %s (want %s.x.y)", version, SupportedMajor)
	}

	v := getValidator()
	for _, q := range quests {
		if err := v.Struct(q); err != nil {
			return fmt.Errorf("quest %d: %w", q.ID, err)
		}
	}
	for _, a := range achievements {
		if err := v.Struct(a); err != nil {
			return fmt.Errorf("achievement %q: %w", a.ID, err)
		}
	}

	if errs := validateRules(quests, achievements); len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRules(quests []Quest, achievements []Achievement) ValidationErrors {
	var errs ValidationErrors

	if len(quests) == 0 {
		errs = append(errs, "catalog has no quests")
	}

	seenQuest := make(map[int]bool)
	for _, q := range quests {
		if seenQuest[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quest id %d", q.ID))
		}
		seenQuest[q.ID] = true

		seenQuestion := make(map[int]bool)
		for _, qu := range q.Questions {
			if seenQuestion[qu.ID] {
				errs = append(errs, fmt.Sprintf("quest %d: duplicate question id %d", q.ID, qu.ID))
			}
			seenQuestion[qu.ID] = true
			errs = append(errs, validateQuestion(q.ID, qu)...)
		}
	}

	seenAch := make(map[string]bool)
	for _, a := range achievements {
		if seenAch[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate achievement id %q", a.ID))
		}
		seenAch[a.ID] = true
	}
	for _, id := range []string{AchievementFirstQuest, AchievementThreeQuests, AchievementPerfectScore} {
		if !seenAch[id] {
			errs = append(errs, fmt.Sprintf("missing achievement %q", id))
		}
	}

	return errs
}

func validateQuestion(questID int, q Question) ValidationErrors {
	var errs ValidationErrors
	switch q.Type {
	case QuestionChoice:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("quest %d question %d: choice needs at least 2 options", questID, q.ID))
		}
		found := false
		for _, opt := range q.Options {
			if MatchAnswer(opt, q.CorrectAnswer) {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("quest %d question %d: correct answer %q is not among the options", questID, q.ID, q.CorrectAnswer))
		}
	case QuestionInput:
		if len(q.Options) > 0 {
			errs = append(errs, fmt.Sprintf("quest %d question %d: input question must not have options", questID, q.ID))
		}
	}
	return errs
}
