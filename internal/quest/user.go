package quest

import (
	"slices"

	"github.com/abhisek/questland/internal/catalog"
)

// StartingLevel is the level every player has. There is no levelling yet.
const StartingLevel = 1

// NextLevelPoints is the points target the profile progress bar shows.
const NextLevelPoints = 500

// User is the player profile for the current run.
type User struct {
	Name            string
	Level           int
	Points          int
	Achievements    []string // achievement ids, in award order
	CompletedQuests []int    // quest ids, in first-completion order
}

func newUser(name string) *User {
	return &User{Name: name, Level: StartingLevel}
}

// HasAchievement reports whether the achievement was already awarded.
func (u *User) HasAchievement(id string) bool {
	return slices.Contains(u.Achievements, id)
}

// HasCompleted reports whether the quest was completed at least once.
func (u *User) HasCompleted(questID int) bool {
	return slices.Contains(u.CompletedQuests, questID)
}

// LevelProgress returns points progress toward NextLevelPoints in [0, 1].
func (u *User) LevelProgress() float64 {
	p := float64(u.Points) / NextLevelPoints
	if p > 1 {
		return 1
	}
	return p
}

func (u *User) clone() User {
	c := *u
	c.Achievements = slices.Clone(u.Achievements)
	c.CompletedQuests = slices.Clone(u.CompletedQuests)
	return c
}

// award applies the achievement rules for one finished attempt and returns
// the ids awarded by it, in rule order. Completion is deduplicated by quest
// id, so repeating a quest never re-triggers the count rules; the perfect
// score rule is checked on every attempt.
func (u *User) award(questID int, s Score) []string {
	var awarded []string
	grant := func(id string) {
		if !u.HasAchievement(id) {
			u.Achievements = append(u.Achievements, id)
			awarded = append(awarded, id)
		}
	}

	if !u.HasCompleted(questID) {
		u.CompletedQuests = append(u.CompletedQuests, questID)
		if len(u.CompletedQuests) == 1 {
			grant(catalog.AchievementFirstQuest)
		}
		if len(u.CompletedQuests) >= 3 {
			grant(catalog.AchievementThreeQuests)
		}
	}

	if s.Perfect() {
		grant(catalog.AchievementPerfectScore)
	}
	return awarded
}
