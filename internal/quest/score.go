package quest

import (
	"math"

	"github.com/abhisek/questland/internal/catalog"
)

// Score is the outcome of grading one attempt at a quest.
type Score struct {
	Correct      int
	Total        int
	Percentage   float64 // 0-100
	EarnedPoints int
}

// Perfect reports whether every question was answered correctly.
func (s Score) Perfect() bool {
	return s.Total > 0 && s.Correct == s.Total
}

// QuestionResult pairs a question with the answer given to it.
type QuestionResult struct {
	Question catalog.Question
	Answer   string
	Correct  bool
}

// ScoreQuest grades answers against the quest's questions in order. Missing
// answers count as wrong. Earned points are the quest reward scaled by the
// percentage and rounded half away from zero.
func ScoreQuest(q catalog.Quest, answers []string) Score {
	s := Score{Total: len(q.Questions)}
	for i, qu := range q.Questions {
		if i < len(answers) && qu.IsCorrect(answers[i]) {
			s.Correct++
		}
	}
	if s.Total == 0 {
		return s
	}
	s.Percentage = float64(s.Correct) / float64(s.Total) * 100
	s.EarnedPoints = int(math.Round(s.Percentage / 100 * float64(q.Points)))
	return s
}

// Review lists every question with the player's answer and whether it matched.
func Review(q catalog.Quest, answers []string) []QuestionResult {
	out := make([]QuestionResult, len(q.Questions))
	for i, qu := range q.Questions {
		var a string
		if i < len(answers) {
			a = answers[i]
		}
		out[i] = QuestionResult{
			Question: qu,
			Answer:   a,
			Correct:  i < len(answers) && qu.IsCorrect(a),
		}
	}
	return out
}
