package quest

// Grade is the school mark given for a single attempt.
type Grade struct {
	Mark  int
	Label string
	Emoji string
}

// gradeScale is ordered from the highest threshold down; the first
// threshold the percentage reaches wins.
var gradeScale = []struct {
	min   float64
	grade Grade
}{
	{90, Grade{Mark: 5, Label: "5 (Отлично!)", Emoji: "🌟"}},
	{75, Grade{Mark: 4, Label: "4 (Хорошо!)", Emoji: "😊"}},
	{60, Grade{Mark: 3, Label: "3 (Удовлетворительно)", Emoji: "👍"}},
}

var lowestGrade = Grade{Mark: 2, Label: "2 (Попробуй ещё раз!)", Emoji: "💪"}

// GradeFor maps a percentage (0-100) to a grade. Thresholds are inclusive.
func GradeFor(percentage float64) Grade {
	for _, g := range gradeScale {
		if percentage >= g.min {
			return g.grade
		}
	}
	return lowestGrade
}

func (g Grade) String() string {
	return g.Label
}
