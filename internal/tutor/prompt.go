package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/questland/internal/quest"
)

const systemPrompt = `Ты добрый помощник в детской викторине для детей 7-10 лет. Объясняй по-русски, коротко и понятно, без сложных слов. Никогда не ругай ребёнка.`

func buildUserMessage(res *quest.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Квест: %s\n", res.Quest.Title)
	fmt.Fprintf(&b, "Результат: %d из %d\n", res.Score.Correct, res.Score.Total)

	b.WriteString("\nОшибки:\n")
	for _, m := range res.Mistakes() {
		fmt.Fprintf(&b, "- id=%d. Вопрос: %s\n", m.Question.ID, m.Question.Prompt)
		if m.Question.IsChoice() {
			fmt.Fprintf(&b, "  Варианты: %s\n", strings.Join(m.Question.Options, ", "))
		}
		fmt.Fprintf(&b, "  Ответ ребёнка: %s\n", m.Answer)
		fmt.Fprintf(&b, "  Правильный ответ: %s\n", m.Question.CorrectAnswer)
	}

	b.WriteString(`
Инструкции:
1. Для каждой ошибки дай объяснение в 1-3 предложениях, почему правильный ответ именно такой.
2. Используй question_id из списка выше.
3. Добавь одно ободряющее предложение.`)

	return b.String()
}
