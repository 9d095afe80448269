package quiz

import (
	"MiniLearn/internal/models"
	"strings"
)

// Grade counts answers matching the stored correct answer, ignoring
// surrounding whitespace and case. Every question counts towards total,
// questions without a correct answer can never be answered correctly.
func Grade(questions []models.Question, answers map[int64]string) (correct, total int) {
	for _, q := range questions {
		total++
		if q.CorrectAnswer == nil {
			continue
		}
		given, ok := answers[q.ID]
		if !ok {
			continue
		}
		if normalize(given) == normalize(*q.CorrectAnswer) {
			correct++
		}
	}
	return correct, total
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
