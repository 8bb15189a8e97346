package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/contract"
)

var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// FormatQuiz renders questions with lettered options. The answer is shown
// only when reveal is set.
func FormatQuiz(questions []contract.QuestionView, reveal bool) string {
	var b strings.Builder
	b.WriteString(Header("Review Quiz"))
	b.WriteString("\n\n")

	if len(questions) == 0 {
		b.WriteString(Dim("Not enough topics for a quiz.") + "\n")
		return b.String()
	}

	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(fmt.Sprintf("%d.", i+1)), q.Prompt))
		for j, opt := range q.Options {
			letter := fmt.Sprintf("%d", j+1)
			if j < len(optionLetters) {
				letter = optionLetters[j]
			}
			line := fmt.Sprintf("   %s) %s", letter, opt)
			if reveal && opt == q.Answer {
				line = StyleGreen.Render(line + "  ✔")
			}
			b.WriteString(line + "\n")
		}
		if reveal && q.Explanation != "" {
			b.WriteString("   " + Dim(q.Explanation) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
