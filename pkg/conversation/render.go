package conversation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
)

// FormatQuestion renders a question for a chat client. A non-positive total
// omits the "/total" part of the header.
func FormatQuestion(q *entity.Question, total int) string {
	var b strings.Builder

	if total > 0 {
		fmt.Fprintf(&b, "Q%d/%d", q.DisplayOrder, total)
	} else {
		fmt.Fprintf(&b, "Q%d", q.DisplayOrder)
	}
	fmt.Fprintf(&b, " (%s - %s)\n", capitalize(string(q.Domain)), q.Category)
	b.WriteString(strings.TrimSpace(q.Text))
	b.WriteString("\n\n")

	options := append([]*entity.QuestionOption(nil), q.Options...)
	sort.SliceStable(options, func(i, j int) bool {
		return strings.ToUpper(options[i].Label) < strings.ToUpper(options[j].Label)
	})
	for _, op := range options {
		fmt.Fprintf(&b, "%s) %s\n", strings.ToUpper(op.Label), op.Text)
	}

	b.WriteString("\nReply with A, B, C, D, or E.\n")
	b.WriteString("Type (reset) or [RESET] anytime to restart.")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
