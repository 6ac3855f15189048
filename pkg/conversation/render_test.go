package conversation

import (
	"testing"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuestion(t *testing.T) {
	q := &entity.Question{
		Id:           7,
		Text:         "How do you handle feedback?",
		Domain:       entity.QuestionDomainSoft,
		Category:     "Communication",
		DisplayOrder: 3,
		Options: []*entity.QuestionOption{
			{Label: "b", Text: "Sometimes"},
			{Label: "A", Text: "Never"},
			{Label: "C", Text: "Always"},
		},
	}

	want := "Q3/10 (Soft - Communication)\n" +
		"How do you handle feedback?\n\n" +
		"A) Never\n" +
		"B) Sometimes\n" +
		"C) Always\n" +
		"\nReply with A, B, C, D, or E.\n" +
		"Type (reset) or [RESET] anytime to restart."

	assert.Equal(t, want, FormatQuestion(q, 10))
	assert.Equal(t, "b", q.Options[0].Label, "input options must not be reordered")
}

func TestFormatQuestionWithoutTotal(t *testing.T) {
	q := &entity.Question{Text: "T", Domain: entity.QuestionDomainDigital, Category: "Data", DisplayOrder: 1}

	assert.Contains(t, FormatQuestion(q, 0), "Q1 (Digital - Data)\nT\n\n")
}

func TestCompletion(t *testing.T) {
	msg := Completion(4, 2.5, 3.25)

	assert.Contains(t, msg, "Assessment completed ✅")
	assert.Contains(t, msg, "Soft: 4.00/5")
	assert.Contains(t, msg, "Digital: 2.50/5")
	assert.Contains(t, msg, "Overall: 3.25/5")
	assert.Contains(t, msg, "(reset) or [RESET], then READY.")
}
