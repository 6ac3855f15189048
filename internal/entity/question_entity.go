package entity

import "time"

type QuestionDomain string

const (
	QuestionDomainSoft    QuestionDomain = "soft"
	QuestionDomainDigital QuestionDomain = "digital"
)

type Question struct {
	Id           uint
	Text         string
	Domain       QuestionDomain
	Category     string
	IsActive     bool
	DisplayOrder int
	Options      []*QuestionOption
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type QuestionOption struct {
	Id         uint
	QuestionId uint
	Label      string
	Text       string
	Score      int
}

// OptionByLabel matches case-insensitively against the stored labels.
func (q *Question) OptionByLabel(label string) *QuestionOption {
	for _, op := range q.Options {
		if equalFoldASCII(op.Label, label) {
			return op
		}
	}
	return nil
}

// OptionById returns the option only when it belongs to this question.
func (q *Question) OptionById(id uint) *QuestionOption {
	for _, op := range q.Options {
		if op.Id == id {
			return op
		}
	}
	return nil
}

// Before reports whether q precedes other in the canonical (display_order, id) order.
func (q *Question) Before(other *Question) bool {
	if q.DisplayOrder != other.DisplayOrder {
		return q.DisplayOrder < other.DisplayOrder
	}
	return q.Id < other.Id
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
