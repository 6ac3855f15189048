package specification

import (
	"strings"

	"gorm.io/gorm"
)

type ByQuestionID struct {
	ID uint
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByQuestionIDs struct {
	IDs []uint
}

func (s ByQuestionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

type ActiveQuestions struct{}

func (s ActiveQuestions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByDomain struct {
	Domain string
}

func (s ByDomain) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("domain = ?", s.Domain)
}

// ByCategory compares trimmed, lower-cased names.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(TRIM(category)) = ?", strings.ToLower(strings.TrimSpace(s.Category)))
}

// ByQuestionText compares trimmed, lower-cased text.
type ByQuestionText struct {
	Text string
}

func (s ByQuestionText) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(TRIM(text)) = ?", strings.ToLower(strings.TrimSpace(s.Text)))
}

// QuestionOrder is the canonical presentation order.
type QuestionOrder struct{}

func (s QuestionOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("id ASC")
}

// AfterQuestion keeps questions strictly after the given position in
// QuestionOrder.
type AfterQuestion struct {
	DisplayOrder int
	ID           uint
}

func (s AfterQuestion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("((display_order > ?) OR (display_order = ? AND id > ?))", s.DisplayOrder, s.DisplayOrder, s.ID)
}

