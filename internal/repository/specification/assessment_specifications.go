package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySubmissionToken struct {
	Token string
}

func (s BySubmissionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_token = ?", s.Token)
}

type CompletedAssessments struct{}

func (s CompletedAssessments) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed_at IS NOT NULL")
}

type UnprocessedEvents struct{}

func (s UnprocessedEvents) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("processed = ?", false)
}

type ByAssessmentID struct {
	AssessmentID uuid.UUID
}

func (s ByAssessmentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assessment_id = ?", s.AssessmentID)
}
