package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Assessment struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId             *uuid.UUID `gorm:"type:uuid;index"`
	SubmissionToken    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Source             string     `gorm:"type:varchar(20);not null;default:'web'"`
	RespondentSector   *string    `gorm:"type:varchar(100);index"`
	RespondentCategory *string    `gorm:"type:varchar(100)"`
	OverallScore       float64    `gorm:"not null;default:0"`
	SoftScore          float64    `gorm:"not null;default:0"`
	DigitalScore       float64    `gorm:"not null;default:0"`
	CompletedAt        *time.Time `gorm:"index"`
	CreatedAt          time.Time  `gorm:"autoCreateTime;index"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	return nil
}

type AssessmentAnswer struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssessmentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_answer_assessment_question"`
	QuestionId   uint      `gorm:"not null;uniqueIndex:uq_answer_assessment_question"`
	OptionId     uint      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}

func (a *AssessmentAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	return nil
}

type Recommendation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssessmentId uuid.UUID `gorm:"type:uuid;not null;index"`
	SkillArea    string    `gorm:"type:varchar(100);not null"`
	Priority     string    `gorm:"type:varchar(20);not null"`
	Message      string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}
