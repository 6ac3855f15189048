package entity

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentSource string

const (
	AssessmentSourceWeb  AssessmentSource = "web"
	AssessmentSourceChat AssessmentSource = "chat"
)

type Assessment struct {
	Id                 uuid.UUID
	UserId             *uuid.UUID
	SubmissionToken    string
	Source             AssessmentSource
	RespondentSector   *string
	RespondentCategory *string
	OverallScore       float64
	SoftScore          float64
	DigitalScore       float64
	CompletedAt        *time.Time
	CreatedAt          time.Time
}

func (a *Assessment) IsCompleted() bool {
	return a.CompletedAt != nil
}

type AssessmentAnswer struct {
	Id           uuid.UUID
	AssessmentId uuid.UUID
	QuestionId   uint
	OptionId     uint
	CreatedAt    time.Time
}

// ScoredAnswer is an answer joined with its question and chosen option.
type ScoredAnswer struct {
	QuestionId uint
	Domain     QuestionDomain
	Category   string
	Score      int
}

type Recommendation struct {
	Id           uuid.UUID
	AssessmentId uuid.UUID
	SkillArea    string
	Priority     string
	Message      string
	CreatedAt    time.Time
}

type AssessmentTotals struct {
	Count      int64
	AvgOverall float64
	AvgSoft    float64
	AvgDigital float64
}

type CategoryGap struct {
	Category string
	AvgScore float64
	Answers  int64
}

type SectorStat struct {
	Sector     string
	Count      int64
	AvgOverall float64
	AvgSoft    float64
	AvgDigital float64
}
