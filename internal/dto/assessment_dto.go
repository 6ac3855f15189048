package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnswerRequest struct {
	QuestionId uint `json:"question_id" validate:"required"`
	OptionId   uint `json:"option_id" validate:"required"`
}

type SubmitAssessmentRequest struct {
	SubmissionToken    string          `json:"submission_token" validate:"required,min=8,max=64"`
	RespondentSector   *string         `json:"respondent_sector" validate:"omitempty,max=100"`
	RespondentCategory *string         `json:"respondent_category" validate:"omitempty,max=100"`
	Answers            []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type RecommendationResponse struct {
	SkillArea string `json:"skill_area"`
	Priority  string `json:"priority"`
	Message   string `json:"message"`
}

type AssessmentResultResponse struct {
	AssessmentId    uuid.UUID                `json:"assessment_id"`
	Source          string                   `json:"source"`
	OverallScore    float64                  `json:"overall_score"`
	SoftScore       float64                  `json:"soft_score"`
	DigitalScore    float64                  `json:"digital_score"`
	CompletedAt     *time.Time               `json:"completed_at,omitempty"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}
