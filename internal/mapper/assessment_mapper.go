package mapper

import (
	"encoding/json"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"

	"gorm.io/datatypes"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}
	return &entity.Assessment{
		Id:                 a.Id,
		UserId:             a.UserId,
		SubmissionToken:    a.SubmissionToken,
		Source:             entity.AssessmentSource(a.Source),
		RespondentSector:   a.RespondentSector,
		RespondentCategory: a.RespondentCategory,
		OverallScore:       a.OverallScore,
		SoftScore:          a.SoftScore,
		DigitalScore:       a.DigitalScore,
		CompletedAt:        a.CompletedAt,
		CreatedAt:          a.CreatedAt,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}
	return &model.Assessment{
		Id:                 a.Id,
		UserId:             a.UserId,
		SubmissionToken:    a.SubmissionToken,
		Source:             string(a.Source),
		RespondentSector:   a.RespondentSector,
		RespondentCategory: a.RespondentCategory,
		OverallScore:       a.OverallScore,
		SoftScore:          a.SoftScore,
		DigitalScore:       a.DigitalScore,
		CompletedAt:        a.CompletedAt,
		CreatedAt:          a.CreatedAt,
	}
}

func (m *AssessmentMapper) AnswerToEntity(a *model.AssessmentAnswer) *entity.AssessmentAnswer {
	if a == nil {
		return nil
	}
	return &entity.AssessmentAnswer{
		Id:           a.Id,
		AssessmentId: a.AssessmentId,
		QuestionId:   a.QuestionId,
		OptionId:     a.OptionId,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *AssessmentMapper) AnswerToModel(a *entity.AssessmentAnswer) *model.AssessmentAnswer {
	if a == nil {
		return nil
	}
	return &model.AssessmentAnswer{
		Id:           a.Id,
		AssessmentId: a.AssessmentId,
		QuestionId:   a.QuestionId,
		OptionId:     a.OptionId,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *AssessmentMapper) RecommendationToEntity(r *model.Recommendation) *entity.Recommendation {
	if r == nil {
		return nil
	}
	return &entity.Recommendation{
		Id:           r.Id,
		AssessmentId: r.AssessmentId,
		SkillArea:    r.SkillArea,
		Priority:     r.Priority,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *AssessmentMapper) RecommendationToModel(r *entity.Recommendation) *model.Recommendation {
	if r == nil {
		return nil
	}
	return &model.Recommendation{
		Id:           r.Id,
		AssessmentId: r.AssessmentId,
		SkillArea:    r.SkillArea,
		Priority:     r.Priority,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
	}
}

// OutboxToEntity drops a payload that is not a JSON object.
func (m *AssessmentMapper) OutboxToEntity(e *model.OutboxEvent) *entity.OutboxEvent {
	if e == nil {
		return nil
	}
	var payload map[string]interface{}
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}
	return &entity.OutboxEvent{
		Id:          e.Id,
		EventType:   e.EventType,
		Payload:     payload,
		Processed:   e.Processed,
		ProcessedAt: e.ProcessedAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *AssessmentMapper) OutboxToModel(e *entity.OutboxEvent) (*model.OutboxEvent, error) {
	if e == nil {
		return nil, nil
	}
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, err
	}
	return &model.OutboxEvent{
		Id:          e.Id,
		EventType:   e.EventType,
		Payload:     datatypes.JSON(raw),
		Processed:   e.Processed,
		ProcessedAt: e.ProcessedAt,
		CreatedAt:   e.CreatedAt,
	}, nil
}
