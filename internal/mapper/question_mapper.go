package mapper

import (
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	options := make([]*entity.QuestionOption, 0, len(q.Options))
	for _, op := range q.Options {
		options = append(options, m.OptionToEntity(op))
	}

	return &entity.Question{
		Id:           q.Id,
		Text:         q.Text,
		Domain:       entity.QuestionDomain(q.Domain),
		Category:     q.Category,
		IsActive:     q.IsActive,
		DisplayOrder: q.DisplayOrder,
		Options:      options,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	options := make([]*model.QuestionOption, 0, len(q.Options))
	for _, op := range q.Options {
		options = append(options, m.OptionToModel(op))
	}

	return &model.Question{
		Id:           q.Id,
		Text:         q.Text,
		Domain:       string(q.Domain),
		Category:     q.Category,
		IsActive:     q.IsActive,
		DisplayOrder: q.DisplayOrder,
		Options:      options,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func (m *QuestionMapper) OptionToEntity(op *model.QuestionOption) *entity.QuestionOption {
	if op == nil {
		return nil
	}
	return &entity.QuestionOption{
		Id:         op.Id,
		QuestionId: op.QuestionId,
		Label:      op.Label,
		Text:       op.Text,
		Score:      op.Score,
	}
}

func (m *QuestionMapper) OptionToModel(op *entity.QuestionOption) *model.QuestionOption {
	if op == nil {
		return nil
	}
	return &model.QuestionOption{
		Id:         op.Id,
		QuestionId: op.QuestionId,
		Label:      op.Label,
		Text:       op.Text,
		Score:      op.Score,
	}
}
