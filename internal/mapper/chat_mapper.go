package mapper

import (
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:                s.Id,
		Channel:           s.Channel,
		ExternalUserId:    s.ExternalUserId,
		State:             entity.ChatSessionState(s.State),
		CurrentQuestionId: s.CurrentQuestionId,
		AssessmentId:      s.AssessmentId,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:                s.Id,
		Channel:           s.Channel,
		ExternalUserId:    s.ExternalUserId,
		State:             string(s.State),
		CurrentQuestionId: s.CurrentQuestionId,
		AssessmentId:      s.AssessmentId,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
