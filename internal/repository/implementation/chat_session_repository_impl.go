package implementation

import (
	"context"
	"errors"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/mapper"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/contract"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

// Create fails with gorm.ErrDuplicatedKey when the (channel, user) pair
// already has a session.
func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

// Update writes every column so that clearing CurrentQuestionId persists.
func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

// FindByChannelUser returns nil when the pair has never talked to the bot.
func (r *ChatSessionRepositoryImpl) FindByChannelUser(ctx context.Context, channel, externalUserId string) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := specification.ByChannelUser{Channel: channel, ExternalUserID: externalUserId}.Apply(r.db.WithContext(ctx))
	if err := query.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}
