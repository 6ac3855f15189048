package contract

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
)

// ChatSessionRepository stores the single conversation row of each
// (channel, external user) pair.
type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	FindByChannelUser(ctx context.Context, channel, externalUserId string) (*entity.ChatSession, error)
}
