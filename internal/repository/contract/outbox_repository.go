package contract

import (
	"context"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"

	"github.com/google/uuid"
)

type OutboxRepository interface {
	Create(ctx context.Context, event *entity.OutboxEvent) error
	// FindPending returns the oldest unprocessed events.
	FindPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)
	// MarkProcessed reports false when another relay already took the event.
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	CountPending(ctx context.Context) (int64, error)
}
