package implementation

import (
	"context"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/mapper"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/contract"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/scope"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutboxRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewOutboxRepository(db *gorm.DB) contract.OutboxRepository {
	return &OutboxRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *OutboxRepositoryImpl) Create(ctx context.Context, event *entity.OutboxEvent) error {
	m, err := r.mapper.OutboxToModel(event)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.OutboxToEntity(m)
	return nil
}

func (r *OutboxRepositoryImpl) FindPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var models []*model.OutboxEvent
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specification.UnprocessedEvents{})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.OutboxEvent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.OutboxToEntity(m)
	}
	return entities, nil
}

func (r *OutboxRepositoryImpl) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.OutboxEvent{}).
		Where("id = ? AND processed = ?", id, false).
		Updates(map[string]interface{}{"processed": true, "processed_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OutboxRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.OutboxEvent{}), specification.UnprocessedEvents{})
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
