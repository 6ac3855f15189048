package contract

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	Update(ctx context.Context, assessment *entity.Assessment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AnswerRepository interface {
	// Upsert stores the answer, replacing the option of an earlier answer to
	// the same question of the same assessment.
	Upsert(ctx context.Context, answer *entity.AssessmentAnswer) error
	CreateBatch(ctx context.Context, answers []*entity.AssessmentAnswer) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindScored joins each answer of an assessment with its question and option.
	FindScored(ctx context.Context, assessmentId uuid.UUID) ([]entity.ScoredAnswer, error)
}

type RecommendationRepository interface {
	CreateBatch(ctx context.Context, recs []*entity.Recommendation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error)
}
