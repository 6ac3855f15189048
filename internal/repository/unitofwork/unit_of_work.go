package unitofwork

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one transaction. Repositories
// obtained before Begin run outside of it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QuestionRepository() contract.QuestionRepository
	ChatSessionRepository() contract.ChatSessionRepository
	AssessmentRepository() contract.AssessmentRepository
	AnswerRepository() contract.AnswerRepository
	RecommendationRepository() contract.RecommendationRepository
	OutboxRepository() contract.OutboxRepository
	ReportingRepository() contract.ReportingRepository
}
