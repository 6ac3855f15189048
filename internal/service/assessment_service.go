package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/assessment/recommendation"
	"github.com/goodwellmafunga/skills-assessment/pkg/assessment/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IAssessmentService interface {
	Submit(ctx context.Context, userId *uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResultResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AssessmentResultResponse, error)
}

type assessmentService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAssessmentService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAssessmentService {
	return &assessmentService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Submit validates and scores a complete answer set and stores it together
// with its recommendations and an outbox event in one transaction.
func (s *assessmentService) Submit(ctx context.Context, userId *uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResultResponse, error) {
	if len(req.Answers) == 0 {
		return nil, apperror.Validation("No answers provided")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("Failed to submit assessment", err)
	}
	defer uow.Rollback()

	existing, err := uow.AssessmentRepository().FindOne(ctx, specification.BySubmissionToken{Token: req.SubmissionToken})
	if err != nil {
		return nil, apperror.Internal("Failed to submit assessment", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Duplicate submission token")
	}

	ids := make([]uint, 0, len(req.Answers))
	seen := make(map[uint]bool, len(req.Answers))
	for _, a := range req.Answers {
		if seen[a.QuestionId] {
			return nil, apperror.Validation("Question %d answered more than once", a.QuestionId)
		}
		seen[a.QuestionId] = true
		ids = append(ids, a.QuestionId)
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByQuestionIDs{IDs: ids},
		specification.ActiveQuestions{},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to submit assessment", err)
	}
	byID := make(map[uint]*entity.Question, len(questions))
	for _, q := range questions {
		byID[q.Id] = q
	}

	scored := make([]scoring.ScoredAnswer, 0, len(req.Answers))
	answers := make([]*entity.AssessmentAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		q := byID[a.QuestionId]
		var op *entity.QuestionOption
		if q != nil {
			op = q.OptionById(a.OptionId)
		}
		if op == nil {
			return nil, apperror.Validation("Invalid answer mapping question=%d option=%d", a.QuestionId, a.OptionId)
		}
		scored = append(scored, scoring.ScoredAnswer{Domain: string(q.Domain), Category: q.Category, Score: op.Score})
		answers = append(answers, &entity.AssessmentAnswer{QuestionId: q.Id, OptionId: op.Id})
	}

	result := scoring.Compute(scored)
	now := time.Now()

	assessment := &entity.Assessment{
		UserId:             userId,
		SubmissionToken:    req.SubmissionToken,
		Source:             entity.AssessmentSourceWeb,
		RespondentSector:   req.RespondentSector,
		RespondentCategory: req.RespondentCategory,
		OverallScore:       result.Overall,
		SoftScore:          result.Soft,
		DigitalScore:       result.Digital,
		CompletedAt:        &now,
	}
	if err := uow.AssessmentRepository().Create(ctx, assessment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Duplicate submission token")
		}
		return nil, apperror.Internal("Failed to submit assessment", err)
	}

	for _, a := range answers {
		a.AssessmentId = assessment.Id
	}
	if err := uow.AnswerRepository().CreateBatch(ctx, answers); err != nil {
		return nil, apperror.Internal("Failed to store answers", err)
	}

	recs := recommendation.ForCategories(result.CategoryMeans)
	if err := uow.RecommendationRepository().CreateBatch(ctx, toRecommendationEntities(assessment.Id, recs)); err != nil {
		return nil, apperror.Internal("Failed to store recommendations", err)
	}

	if err := uow.OutboxRepository().Create(ctx, submittedEvent(assessment)); err != nil {
		return nil, apperror.Internal("Failed to enqueue event", err)
	}

	if err := uow.Commit(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Duplicate submission token")
		}
		return nil, apperror.Internal("Failed to submit assessment", err)
	}

	s.logger.Info("ASSESSMENT", "Assessment submitted", map[string]interface{}{
		"assessment_id": assessment.Id,
		"answers":       len(answers),
		"overall_score": result.Overall,
	})

	return toAssessmentResult(assessment, recs), nil
}

func (s *assessmentService) Show(ctx context.Context, id uuid.UUID) (*dto.AssessmentResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assessment, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal("Failed to load assessment", err)
	}
	if assessment == nil {
		return nil, apperror.NotFound("Assessment not found")
	}

	stored, err := uow.RecommendationRepository().FindAll(ctx,
		specification.ByAssessmentID{AssessmentID: id},
		specification.OrderBy{Field: "skill_area"},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to load recommendations", err)
	}

	recs := make([]recommendation.Recommendation, 0, len(stored))
	for _, r := range stored {
		recs = append(recs, recommendation.Recommendation{SkillArea: r.SkillArea, Priority: r.Priority, Message: r.Message})
	}
	return toAssessmentResult(assessment, recs), nil
}

func toRecommendationEntities(assessmentId uuid.UUID, recs []recommendation.Recommendation) []*entity.Recommendation {
	out := make([]*entity.Recommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, &entity.Recommendation{
			AssessmentId: assessmentId,
			SkillArea:    r.SkillArea,
			Priority:     r.Priority,
			Message:      r.Message,
		})
	}
	return out
}

// submittedEvent is the outbox record for a completed assessment, shared by
// the submission and chat paths.
func submittedEvent(a *entity.Assessment) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		EventType: entity.EventTypeAssessmentSubmitted,
		Payload: map[string]interface{}{
			"assessment_id":       a.Id.String(),
			"source":              string(a.Source),
			"overall_score":       a.OverallScore,
			"soft_score":          a.SoftScore,
			"digital_score":       a.DigitalScore,
			"respondent_sector":   a.RespondentSector,
			"respondent_category": a.RespondentCategory,
		},
	}
}

func toAssessmentResult(a *entity.Assessment, recs []recommendation.Recommendation) *dto.AssessmentResultResponse {
	out := make([]dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationResponse{SkillArea: r.SkillArea, Priority: r.Priority, Message: r.Message})
	}
	return &dto.AssessmentResultResponse{
		AssessmentId:    a.Id,
		Source:          string(a.Source),
		OverallScore:    a.OverallScore,
		SoftScore:       a.SoftScore,
		DigitalScore:    a.DigitalScore,
		CompletedAt:     a.CompletedAt,
		Recommendations: out,
	}
}
