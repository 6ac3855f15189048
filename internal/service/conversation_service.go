package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/assessment/recommendation"
	"github.com/goodwellmafunga/skills-assessment/pkg/assessment/scoring"
	"github.com/goodwellmafunga/skills-assessment/pkg/conversation"
	"github.com/goodwellmafunga/skills-assessment/pkg/lock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IConversationService runs the chat assessment state machine. Handle
// always yields a reply; failures are logged and answered with a canned
// message.
type IConversationService interface {
	Handle(ctx context.Context, channel, externalUserId, text string) string
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	locker     lock.Locker
	logger     logger.ILogger
	maxRetries int
	now        func() time.Time
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	locker lock.Locker,
	log logger.ILogger,
	maxRetries int,
) IConversationService {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &conversationService{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     log,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

func lockKey(channel, externalUserId string) string {
	return fmt.Sprintf("chat:%s:%s", channel, externalUserId)
}

func (s *conversationService) Handle(ctx context.Context, channel, externalUserId, text string) string {
	cmd := conversation.ParseCommand(text)
	if cmd == conversation.CommandStart {
		return conversation.MsgWelcome
	}

	release, err := s.locker.Acquire(ctx, lockKey(channel, externalUserId))
	if err != nil {
		s.logger.Error("CHAT", "Failed to acquire session lock", map[string]interface{}{
			"channel": channel, "user": externalUserId, "error": err.Error(),
		})
		return conversation.MsgInternalError
	}
	defer release()

	for attempt := 0; ; attempt++ {
		reply, err := s.dispatch(ctx, channel, externalUserId, text, cmd)
		if err == nil {
			return reply
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < s.maxRetries {
			s.logger.Warn("CHAT", "Session write raced, retrying", map[string]interface{}{
				"channel": channel, "user": externalUserId, "attempt": attempt + 1,
			})
			continue
		}
		s.logger.Error("CHAT", "Failed to handle message", map[string]interface{}{
			"channel": channel, "user": externalUserId, "error": err.Error(),
		})
		return conversation.MsgInternalError
	}
}

func (s *conversationService) dispatch(ctx context.Context, channel, externalUserId, text string, cmd conversation.Command) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	var (
		reply string
		err   error
	)
	switch cmd {
	case conversation.CommandReset:
		reply, err = s.reset(ctx, uow, channel, externalUserId)
	case conversation.CommandReady:
		reply, err = s.ready(ctx, uow, channel, externalUserId)
	default:
		reply, err = s.answer(ctx, uow, channel, externalUserId, text)
	}
	if err != nil {
		return "", err
	}

	if err := uow.Commit(); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *conversationService) reset(ctx context.Context, uow unitofwork.UnitOfWork, channel, externalUserId string) (string, error) {
	session, err := uow.ChatSessionRepository().FindByChannelUser(ctx, channel, externalUserId)
	if err != nil {
		return "", err
	}
	if session != nil {
		session.State = entity.ChatSessionStateCancelled
		session.CurrentQuestionId = nil
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return "", err
		}
	}
	return conversation.MsgReset, nil
}

func (s *conversationService) ready(ctx context.Context, uow unitofwork.UnitOfWork, channel, externalUserId string) (string, error) {
	questions := uow.QuestionRepository()

	first, err := questions.FindOne(ctx, specification.ActiveQuestions{}, specification.QuestionOrder{})
	if err != nil {
		return "", err
	}
	if first == nil {
		return conversation.MsgNoQuestions, nil
	}

	total, err := questions.Count(ctx, specification.ActiveQuestions{})
	if err != nil {
		return "", err
	}

	session, err := uow.ChatSessionRepository().FindByChannelUser(ctx, channel, externalUserId)
	if err != nil {
		return "", err
	}

	if session != nil && session.IsInProgress() && session.CurrentQuestionId != nil && session.AssessmentId != nil {
		current, err := questions.FindOne(ctx, specification.ByQuestionID{ID: *session.CurrentQuestionId}, specification.ActiveQuestions{})
		if err != nil {
			return "", err
		}
		if current != nil {
			return conversation.FormatQuestion(current, int(total)), nil
		}
		s.logger.Warn("CHAT", "Stale in-progress session restarted", map[string]interface{}{
			"session_id": session.Id, "question_id": *session.CurrentQuestionId,
		})
	}

	assessment := &entity.Assessment{
		SubmissionToken: "chat-" + uuid.NewString(),
		Source:          entity.AssessmentSourceChat,
	}
	if err := uow.AssessmentRepository().Create(ctx, assessment); err != nil {
		return "", err
	}

	if session == nil {
		session = &entity.ChatSession{
			Channel:           channel,
			ExternalUserId:    externalUserId,
			State:             entity.ChatSessionStateInProgress,
			CurrentQuestionId: &first.Id,
			AssessmentId:      &assessment.Id,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return "", err
		}
	} else {
		session.State = entity.ChatSessionStateInProgress
		session.CurrentQuestionId = &first.Id
		session.AssessmentId = &assessment.Id
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return "", err
		}
	}

	return conversation.FormatQuestion(first, int(total)), nil
}

func (s *conversationService) answer(ctx context.Context, uow unitofwork.UnitOfWork, channel, externalUserId, text string) (string, error) {
	sessions := uow.ChatSessionRepository()
	questions := uow.QuestionRepository()

	session, err := sessions.FindByChannelUser(ctx, channel, externalUserId)
	if err != nil {
		return "", err
	}
	if session == nil || !session.IsInProgress() {
		return conversation.MsgNoSession, nil
	}

	label, ok := conversation.ParseChoice(text)
	if !ok {
		return conversation.MsgNeedChoice, nil
	}

	var current *entity.Question
	if session.CurrentQuestionId != nil && session.AssessmentId != nil {
		current, err = questions.FindOne(ctx, specification.ByQuestionID{ID: *session.CurrentQuestionId}, specification.ActiveQuestions{})
		if err != nil {
			return "", err
		}
	}
	if current == nil {
		session.State = entity.ChatSessionStateCancelled
		session.CurrentQuestionId = nil
		if err := sessions.Update(ctx, session); err != nil {
			return "", err
		}
		return conversation.MsgSessionError, nil
	}

	option := current.OptionByLabel(label)
	if option == nil {
		return conversation.MsgInvalidChoice, nil
	}

	if err := uow.AnswerRepository().Upsert(ctx, &entity.AssessmentAnswer{
		AssessmentId: *session.AssessmentId,
		QuestionId:   current.Id,
		OptionId:     option.Id,
	}); err != nil {
		return "", err
	}

	next, err := questions.FindOne(ctx,
		specification.ActiveQuestions{},
		specification.AfterQuestion{DisplayOrder: current.DisplayOrder, ID: current.Id},
		specification.QuestionOrder{},
	)
	if err != nil {
		return "", err
	}

	if next != nil {
		session.CurrentQuestionId = &next.Id
		if err := sessions.Update(ctx, session); err != nil {
			return "", err
		}
		total, err := questions.Count(ctx, specification.ActiveQuestions{})
		if err != nil {
			return "", err
		}
		return conversation.FormatQuestion(next, int(total)), nil
	}

	return s.complete(ctx, uow, session)
}

// complete scores the session's assessment, stores the domain
// recommendations and an outbox event, and closes the session.
func (s *conversationService) complete(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) (string, error) {
	assessment, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: *session.AssessmentId})
	if err != nil {
		return "", err
	}
	if assessment == nil {
		return "", fmt.Errorf("assessment %s of session %s not found", *session.AssessmentId, session.Id)
	}

	answers, err := uow.AnswerRepository().FindScored(ctx, assessment.Id)
	if err != nil {
		return "", err
	}
	scored := make([]scoring.ScoredAnswer, 0, len(answers))
	for _, a := range answers {
		scored = append(scored, scoring.ScoredAnswer{Domain: string(a.Domain), Category: a.Category, Score: a.Score})
	}
	result := scoring.Compute(scored)

	if !assessment.IsCompleted() {
		now := s.now()
		assessment.OverallScore = result.Overall
		assessment.SoftScore = result.Soft
		assessment.DigitalScore = result.Digital
		assessment.CompletedAt = &now
		if err := uow.AssessmentRepository().Update(ctx, assessment); err != nil {
			return "", err
		}

		recs := []recommendation.Recommendation{
			recommendation.ForDomain(scoring.DomainSoft, result.Soft),
			recommendation.ForDomain(scoring.DomainDigital, result.Digital),
		}
		if err := uow.RecommendationRepository().CreateBatch(ctx, toRecommendationEntities(assessment.Id, recs)); err != nil {
			return "", err
		}

		if err := uow.OutboxRepository().Create(ctx, submittedEvent(assessment)); err != nil {
			return "", err
		}
	}

	session.State = entity.ChatSessionStateCompleted
	session.CurrentQuestionId = nil
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info("CHAT", "Assessment completed", map[string]interface{}{
		"session_id":    session.Id,
		"assessment_id": assessment.Id,
		"overall_score": assessment.OverallScore,
	})

	return conversation.Completion(assessment.SoftScore, assessment.DigitalScore, assessment.OverallScore), nil
}
