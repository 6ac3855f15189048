package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"

	"gorm.io/gorm"
)

type IQuestionService interface {
	List(ctx context.Context, req *dto.ListQuestionsRequest) ([]*dto.QuestionResponse, error)
	Create(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{uowFactory: uowFactory}
}

var whitespace = regexp.MustCompile(`\s+`)

// optionLabels are the answers a chat user can type.
const optionLabels = "ABCDE"

// normalizeSpaces trims and collapses runs of whitespace to one space.
func normalizeSpaces(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func (s *questionService) List(ctx context.Context, req *dto.ListQuestionsRequest) ([]*dto.QuestionResponse, error) {
	specs := []specification.Specification{}
	if req.ActiveOnly {
		specs = append(specs, specification.ActiveQuestions{})
	}
	if req.Domain != "" {
		if req.Domain != string(entity.QuestionDomainSoft) && req.Domain != string(entity.QuestionDomainDigital) {
			return nil, apperror.Validation("domain must be one of [soft digital]")
		}
		specs = append(specs, specification.ByDomain{Domain: req.Domain})
	}
	if category := normalizeSpaces(req.Category); category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}
	specs = append(specs, specification.QuestionOrder{})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal("Failed to list questions", err)
	}

	res := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		res = append(res, toQuestionResponse(q))
	}
	return res, nil
}

func (s *questionService) Create(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	text := normalizeSpaces(req.Text)
	category := normalizeSpaces(req.Category)
	if text == "" || category == "" {
		return nil, apperror.Validation("text and category must not be blank")
	}
	if req.Domain != string(entity.QuestionDomainSoft) && req.Domain != string(entity.QuestionDomainDigital) {
		return nil, apperror.Validation("domain must be one of [soft digital]")
	}
	if len(req.Options) < 2 {
		return nil, apperror.Validation("At least two options required")
	}

	seen := make(map[string]bool, len(req.Options))
	options := make([]*entity.QuestionOption, 0, len(req.Options))
	for _, op := range req.Options {
		label := strings.ToUpper(strings.TrimSpace(op.Label))
		if len(label) != 1 || !strings.Contains(optionLabels, label) {
			return nil, apperror.Validation("Option labels must be a single letter A-E")
		}
		if seen[label] {
			return nil, apperror.Validation("Duplicate option labels are not allowed")
		}
		seen[label] = true
		options = append(options, &entity.QuestionOption{
			Label: label,
			Text:  normalizeSpaces(op.Text),
			Score: op.Score,
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("Failed to create question", err)
	}
	defer uow.Rollback()

	existing, err := uow.QuestionRepository().FindOne(ctx,
		specification.ByDomain{Domain: req.Domain},
		specification.ByCategory{Category: category},
		specification.ByQuestionText{Text: text},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to create question", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Question already exists (same domain/category/text)")
	}

	question := &entity.Question{
		Text:         text,
		Domain:       entity.QuestionDomain(req.Domain),
		Category:     category,
		IsActive:     isActive,
		DisplayOrder: req.DisplayOrder,
		Options:      options,
	}
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Duplicate detected")
		}
		return nil, apperror.Internal("Failed to create question", err)
	}

	created, err := uow.QuestionRepository().FindOne(ctx, specification.ByQuestionID{ID: question.Id})
	if err != nil || created == nil {
		return nil, apperror.Internal("Failed to load created question", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal("Failed to create question", err)
	}

	return toQuestionResponse(created), nil
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	options := make([]dto.QuestionOptionResponse, 0, len(q.Options))
	for _, op := range q.Options {
		options = append(options, dto.QuestionOptionResponse{
			Id:    op.Id,
			Label: op.Label,
			Text:  op.Text,
			Score: op.Score,
		})
	}
	return &dto.QuestionResponse{
		Id:           q.Id,
		Text:         q.Text,
		Domain:       string(q.Domain),
		Category:     q.Category,
		DisplayOrder: q.DisplayOrder,
		IsActive:     q.IsActive,
		Options:      options,
	}
}
