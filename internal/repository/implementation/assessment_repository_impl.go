package implementation

import (
	"context"
	"errors"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/mapper"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/contract"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAssessmentRepository(db *gorm.DB) contract.AssessmentRepository {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AssessmentRepositoryImpl) Create(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) Update(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error) {
	var m model.Assessment
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AssessmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	var models []*model.Assessment
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Assessment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AssessmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Assessment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AnswerRepositoryImpl) Upsert(ctx context.Context, answer *entity.AssessmentAnswer) error {
	m := r.mapper.AnswerToModel(answer)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"option_id"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*answer = *r.mapper.AnswerToEntity(m)
	return nil
}

func (r *AnswerRepositoryImpl) CreateBatch(ctx context.Context, answers []*entity.AssessmentAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	models := make([]*model.AssessmentAnswer, len(answers))
	for i, a := range answers {
		models[i] = r.mapper.AnswerToModel(a)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*answers[i] = *r.mapper.AnswerToEntity(m)
	}
	return nil
}

func (r *AnswerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AssessmentAnswer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type scoredAnswerRow struct {
	QuestionId uint
	Domain     string
	Category   string
	Score      int
}

func (r *AnswerRepositoryImpl) FindScored(ctx context.Context, assessmentId uuid.UUID) ([]entity.ScoredAnswer, error) {
	var rows []scoredAnswerRow
	err := r.db.WithContext(ctx).
		Table("assessment_answers AS aa").
		Select("aa.question_id AS question_id, q.domain AS domain, q.category AS category, o.score AS score").
		Joins("JOIN questions q ON q.id = aa.question_id").
		Joins("JOIN question_options o ON o.id = aa.option_id").
		Where("aa.assessment_id = ?", assessmentId).
		Order("aa.question_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]entity.ScoredAnswer, len(rows))
	for i, row := range rows {
		res[i] = entity.ScoredAnswer{
			QuestionId: row.QuestionId,
			Domain:     entity.QuestionDomain(row.Domain),
			Category:   row.Category,
			Score:      row.Score,
		}
	}
	return res, nil
}

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *RecommendationRepositoryImpl) CreateBatch(ctx context.Context, recs []*entity.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	models := make([]*model.Recommendation, len(recs))
	for i, rec := range recs {
		models[i] = r.mapper.RecommendationToModel(rec)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*recs[i] = *r.mapper.RecommendationToEntity(m)
	}
	return nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	var models []*model.Recommendation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Recommendation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RecommendationToEntity(m)
	}
	return entities, nil
}
