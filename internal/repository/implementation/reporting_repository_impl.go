package implementation

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/mapper"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/contract"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/scope"

	"gorm.io/gorm"
)

type ReportingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewReportingRepository(db *gorm.DB) contract.ReportingRepository {
	return &ReportingRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

type totalsRow struct {
	Count      int64
	AvgOverall float64
	AvgSoft    float64
	AvgDigital float64
}

func (r *ReportingRepositoryImpl) Totals(ctx context.Context) (*entity.AssessmentTotals, error) {
	var row totalsRow
	err := r.db.WithContext(ctx).
		Table("assessments AS a").
		Select("COUNT(*) AS count, " +
			"COALESCE(AVG(a.overall_score), 0) AS avg_overall, " +
			"COALESCE(AVG(a.soft_score), 0) AS avg_soft, " +
			"COALESCE(AVG(a.digital_score), 0) AS avg_digital").
		Scopes(scope.CompletedOnly).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.AssessmentTotals{
		Count:      row.Count,
		AvgOverall: row.AvgOverall,
		AvgSoft:    row.AvgSoft,
		AvgDigital: row.AvgDigital,
	}, nil
}

type categoryGapRow struct {
	Category string
	AvgScore float64
	Answers  int64
}

// CategoryGaps ranks categories by ascending mean answer score, ties broken
// by category name. A non-positive limit returns every category.
func (r *ReportingRepositoryImpl) CategoryGaps(ctx context.Context, limit int) ([]*entity.CategoryGap, error) {
	var rows []categoryGapRow
	query := r.db.WithContext(ctx).
		Table("assessment_answers AS aa").
		Select("q.category AS category, AVG(o.score) AS avg_score, COUNT(*) AS answers").
		Joins("JOIN assessments a ON a.id = aa.assessment_id").
		Joins("JOIN questions q ON q.id = aa.question_id").
		Joins("JOIN question_options o ON o.id = aa.option_id").
		Scopes(scope.CompletedOnly).
		Group("q.category").
		Order("avg_score ASC").
		Order("q.category ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	res := make([]*entity.CategoryGap, len(rows))
	for i, row := range rows {
		res[i] = &entity.CategoryGap{Category: row.Category, AvgScore: row.AvgScore, Answers: row.Answers}
	}
	return res, nil
}

type sectorRow struct {
	Sector     string
	Count      int64
	AvgOverall float64
	AvgSoft    float64
	AvgDigital float64
}

func (r *ReportingRepositoryImpl) SectorStats(ctx context.Context) ([]*entity.SectorStat, error) {
	var rows []sectorRow
	err := r.db.WithContext(ctx).
		Table("assessments AS a").
		Select("COALESCE(NULLIF(a.respondent_sector, ''), 'Unspecified') AS sector, " +
			"COUNT(*) AS count, " +
			"AVG(a.overall_score) AS avg_overall, " +
			"AVG(a.soft_score) AS avg_soft, " +
			"AVG(a.digital_score) AS avg_digital").
		Scopes(scope.CompletedOnly).
		Group("COALESCE(NULLIF(a.respondent_sector, ''), 'Unspecified')").
		Order("sector ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]*entity.SectorStat, len(rows))
	for i, row := range rows {
		res[i] = &entity.SectorStat{
			Sector:     row.Sector,
			Count:      row.Count,
			AvgOverall: row.AvgOverall,
			AvgSoft:    row.AvgSoft,
			AvgDigital: row.AvgDigital,
		}
	}
	return res, nil
}

func (r *ReportingRepositoryImpl) Completed(ctx context.Context) ([]*entity.Assessment, error) {
	var models []*model.Assessment
	err := r.db.WithContext(ctx).
		Table("assessments AS a").
		Scopes(scope.CompletedOnly).
		Order("a.created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.Assessment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
