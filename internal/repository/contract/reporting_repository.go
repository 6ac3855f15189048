package contract

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
)

// ReportingRepository holds the read-only aggregates over completed
// assessments used by the dashboard and the export.
type ReportingRepository interface {
	Totals(ctx context.Context) (*entity.AssessmentTotals, error)
	CategoryGaps(ctx context.Context, limit int) ([]*entity.CategoryGap, error)
	SectorStats(ctx context.Context) ([]*entity.SectorStat, error)
	Completed(ctx context.Context) ([]*entity.Assessment, error)
}
