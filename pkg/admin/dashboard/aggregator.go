package dashboard

import (
	"context"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/assessment/scoring"
)

const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"

	highRiskBelow   = 3.0
	mediumRiskBelow = 3.5

	DefaultTopGaps = 10

	// zapcore.ISO8601TimeEncoder
	logTimeLayout = "2006-01-02T15:04:05.000Z0700"
)

// RiskLevel buckets a mean score on the 1..5 scale.
func RiskLevel(score float64) string {
	switch {
	case score < highRiskBelow:
		return RiskHigh
	case score < mediumRiskBelow:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskBucket is one row of the overall score distribution.
type RiskBucket struct {
	Label string
	Count int
}

// Report is everything the workbook export needs, already rounded.
type Report struct {
	Totals      entity.AssessmentTotals
	Gaps        []*entity.CategoryGap
	Sectors     []*entity.SectorStat
	Risk        []RiskBucket
	Assessments []*entity.Assessment
}

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetSummary returns the completed-assessment totals and the lowest scoring
// categories.
func (a *Aggregator) GetSummary(ctx context.Context, uow unitofwork.UnitOfWork, topGaps int) (*dto.DashboardSummaryResponse, error) {
	totals, err := uow.ReportingRepository().Totals(ctx)
	if err != nil {
		return nil, err
	}

	gaps, err := uow.ReportingRepository().CategoryGaps(ctx, topGaps)
	if err != nil {
		return nil, err
	}

	items := make([]dto.GapItem, 0, len(gaps))
	for _, g := range gaps {
		items = append(items, dto.GapItem{
			SkillArea: g.Category,
			AvgScore:  scoring.Round2(g.AvgScore),
			NAnswers:  g.Answers,
		})
	}

	return &dto.DashboardSummaryResponse{
		TotalAssessments: totals.Count,
		AvgOverall:       scoring.Round2(totals.AvgOverall),
		AvgSoft:          scoring.Round2(totals.AvgSoft),
		AvgDigital:       scoring.Round2(totals.AvgDigital),
		TopGaps:          items,
	}, nil
}

// GetReport collects the full export data set over completed assessments.
func (a *Aggregator) GetReport(ctx context.Context, uow unitofwork.UnitOfWork) (*Report, error) {
	reporting := uow.ReportingRepository()

	totals, err := reporting.Totals(ctx)
	if err != nil {
		return nil, err
	}
	gaps, err := reporting.CategoryGaps(ctx, 0)
	if err != nil {
		return nil, err
	}
	sectors, err := reporting.SectorStats(ctx)
	if err != nil {
		return nil, err
	}
	assessments, err := reporting.Completed(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Totals: entity.AssessmentTotals{
			Count:      totals.Count,
			AvgOverall: scoring.Round2(totals.AvgOverall),
			AvgSoft:    scoring.Round2(totals.AvgSoft),
			AvgDigital: scoring.Round2(totals.AvgDigital),
		},
		Gaps:        gaps,
		Sectors:     sectors,
		Risk:        RiskDistribution(assessments),
		Assessments: assessments,
	}
	for _, g := range report.Gaps {
		g.AvgScore = scoring.Round2(g.AvgScore)
	}
	for _, s := range report.Sectors {
		s.AvgOverall = scoring.Round2(s.AvgOverall)
		s.AvgSoft = scoring.Round2(s.AvgSoft)
		s.AvgDigital = scoring.Round2(s.AvgDigital)
	}

	a.logger.Debug("DASHBOARD", "Report aggregated", map[string]interface{}{
		"assessments": len(assessments),
		"categories":  len(gaps),
		"sectors":     len(sectors),
	})
	return report, nil
}

// RiskDistribution counts assessments per overall-score risk bucket, always
// returning the three buckets in High, Medium, Low order.
func RiskDistribution(assessments []*entity.Assessment) []RiskBucket {
	buckets := []RiskBucket{
		{Label: "High Risk (<3)"},
		{Label: "Medium Risk (3–3.5)"},
		{Label: "Low Risk (>3.5)"},
	}
	for _, as := range assessments {
		switch RiskLevel(as.OverallScore) {
		case RiskHigh:
			buckets[0].Count++
		case RiskMedium:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// GetSystemLogs retrieves system logs
func (a *Aggregator) GetSystemLogs(loggerSvc logger.ILogger, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	logs, err := loggerSvc.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, toLogResponse(l))
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(loggerSvc logger.ILogger, logId string) (*dto.LogListResponse, error) {
	l, err := loggerSvc.GetLogById(logId)
	if err != nil {
		return nil, err
	}
	res := toLogResponse(*l)
	res.Id = logId
	return res, nil
}

func toLogResponse(l logger.LogEntry) *dto.LogListResponse {
	ts, err := time.Parse(logTimeLayout, l.Timestamp)
	if err != nil {
		ts, _ = time.Parse(time.RFC3339, l.Timestamp)
	}
	return &dto.LogListResponse{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   l.Details,
		CreatedAt: ts,
	}
}
