package service

import (
	"context"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/admin/dashboard"

	"github.com/xuri/excelize/v2"
)

const (
	SheetNationalSummary  = "National Summary"
	SheetSkillGaps        = "Skill Gaps"
	SheetSectorAnalysis   = "Sector Analysis"
	SheetRiskDistribution = "Risk Distribution"
	SheetRawData          = "Raw Data"

	ExportFileName    = "skills_policy_report.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type IExportService interface {
	AssessmentsWorkbook(ctx context.Context) ([]byte, error)
}

type exportService struct {
	uowFactory          unitofwork.RepositoryFactory
	logger              logger.ILogger
	dashboardAggregator *dashboard.Aggregator
}

func NewExportService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	dashboardAggregator *dashboard.Aggregator,
) IExportService {
	return &exportService{
		uowFactory:          uowFactory,
		logger:              logger,
		dashboardAggregator: dashboardAggregator,
	}
}

// AssessmentsWorkbook renders the policy report over completed assessments.
func (s *exportService) AssessmentsWorkbook(ctx context.Context) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := s.dashboardAggregator.GetReport(ctx, uow)
	if err != nil {
		return nil, apperror.Internal("Failed to build export", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f}
	w.sheet(SheetNationalSummary, true,
		[]interface{}{"Total Assessments", "Average Overall Score", "Average Soft Skills", "Average Digital Skills"},
		[]interface{}{report.Totals.Count, report.Totals.AvgOverall, report.Totals.AvgSoft, report.Totals.AvgDigital},
	)

	gaps := [][]interface{}{{"Skill Area", "Average Score", "Risk Level", "Total Responses"}}
	for _, g := range report.Gaps {
		gaps = append(gaps, []interface{}{g.Category, g.AvgScore, dashboard.RiskLevel(g.AvgScore), g.Answers})
	}
	w.sheet(SheetSkillGaps, false, gaps...)

	sectors := [][]interface{}{{"Sector", "Avg Overall Score", "Avg Soft Score", "Avg Digital Score", "Assessments"}}
	for _, st := range report.Sectors {
		sectors = append(sectors, []interface{}{st.Sector, st.AvgOverall, st.AvgSoft, st.AvgDigital, st.Count})
	}
	w.sheet(SheetSectorAnalysis, false, sectors...)

	risk := [][]interface{}{{"Risk Level", "Count"}}
	for _, b := range report.Risk {
		risk = append(risk, []interface{}{b.Label, b.Count})
	}
	w.sheet(SheetRiskDistribution, false, risk...)

	raw := [][]interface{}{{"Assessment ID", "User ID", "Source", "Sector", "Category", "Overall Score", "Soft Score", "Digital Score", "Created At"}}
	for _, a := range report.Assessments {
		var userId, sector, category string
		if a.UserId != nil {
			userId = a.UserId.String()
		}
		if a.RespondentSector != nil {
			sector = *a.RespondentSector
		}
		if a.RespondentCategory != nil {
			category = *a.RespondentCategory
		}
		raw = append(raw, []interface{}{
			a.Id.String(), userId, string(a.Source), sector, category,
			a.OverallScore, a.SoftScore, a.DigitalScore, a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.sheet(SheetRawData, false, raw...)

	if w.err != nil {
		return nil, apperror.Internal("Failed to build export", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.Internal("Failed to write export", err)
	}

	s.logger.Info("EXPORT", "Assessment workbook generated", map[string]interface{}{
		"assessments": len(report.Assessments),
		"bytes":       buf.Len(),
	})
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so the sheet calls read top to bottom.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) sheet(name string, first bool, rows ...[]interface{}) {
	if w.err != nil {
		return
	}
	if first {
		w.err = w.f.SetSheetName("Sheet1", name)
	} else {
		_, w.err = w.f.NewSheet(name)
	}
	if w.err != nil {
		return
	}

	if w.header == 0 {
		w.header, w.err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if w.err != nil {
			return
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			w.err = err
			return
		}
		row := row
		if w.err = w.f.SetSheetRow(name, cell, &row); w.err != nil {
			return
		}
	}

	if len(rows) > 0 {
		last, err := excelize.ColumnNumberToName(len(rows[0]))
		if err != nil {
			w.err = err
			return
		}
		if w.err = w.f.SetColWidth(name, "A", last, 22); w.err != nil {
			return
		}
		w.err = w.f.SetRowStyle(name, 1, 1, w.header)
	}
}
