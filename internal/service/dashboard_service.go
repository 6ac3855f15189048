package service

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/dto"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/apperror"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/admin/dashboard"
)

type IDashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
	GetLogs(ctx context.Context, req *dto.LogListRequest) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogListResponse, error)
}

type dashboardService struct {
	uowFactory          unitofwork.RepositoryFactory
	logger              logger.ILogger
	dashboardAggregator *dashboard.Aggregator
}

func NewDashboardService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	dashboardAggregator *dashboard.Aggregator,
) IDashboardService {
	return &dashboardService{
		uowFactory:          uowFactory,
		logger:              logger,
		dashboardAggregator: dashboardAggregator,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	res, err := s.dashboardAggregator.GetSummary(ctx, uow, dashboard.DefaultTopGaps)
	if err != nil {
		return nil, apperror.Internal("Failed to load dashboard summary", err)
	}
	return res, nil
}

func (s *dashboardService) GetLogs(ctx context.Context, req *dto.LogListRequest) ([]*dto.LogListResponse, error) {
	logs, err := s.dashboardAggregator.GetSystemLogs(s.logger, req.Page, req.Limit, req.Level)
	if err != nil {
		return nil, apperror.Internal("Failed to read logs", err)
	}
	return logs, nil
}

func (s *dashboardService) GetLogDetail(ctx context.Context, logId string) (*dto.LogListResponse, error) {
	entry, err := s.dashboardAggregator.GetLogDetail(s.logger, logId)
	if err != nil {
		return nil, apperror.NotFound("Log entry not found")
	}
	return entry, nil
}
