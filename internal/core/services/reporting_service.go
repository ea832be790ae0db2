package services

import (
	"context"
	"time"

	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates the reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// GetAccountSummary returns per-kind totals for an account over [from, to].
func (s *reportingService) GetAccountSummary(ctx context.Context, accountID string, from, to time.Time) (*dto.AccountSummaryResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetKindSummary(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build account summary")
		return nil, err
	}

	return &dto.AccountSummaryResponse{
		AccountID: accountID,
		From:      from,
		To:        to,
		Rows:      rows,
	}, nil
}

// GetMonthlyUsage returns month-bucketed usage totals, oldest first.
func (s *reportingService) GetMonthlyUsage(ctx context.Context, accountID string, months int) (*dto.MonthlyUsageResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetMonthlyUsage(ctx, accountID, months)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly usage")
		return nil, err
	}

	return &dto.MonthlyUsageResponse{
		AccountID: accountID,
		Months:    rows,
	}, nil
}
