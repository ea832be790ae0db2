package services

import (
	"context"
	"time"

	"github.com/askelio/askelio-backend/internal/dto"
)

// ReportingSvcFacade defines aggregate reporting over the credit ledger.
type ReportingSvcFacade interface {
	// GetAccountSummary returns per-kind totals for an account over [from, to].
	GetAccountSummary(ctx context.Context, accountID string, from, to time.Time) (*dto.AccountSummaryResponse, error)

	// GetMonthlyUsage returns month-bucketed usage totals, oldest first.
	GetMonthlyUsage(ctx context.Context, accountID string, months int) (*dto.MonthlyUsageResponse, error)
}
