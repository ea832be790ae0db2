package repositories

import (
	"context"
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// ReportingRepository defines aggregate queries over the credit ledger.
type ReportingRepository interface {
	// GetKindSummary aggregates entries per kind for an account over [from, to].
	GetKindSummary(ctx context.Context, accountID string, from, to time.Time) ([]domain.KindSummaryRow, error)

	// GetMonthlyUsage returns month-bucketed usage totals for an account for
	// the last `months` months, oldest first.
	GetMonthlyUsage(ctx context.Context, accountID string, months int) ([]domain.MonthlyUsageRow, error)
}
