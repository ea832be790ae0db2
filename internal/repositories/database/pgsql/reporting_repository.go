package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetKindSummary aggregates ledger entries per kind for an account over
// [from, to]. Kinds with no entries in the window are absent from the result.
func (r *PgxReportingRepository) GetKindSummary(ctx context.Context, accountID string, from, to time.Time) ([]domain.KindSummaryRow, error) {
	query := `
		SELECT kind, COALESCE(SUM(amount), 0), COUNT(*)
		FROM credit_transactions
		WHERE account_id = $1 AND created_at >= $2 AND created_at <= $3
		GROUP BY kind
		ORDER BY kind;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query kind summary for account %s: %w", accountID, err)
	}
	defer rows.Close()

	summary := []domain.KindSummaryRow{}
	for rows.Next() {
		var row domain.KindSummaryRow
		if err := rows.Scan(&row.Kind, &row.TotalAmount, &row.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan kind summary row: %w", err)
		}
		summary = append(summary, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating kind summary rows: %w", rows.Err())
	}

	return summary, nil
}

// GetMonthlyUsage returns month-bucketed usage totals for an account for the
// last months months, oldest first. Usage amounts are negative in the ledger;
// the totals here are reported positive.
func (r *PgxReportingRepository) GetMonthlyUsage(ctx context.Context, accountID string, months int) ([]domain.MonthlyUsageRow, error) {
	if months <= 0 {
		months = 6
	}

	query := `
		SELECT date_trunc('month', created_at) AS month,
		       COALESCE(SUM(-amount), 0) AS total_used,
		       COUNT(DISTINCT document_id) AS documents_count
		FROM credit_transactions
		WHERE account_id = $1
		  AND kind = 'USAGE'
		  AND created_at >= date_trunc('month', now()) - ($2::int - 1) * interval '1 month'
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly usage for account %s: %w", accountID, err)
	}
	defer rows.Close()

	usage := []domain.MonthlyUsageRow{}
	for rows.Next() {
		var row domain.MonthlyUsageRow
		if err := rows.Scan(&row.Month, &row.TotalUsed, &row.DocumentsCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly usage row: %w", err)
		}
		usage = append(usage, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly usage rows: %w", rows.Err())
	}

	return usage, nil
}
