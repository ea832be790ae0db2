package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	"github.com/askelio/askelio-backend/internal/models"
	"github.com/askelio/askelio-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const planColumns = `plan_id, name, monthly_credits, price_per_page, price_monthly, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxPlanRepository struct {
	BaseRepository
}

func newPgxPlanRepository(pool *pgxpool.Pool) *PgxPlanRepository {
	return &PgxPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPlanRepository implements portsrepo.PlanRepositoryFacade
var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

func scanPlan(row pgx.Row) (*models.Plan, error) {
	var m models.Plan
	err := row.Scan(
		&m.PlanID,
		&m.Name,
		&m.MonthlyCredits,
		&m.PricePerPage,
		&m.PriceMonthly,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePlan persists a new plan.
func (r *PgxPlanRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	m := mapping.ToModelPlan(plan)

	query := `
		INSERT INTO plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PlanID,
		m.Name,
		m.MonthlyCredits,
		m.PricePerPage,
		m.PriceMonthly,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: plan %s already exists", apperrors.ErrDuplicate, m.PlanID)
		}
		return fmt.Errorf("failed to save plan %s: %w", m.PlanID, err)
	}
	return nil
}

// FindPlanByID retrieves a plan by its unique identifier.
func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE plan_id = $1;`

	m, err := scanPlan(r.Pool.QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan by ID %s: %w", planID, err)
	}

	p := mapping.ToDomainPlan(*m)
	return &p, nil
}

// ListPlans retrieves all active plans, cheapest first.
func (r *PgxPlanRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE is_active = TRUE
		ORDER BY price_monthly;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		m, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, mapping.ToDomainPlan(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", rows.Err())
	}

	return plans, nil
}
