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

const companyColumns = `company_id, name, billing_email, plan_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.BillingEmail,
		&m.PlanID,
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

// SaveCompany persists a new company and its initial admin membership in one
// transaction. A company must never exist without at least one admin.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, adminUserID string) error {
	m := mapping.ToModelCompany(company)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	companyQuery := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, companyQuery,
		m.CompanyID,
		m.Name,
		m.BillingEmail,
		m.PlanID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: company %s already exists", apperrors.ErrDuplicate, m.CompanyID)
		}
		return fmt.Errorf("failed to save company %s: %w", m.CompanyID, err)
	}

	memberQuery := `
		INSERT INTO company_users (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, memberQuery, adminUserID, m.CompanyID, models.CompanyRole(domain.RoleAdmin), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save admin membership for company %s: %w", m.CompanyID, err)
	}

	return r.Commit(ctx, tx)
}

// FindCompanyByID retrieves a company by its unique identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`

	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}

	c := mapping.ToDomainCompany(*m)
	return &c, nil
}

// ListCompaniesByUserID retrieves the companies a user is a member of.
func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT c.company_id, c.name, c.billing_email, c.plan_id, c.is_active,
		       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN company_users cu ON cu.company_id = c.company_id
		WHERE cu.user_id = $1 AND c.is_active = TRUE
		ORDER BY c.name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies for user %s: %w", userID, err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, mapping.ToDomainCompany(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", rows.Err())
	}

	return companies, nil
}

// FindMembership retrieves a user's membership in a company.
func (r *PgxCompanyRepository) FindMembership(ctx context.Context, companyID string, userID string) (*domain.CompanyMember, error) {
	query := `
		SELECT user_id, company_id, role, joined_at
		FROM company_users
		WHERE company_id = $1 AND user_id = $2;
	`
	var m models.CompanyMember
	err := r.Pool.QueryRow(ctx, query, companyID, userID).Scan(&m.UserID, &m.CompanyID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of user %s in company %s: %w", userID, companyID, err)
	}

	member := mapping.ToDomainCompanyMember(m)
	return &member, nil
}

// ListMembers retrieves the members of a company with their user names.
func (r *PgxCompanyRepository) ListMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	query := `
		SELECT cu.user_id, u.name, cu.company_id, cu.role, cu.joined_at
		FROM company_users cu
		JOIN users u ON u.user_id = cu.user_id
		WHERE cu.company_id = $1
		ORDER BY cu.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of company %s: %w", companyID, err)
	}
	defer rows.Close()

	members := []domain.CompanyMember{}
	for rows.Next() {
		var member domain.CompanyMember
		if err := rows.Scan(&member.UserID, &member.UserName, &member.CompanyID, &member.Role, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		members = append(members, member)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", rows.Err())
	}

	return members, nil
}

// UpdateCompany updates an existing company's details.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		UPDATE companies
		SET name = $2, billing_email = $3, plan_id = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.Name,
		m.BillingEmail,
		m.PlanID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update company %s: %w", m.CompanyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddMember inserts a membership row.
func (r *PgxCompanyRepository) AddMember(ctx context.Context, member domain.CompanyMember) error {
	m := mapping.ToModelCompanyMember(member)

	query := `
		INSERT INTO company_users (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.CompanyID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: user %s is already a member of company %s", apperrors.ErrDuplicate, m.UserID, m.CompanyID)
			case "23503": // foreign key violation
				return apperrors.ErrNotFound
			}
		}
		return fmt.Errorf("failed to add member %s to company %s: %w", m.UserID, m.CompanyID, err)
	}
	return nil
}
