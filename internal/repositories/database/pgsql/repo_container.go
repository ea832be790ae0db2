package pgsql

import (
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return &portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		CreditRepo:    newPgxCreditTransactionRepository(pool, accountRepo),
		UserRepo:      newPgxUserRepository(pool),
		CompanyRepo:   newPgxCompanyRepository(pool),
		PlanRepo:      newPgxPlanRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
