package services

import (
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil when ledger events are disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Credit = NewCreditService(repos.CreditRepo, repos.AccountRepo, publisher)
	container.User = NewUserService(repos.UserRepo)
	container.Plan = NewPlanService(repos.PlanRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.PlanRepo, container.Account)
	container.Auth = NewAuthService(cfg, container.User, container.Account, container.Credit)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)

	return container
}

// Interface implementation checks
var (
	_ portssvc.AccountSvcFacade   = (*accountService)(nil)
	_ portssvc.CreditSvcFacade    = (*creditService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.AuthSvcFacade      = (*authService)(nil)
	_ portssvc.CompanySvcFacade   = (*companyService)(nil)
	_ portssvc.PlanSvcFacade      = (*planService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
