package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	CreditRepo    CreditRepositoryFacade
	UserRepo      UserRepositoryFacade
	CompanyRepo   CompanyRepositoryFacade
	PlanRepo      PlanRepositoryFacade
	ReportingRepo ReportingRepository
}
