package repositories

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves the companies a user is a member of.
	ListCompaniesByUserID(ctx context.Context, userID string, limit int, offset int) ([]domain.Company, error)

	// FindMembership retrieves a user's membership in a company, or
	// apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, companyID string, userID string) (*domain.CompanyMember, error)

	// ListMembers retrieves the members of a company.
	ListMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company together with its initial admin
	// membership, atomically.
	SaveCompany(ctx context.Context, company domain.Company, adminUserID string) error

	// UpdateCompany updates an existing company's details.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, member domain.CompanyMember) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
