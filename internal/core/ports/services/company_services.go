package services

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company the user is a member of.
	GetCompanyByID(ctx context.Context, companyID string, userID string) (*domain.Company, error)

	// ListCompaniesForUser retrieves the companies the user belongs to.
	ListCompaniesForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Company, error)

	// ListMembers retrieves the members of a company the user belongs to.
	ListMembers(ctx context.Context, companyID string, userID string) ([]domain.CompanyMember, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany creates the company, makes the creator its admin and
	// opens the company credit account.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// AddMember adds a user to the company. Requires the actor to be an admin.
	AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, actorUserID string) error
}

// CompanyAuthorizerSvc checks membership roles for company-scoped actions.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when userID holds requiredRole (or a
	// stronger role) in the company, apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error
}

// CompanySvcFacade combines all company-related service interfaces.
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
