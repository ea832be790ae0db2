package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/google/uuid"
)

// roleRank orders company roles by privilege. Higher rank implies the
// permissions of all lower ranks.
var roleRank = map[domain.CompanyRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	planRepo    portsrepo.PlanRepositoryFacade
	accountSvc  portssvc.AccountWriterSvc
}

// NewCompanyService creates the company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, planRepo portsrepo.PlanRepositoryFacade, accountSvc portssvc.AccountWriterSvc) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		planRepo:    planRepo,
		accountSvc:  accountSvc,
	}
}

// CreateCompany creates the company with the creator as its admin and opens
// the shared company credit account.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	if req.PlanID != nil {
		if _, err := s.planRepo.FindPlanByID(ctx, *req.PlanID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: plan %s does not exist", apperrors.ErrValidation, *req.PlanID)
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         req.Name,
		BillingEmail: req.BillingEmail,
		PlanID:       req.PlanID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company, creatorUserID); err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("name", req.Name))
		return nil, err
	}

	if _, err := s.accountSvc.CreateAccount(ctx, dto.CreateAccountRequest{
		OwnerType: domain.OwnerCompany,
		OwnerID:   company.CompanyID,
		Name:      company.Name,
	}, creatorUserID); err != nil {
		s.LogError(ctx, err, "Failed to open company account",
			slog.String("company_id", company.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("admin_user_id", creatorUserID))
	return &company, nil
}

// GetCompanyByID retrieves a company the user is a member of.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, userID string) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ListCompaniesForUser retrieves the companies the user belongs to.
func (s *companyService) ListCompaniesForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Company, error) {
	return s.companyRepo.ListCompaniesByUserID(ctx, userID, limit, offset)
}

// ListMembers retrieves the members of a company the user belongs to.
func (s *companyService) ListMembers(ctx context.Context, companyID string, userID string) ([]domain.CompanyMember, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.companyRepo.ListMembers(ctx, companyID)
}

// AddMember adds a user to the company. Only admins may do this.
func (s *companyService) AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, actorUserID string) error {
	if err := s.AuthorizeUserAction(ctx, actorUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}
	if _, ok := roleRank[req.Role]; !ok {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	member := domain.CompanyMember{
		UserID:    req.UserID,
		CompanyID: companyID,
		Role:      req.Role,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.companyRepo.AddMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add company member",
			slog.String("company_id", companyID),
			slog.String("user_id", req.UserID))
		return err
	}

	s.LogInfo(ctx, "Company member added",
		slog.String("company_id", companyID),
		slog.String("user_id", req.UserID),
		slog.String("role", string(req.Role)))
	return nil
}

// AuthorizeUserAction returns nil when userID holds requiredRole or stronger
// in the company, apperrors.ErrForbidden otherwise.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	member, err := s.companyRepo.FindMembership(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return err
	}
	if roleRank[member.Role] < roleRank[requiredRole] {
		return apperrors.ErrForbidden
	}
	return nil
}
