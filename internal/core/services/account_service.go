package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount opens a new credit account with a zero balance. An owner can
// hold at most one account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if req.OwnerType != domain.OwnerUser && req.OwnerType != domain.OwnerCompany {
		return nil, fmt.Errorf("%w: unknown owner type %q", apperrors.ErrValidation, req.OwnerType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		OwnerType:         req.OwnerType,
		OwnerID:           req.OwnerID,
		Name:              req.Name,
		Balance:           decimal.Zero,
		LifetimePurchased: decimal.Zero,
		LifetimeUsed:      decimal.Zero,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("owner_type", string(req.OwnerType)),
			slog.String("owner_id", req.OwnerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("owner_type", string(account.OwnerType)))
	return &account, nil
}

// GetAccountByID retrieves an account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccountByOwner retrieves the credit account of a user or company.
func (s *accountService) GetAccountByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByOwner(ctx, ownerType, ownerID)
}

// ListAccounts retrieves a paginated list of active accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// DeactivateAccount marks an account as inactive. The ledger history of a
// deactivated account stays readable.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actorUserID string) error {
	now := time.Now().UTC()
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
