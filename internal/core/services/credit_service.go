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
	"github.com/askelio/askelio-backend/internal/events"
	"github.com/google/uuid"
)

// creditService implements the ledger write and read operations.
type creditService struct {
	BaseService
	creditRepo  portsrepo.CreditRepositoryFacade
	accountRepo portsrepo.AccountReader
	publisher   portssvc.EventPublisher
}

// NewCreditService creates the ledger service. publisher may be nil, in which
// case no events are emitted.
func NewCreditService(creditRepo portsrepo.CreditRepositoryFacade, accountRepo portsrepo.AccountReader, publisher portssvc.EventPublisher) portssvc.CreditSvcFacade {
	return &creditService{
		creditRepo:  creditRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
	}
}

// AppendTransaction validates and appends one ledger entry. The amount sign
// must match the kind: PURCHASE and BONUS are positive, USAGE is negative,
// REFUND and ADJUSTMENT are non-zero either way. The balance move itself is
// delegated to the repository, which performs it under a row lock.
func (s *creditService) AppendTransaction(ctx context.Context, req dto.AppendTransactionRequest, actorUserID string) (*domain.CreditTransaction, error) {
	if !domain.ValidKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be non-zero", apperrors.ErrInvalidAmount)
	}
	switch req.Kind {
	case domain.KindPurchase, domain.KindBonus:
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s amount must be positive", apperrors.ErrInvalidAmount, req.Kind)
		}
	case domain.KindUsage:
		if req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: USAGE amount must be negative", apperrors.ErrInvalidAmount)
		}
	}

	now := time.Now().UTC()
	entry := domain.CreditTransaction{
		TransactionID:    uuid.NewString(),
		AccountID:        req.AccountID,
		Amount:           req.Amount,
		Kind:             req.Kind,
		Description:      req.Description,
		Category:         req.Category,
		DocumentID:       req.DocumentID,
		SessionID:        req.SessionID,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		Provider:         req.Provider,
		Model:            req.Model,
		PagesProcessed:   req.PagesProcessed,
		TokensUsed:       req.TokensUsed,
		CostUSD:          req.CostUSD,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	persisted, err := s.creditRepo.AppendTransaction(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append ledger entry",
			slog.String("account_id", req.AccountID),
			slog.String("kind", string(req.Kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry appended",
		slog.String("transaction_id", persisted.TransactionID),
		slog.String("account_id", persisted.AccountID),
		slog.String("kind", string(persisted.Kind)),
		slog.String("amount", persisted.Amount.String()))

	s.publishRecorded(ctx, persisted)

	return persisted, nil
}

// publishRecorded emits the ledger event. The append has already committed,
// so a publish failure is logged and swallowed.
func (s *creditService) publishRecorded(ctx context.Context, entry *domain.CreditTransaction) {
	if s.publisher == nil {
		return
	}
	event := events.NewCreditTransactionRecorded(entry)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("transaction_id", entry.TransactionID))
	}
}

// GetBalance returns the balance state of an account.
func (s *creditService) GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		AccountID:         account.AccountID,
		Balance:           account.Balance,
		LifetimePurchased: account.LifetimePurchased,
		LifetimeUsed:      account.LifetimeUsed,
	}, nil
}

// ListTransactions returns ledger entries for an account, newest first. The
// account must exist; an empty ledger yields an empty list, not an error.
func (s *creditService) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) ([]domain.CreditTransaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.creditRepo.ListTransactionsByAccountID(ctx, accountID, params.Kind, params.Limit, params.Offset)
}

// GetStatement returns a cursor-paginated page of ledger entries.
func (s *creditService) GetStatement(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, nil, err
	}
	return s.creditRepo.ListTransactionsAfterToken(ctx, accountID, limit, nextToken)
}
