package services

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/dto"
)

// CreditLedgerSvc is the write side of the credit ledger.
type CreditLedgerSvc interface {
	// AppendTransaction validates and appends one ledger entry, atomically
	// moving the account balance. It returns the persisted entry with its
	// identifier and balance snapshots assigned.
	AppendTransaction(ctx context.Context, req dto.AppendTransactionRequest, actorUserID string) (*domain.CreditTransaction, error)
}

// CreditReaderSvc is the read side of the credit ledger.
type CreditReaderSvc interface {
	// GetBalance returns the current balance and lifetime accumulators.
	GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error)

	// ListTransactions returns entries newest first, optionally filtered by
	// kind, paginated by limit/offset.
	ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) ([]domain.CreditTransaction, error)

	// GetStatement returns a cursor-paginated page of entries plus the token
	// for the next page (nil when exhausted).
	GetStatement(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)
}

// CreditSvcFacade combines the ledger service interfaces.
type CreditSvcFacade interface {
	CreditLedgerSvc
	CreditReaderSvc
}
