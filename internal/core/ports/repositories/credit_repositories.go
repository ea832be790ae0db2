package repositories

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// CreditTransactionReader defines read operations over the credit ledger.
type CreditTransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CreditTransaction, error)

	// ListTransactionsByAccountID retrieves entries for an account ordered
	// newest first (created_at DESC, transaction_id DESC), optionally filtered
	// by kind, paginated by limit/offset.
	ListTransactionsByAccountID(ctx context.Context, accountID string, kind *domain.TransactionKind, limit int, offset int) ([]domain.CreditTransaction, error)

	// ListTransactionsAfterToken retrieves a cursor-paginated page of entries
	// for an account, newest first. It returns the page and a token for the
	// next page, or nil when the feed is exhausted.
	ListTransactionsAfterToken(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)
}

// CreditTransactionWriter defines the single write operation on the ledger.
type CreditTransactionWriter interface {
	// AppendTransaction atomically appends entry to the account's ledger and
	// moves the account balance (and lifetime accumulators) accordingly:
	// it locks the account row, validates the usage overdraft rule, inserts
	// the entry with balance snapshots and updates the account, all in one
	// database transaction. It returns the persisted entry with its snapshots
	// filled in.
	//
	// Errors: apperrors.ErrNotFound when the account does not exist,
	// apperrors.ErrInsufficientCredits when a USAGE entry would drive the
	// balance below zero, *apperrors.AppError for storage failures. On any
	// error no state is changed.
	AppendTransaction(ctx context.Context, entry domain.CreditTransaction) (*domain.CreditTransaction, error)
}

// CreditRepositoryFacade combines ledger read and write interfaces.
type CreditRepositoryFacade interface {
	CreditTransactionReader
	CreditTransactionWriter
}

// CreditRepositoryWithTx extends CreditRepositoryFacade with transaction capabilities.
type CreditRepositoryWithTx interface {
	CreditRepositoryFacade
	TransactionManager
}
