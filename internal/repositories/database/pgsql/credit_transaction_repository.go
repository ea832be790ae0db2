package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	"github.com/askelio/askelio-backend/internal/models"
	"github.com/askelio/askelio-backend/internal/utils/mapping"
	"github.com/askelio/askelio-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const creditTransactionColumns = `transaction_id, account_id, amount, kind, description, category, document_id, session_id, payment_method, payment_reference, provider, model, pages_processed, tokens_used, cost_usd, balance_before, balance_after, created_at, created_by, last_updated_at, last_updated_by`

type PgxCreditTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxCreditTransactionRepository creates a new repository for the credit ledger.
func newPgxCreditTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) *PgxCreditTransactionRepository {
	return &PgxCreditTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxCreditTransactionRepository implements portsrepo.CreditRepositoryWithTx
var _ portsrepo.CreditRepositoryWithTx = (*PgxCreditTransactionRepository)(nil)

func scanCreditTransaction(row pgx.Row) (*models.CreditTransaction, error) {
	var m models.CreditTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.Kind,
		&m.Description,
		&m.Category,
		&m.DocumentID,
		&m.SessionID,
		&m.PaymentMethod,
		&m.PaymentReference,
		&m.Provider,
		&m.Model,
		&m.PagesProcessed,
		&m.TokensUsed,
		&m.CostUSD,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AppendTransaction atomically appends one entry to the ledger and moves the
// account balance. The account row is locked with FOR UPDATE first, so
// concurrent appends against the same account serialize and each entry sees
// a consistent balance snapshot. Nothing is written when the overdraft check
// fails.
func (r *PgxCreditTransactionRepository) AppendTransaction(ctx context.Context, entry domain.CreditTransaction) (*domain.CreditTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, entry.AccountID)
	if err != nil {
		return nil, err
	}

	balanceBefore := account.Balance
	balanceAfter := balanceBefore.Add(entry.Amount)

	if entry.Kind == domain.KindUsage && balanceAfter.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s, requested %s",
			apperrors.ErrInsufficientCredits, balanceBefore.String(), entry.Amount.Neg().String())
	}

	entry.BalanceBefore = balanceBefore
	entry.BalanceAfter = balanceAfter
	m := mapping.ToModelCreditTransaction(entry)

	insertQuery := `
		INSERT INTO credit_transactions (` + creditTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.Kind,
		m.Description,
		m.Category,
		m.DocumentID,
		m.SessionID,
		m.PaymentMethod,
		m.PaymentReference,
		m.Provider,
		m.Model,
		m.PagesProcessed,
		m.TokensUsed,
		m.CostUSD,
		m.BalanceBefore,
		m.BalanceAfter,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to insert ledger entry for account %s", entry.AccountID), err)
	}

	purchasedDelta := decimal.Zero
	usedDelta := decimal.Zero
	switch entry.Kind {
	case domain.KindPurchase, domain.KindBonus:
		purchasedDelta = entry.Amount
	case domain.KindUsage:
		usedDelta = entry.Amount.Abs()
	}

	updateQuery := `
		UPDATE accounts
		SET balance = $2,
		    lifetime_purchased = lifetime_purchased + $3,
		    lifetime_used = lifetime_used + $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		entry.AccountID,
		balanceAfter,
		purchasedDelta,
		usedDelta,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update balance for account %s", entry.AccountID), err)
	}
	if cmdTag.RowsAffected() != 1 {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("balance update touched %d rows for account %s", cmdTag.RowsAffected(), entry.AccountID), nil)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &entry, nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxCreditTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CreditTransaction, error) {
	query := `SELECT ` + creditTransactionColumns + ` FROM credit_transactions WHERE transaction_id = $1;`

	m, err := scanCreditTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", transactionID, err)
	}

	entry := mapping.ToDomainCreditTransaction(*m)
	return &entry, nil
}

// ListTransactionsByAccountID retrieves entries for an account, newest first,
// optionally filtered by kind.
func (r *PgxCreditTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, kind *domain.TransactionKind, limit int, offset int) ([]domain.CreditTransaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + creditTransactionColumns + `
		FROM credit_transactions
		WHERE account_id = $1 AND ($2::text IS NULL OR kind = $2)
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries, err := collectCreditTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCreditTransactionSlice(entries), nil
}

// ListTransactionsAfterToken retrieves a cursor-paginated page of entries for
// an account, newest first. The token encodes the (created_at, transaction_id)
// position of the last entry on the previous page.
func (r *PgxCreditTransactionRepository) ListTransactionsAfterToken(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1

	var cursorTime *time.Time
	var cursorID *string
	if nextToken != nil && *nextToken != "" {
		t, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
		}
		cursorTime = &t
		cursorID = &id
	}

	query := `
		SELECT ` + creditTransactionColumns + `
		FROM credit_transactions
		WHERE account_id = $1
		  AND ($2::timestamptz IS NULL OR (created_at, transaction_id) < ($2, $3))
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, cursorTime, cursorID, fetchLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger page for account %s: %w", accountID, err)
	}
	defer rows.Close()

	ms, err := collectCreditTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var outToken *string
	if len(ms) == fetchLimit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		outToken = &token
	}

	return mapping.ToDomainCreditTransactionSlice(ms), outToken, nil
}

func collectCreditTransactions(rows pgx.Rows) ([]models.CreditTransaction, error) {
	entries := []models.CreditTransaction{}
	for rows.Next() {
		m, err := scanCreditTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}
	return entries, nil
}
