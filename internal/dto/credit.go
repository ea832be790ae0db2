package dto

import (
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppendTransactionRequest is the service-level input for one ledger append.
// Amount is signed: negative for usage, positive for purchases and bonuses.
type AppendTransactionRequest struct {
	AccountID        string
	Amount           decimal.Decimal
	Kind             domain.TransactionKind
	Description      string
	Category         string
	DocumentID       *string
	SessionID        *string
	PaymentMethod    *string
	PaymentReference *string
	Provider         *string
	Model            *string
	PagesProcessed   *int
	TokensUsed       *int64
	CostUSD          *decimal.Decimal
}

// PurchaseCreditsRequest is posted by the payment webhook handler after a
// confirmed payment.
type PurchaseCreditsRequest struct {
	AccountID        string          `json:"accountID" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Description      string          `json:"description"`
	PaymentMethod    string          `json:"paymentMethod" binding:"required"`
	PaymentReference string          `json:"paymentReference" binding:"required"`
}

// RecordUsageRequest is posted by the document processing pipeline after a
// document is processed. Cost is the positive number of credits consumed; it
// is negated before hitting the ledger.
type RecordUsageRequest struct {
	AccountID      string           `json:"accountID" binding:"required"`
	Cost           decimal.Decimal  `json:"cost" binding:"required"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	DocumentID     *string          `json:"documentID"`
	SessionID      *string          `json:"sessionID"`
	Provider       *string          `json:"provider"`
	Model          *string          `json:"model"`
	PagesProcessed *int             `json:"pagesProcessed"`
	TokensUsed     *int64           `json:"tokensUsed"`
	CostUSD        *decimal.Decimal `json:"costUSD"`
}

// AdjustCreditsRequest covers refunds, bonuses and manual adjustments.
type AdjustCreditsRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=REFUND BONUS ADJUSTMENT"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Kind   *domain.TransactionKind `form:"kind" binding:"omitempty,oneof=PURCHASE USAGE REFUND BONUS ADJUSTMENT"`
	Limit  int                     `form:"limit,default=20"`
	Offset int                     `form:"offset,default=0"`
}

// StatementParams defines query parameters for the cursor-paginated statement.
type StatementParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse is the API shape of one ledger entry.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionID"`
	AccountID        string                 `json:"accountID"`
	Amount           decimal.Decimal        `json:"amount"`
	Kind             domain.TransactionKind `json:"kind"`
	Description      string                 `json:"description"`
	Category         string                 `json:"category,omitempty"`
	DocumentID       *string                `json:"documentID,omitempty"`
	SessionID        *string                `json:"sessionID,omitempty"`
	PaymentMethod    *string                `json:"paymentMethod,omitempty"`
	PaymentReference *string                `json:"paymentReference,omitempty"`
	Provider         *string                `json:"provider,omitempty"`
	Model            *string                `json:"model,omitempty"`
	PagesProcessed   *int                   `json:"pagesProcessed,omitempty"`
	TokensUsed       *int64                 `json:"tokensUsed,omitempty"`
	CostUSD          *decimal.Decimal       `json:"costUSD,omitempty"`
	BalanceBefore    decimal.Decimal        `json:"balanceBefore"`
	BalanceAfter     decimal.Decimal        `json:"balanceAfter"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
}

// ToTransactionResponse converts a domain.CreditTransaction to its API shape.
func ToTransactionResponse(t *domain.CreditTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		AccountID:        t.AccountID,
		Amount:           t.Amount,
		Kind:             t.Kind,
		Description:      t.Description,
		Category:         t.Category,
		DocumentID:       t.DocumentID,
		SessionID:        t.SessionID,
		PaymentMethod:    t.PaymentMethod,
		PaymentReference: t.PaymentReference,
		Provider:         t.Provider,
		Model:            t.Model,
		PagesProcessed:   t.PagesProcessed,
		TokensUsed:       t.TokensUsed,
		CostUSD:          t.CostUSD,
		BalanceBefore:    t.BalanceBefore,
		BalanceAfter:     t.BalanceAfter,
		CreatedAt:        t.CreatedAt,
		CreatedBy:        t.CreatedBy,
	}
}

// ToTransactionResponseList converts a slice of ledger entries.
func ToTransactionResponseList(ts []domain.CreditTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}

// ListTransactionsResponse wraps a limit/offset page of entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// StatementResponse wraps a cursor page of entries.
type StatementResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// BalanceResponse is the API shape of an account's balance state.
type BalanceResponse struct {
	AccountID         string          `json:"accountID"`
	Balance           decimal.Decimal `json:"balance"`
	LifetimePurchased decimal.Decimal `json:"lifetimePurchased"`
	LifetimeUsed      decimal.Decimal `json:"lifetimeUsed"`
}
