package models

import (
	"github.com/shopspring/decimal"
)

// TransactionKind mirrors domain.TransactionKind at the storage layer.
type TransactionKind string

const (
	KindPurchase   TransactionKind = "PURCHASE"
	KindUsage      TransactionKind = "USAGE"
	KindRefund     TransactionKind = "REFUND"
	KindBonus      TransactionKind = "BONUS"
	KindAdjustment TransactionKind = "ADJUSTMENT"
)

// CreditTransaction is the DB representation of one ledger entry.
// Rows are insert-only; there is no update path.
type CreditTransaction struct {
	TransactionID    string           `db:"transaction_id"`
	AccountID        string           `db:"account_id"`
	Amount           decimal.Decimal  `db:"amount"`
	Kind             TransactionKind  `db:"kind"`
	Description      string           `db:"description"`
	Category         string           `db:"category"`
	DocumentID       *string          `db:"document_id"`
	SessionID        *string          `db:"session_id"`
	PaymentMethod    *string          `db:"payment_method"`
	PaymentReference *string          `db:"payment_reference"`
	Provider         *string          `db:"provider"`
	Model            *string          `db:"model"`
	PagesProcessed   *int             `db:"pages_processed"`
	TokensUsed       *int64           `db:"tokens_used"`
	CostUSD          *decimal.Decimal `db:"cost_usd"`
	BalanceBefore    decimal.Decimal  `db:"balance_before"`
	BalanceAfter     decimal.Decimal  `db:"balance_after"`
	AuditFields
}
