// Package events defines the integration events emitted by the backend.
package events

import (
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditTransactionRecorded is emitted after a ledger entry has committed.
// Consumers (billing exports, alerting) read it from the ledger events topic.
type CreditTransactionRecorded struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	BalanceAfter  decimal.Decimal        `json:"balanceAfter"`
	OccurredAt    time.Time              `json:"occurredAt"`
}

// NewCreditTransactionRecorded builds the event from a persisted ledger entry.
func NewCreditTransactionRecorded(t *domain.CreditTransaction) CreditTransactionRecorded {
	return CreditTransactionRecorded{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Kind:          t.Kind,
		BalanceAfter:  t.BalanceAfter,
		OccurredAt:    t.CreatedAt,
	}
}
