package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KindSummaryRow aggregates ledger entries of one kind for an account.
type KindSummaryRow struct {
	Kind        TransactionKind `json:"kind"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	EntryCount  int64           `json:"entryCount"`
}

// MonthlyUsageRow is one month of credit consumption for an account.
// TotalUsed is reported as a positive number of credits.
type MonthlyUsageRow struct {
	Month          time.Time       `json:"month"` // first day of the month, UTC
	TotalUsed      decimal.Decimal `json:"totalUsed"`
	DocumentsCount int64           `json:"documentsCount"`
}
