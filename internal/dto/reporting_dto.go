package dto

import (
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// AccountSummaryParams defines query parameters for the account summary.
type AccountSummaryParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// AccountSummaryResponse aggregates ledger activity per kind over a period.
type AccountSummaryResponse struct {
	AccountID string                  `json:"accountID"`
	From      time.Time               `json:"from"`
	To        time.Time               `json:"to"`
	Rows      []domain.KindSummaryRow `json:"rows"`
}

// MonthlyUsageParams defines query parameters for monthly usage.
type MonthlyUsageParams struct {
	Months int `form:"months,default=6"`
}

// MonthlyUsageResponse is the month-bucketed usage series for an account.
type MonthlyUsageResponse struct {
	AccountID string                   `json:"accountID"`
	Months    []domain.MonthlyUsageRow `json:"months"`
}
