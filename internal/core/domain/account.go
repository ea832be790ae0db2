package domain

import (
	"github.com/shopspring/decimal"
)

// OwnerType says whether a credit account belongs to an individual user or a company.
type OwnerType string

const (
	OwnerUser    OwnerType = "USER"
	OwnerCompany OwnerType = "COMPANY"
)

// Account represents a credit account within the core domain.
// Balance and the lifetime accumulators are maintained exclusively by the
// ledger append path; no other code writes them.
type Account struct {
	AccountID         string          `json:"accountID"` // Primary key (UUID)
	OwnerType         OwnerType       `json:"ownerType"`
	OwnerID           string          `json:"ownerID"` // FK -> users.user_id or companies.company_id
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	LifetimePurchased decimal.Decimal `json:"lifetimePurchased"`
	LifetimeUsed      decimal.Decimal `json:"lifetimeUsed"`
	IsActive          bool            `json:"isActive"`
	AuditFields
}
