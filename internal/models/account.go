package models

import (
	"github.com/shopspring/decimal"
)

// OwnerType mirrors domain.OwnerType at the storage layer.
type OwnerType string

const (
	OwnerUser    OwnerType = "USER"
	OwnerCompany OwnerType = "COMPANY"
)

// Account is the DB representation of a credit account.
type Account struct {
	AccountID         string          `db:"account_id"`
	OwnerType         OwnerType       `db:"owner_type"`
	OwnerID           string          `db:"owner_id"`
	Name              string          `db:"name"`
	Balance           decimal.Decimal `db:"balance"`
	LifetimePurchased decimal.Decimal `db:"lifetime_purchased"`
	LifetimeUsed      decimal.Decimal `db:"lifetime_used"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
