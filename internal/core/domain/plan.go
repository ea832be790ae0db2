package domain

import "github.com/shopspring/decimal"

// Plan is a pricing plan a company can subscribe to. MonthlyCredits is the
// credit allowance granted each billing cycle; PricePerPage is the credit cost
// of processing one document page on this plan.
type Plan struct {
	PlanID         string          `json:"planID"` // Primary key (UUID)
	Name           string          `json:"name"`
	MonthlyCredits decimal.Decimal `json:"monthlyCredits"`
	PricePerPage   decimal.Decimal `json:"pricePerPage"`
	PriceMonthly   decimal.Decimal `json:"priceMonthly"` // in billing currency
	IsActive       bool            `json:"isActive"`
	AuditFields
}
