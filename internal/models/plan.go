package models

import "github.com/shopspring/decimal"

// Plan is the DB representation of a pricing plan.
type Plan struct {
	PlanID         string          `db:"plan_id"`
	Name           string          `db:"name"`
	MonthlyCredits decimal.Decimal `db:"monthly_credits"`
	PricePerPage   decimal.Decimal `db:"price_per_page"`
	PriceMonthly   decimal.Decimal `db:"price_monthly"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
