package models

import "time"

// Company is the DB representation of a tenant.
type Company struct {
	CompanyID    string  `db:"company_id"`
	Name         string  `db:"name"`
	BillingEmail string  `db:"billing_email"`
	PlanID       *string `db:"plan_id"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}

// CompanyRole mirrors domain.CompanyRole at the storage layer.
type CompanyRole string

// CompanyMember is one row of the company membership join table.
type CompanyMember struct {
	UserID    string      `db:"user_id"`
	CompanyID string      `db:"company_id"`
	Role      CompanyRole `db:"role"`
	JoinedAt  time.Time   `db:"joined_at"`
}
