package domain

import "time"

// Company represents a tenant: an organization whose members share a credit
// account and a pricing plan.
type Company struct {
	CompanyID    string  `json:"companyID"` // Primary key (UUID)
	Name         string  `json:"name"`
	BillingEmail string  `json:"billingEmail"`
	PlanID       *string `json:"planID"` // Nullable FK -> plans.plan_id
	IsActive     bool    `json:"isActive"`
	AuditFields
}

// CompanyRole defines the possible roles a user can have within a company.
type CompanyRole string

const (
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY"
)

// CompanyMember represents the membership of a User in a Company.
type CompanyMember struct {
	UserID    string      `json:"userID"`    // FK -> users.user_id
	UserName  string      `json:"userName"`  // denormalized for listings
	CompanyID string      `json:"companyID"` // FK -> companies.company_id
	Role      CompanyRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
