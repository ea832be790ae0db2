package dto

import (
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a company.
type CreateCompanyRequest struct {
	Name         string  `json:"name" binding:"required"`
	BillingEmail string  `json:"billingEmail" binding:"required,email"`
	PlanID       *string `json:"planID"`
}

// AddMemberRequest adds a user to a company.
type AddMemberRequest struct {
	UserID string             `json:"userID" binding:"required"`
	Role   domain.CompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID    string    `json:"companyID"`
	Name         string    `json:"name"`
	BillingEmail string    `json:"billingEmail"`
	PlanID       *string   `json:"planID,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		BillingEmail: c.BillingEmail,
		PlanID:       c.PlanID,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// MemberResponse defines the data returned for a company member.
type MemberResponse struct {
	UserID   string             `json:"userID"`
	UserName string             `json:"userName"`
	Role     domain.CompanyRole `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// ToMemberResponseList converts a slice of domain.CompanyMember.
func ToMemberResponseList(members []domain.CompanyMember) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = MemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}
	return res
}

// ListCompaniesParams defines query parameters for listing companies.
type ListCompaniesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
