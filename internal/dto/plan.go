package dto

import (
	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePlanRequest defines the data needed to create a pricing plan.
type CreatePlanRequest struct {
	Name           string          `json:"name" binding:"required"`
	MonthlyCredits decimal.Decimal `json:"monthlyCredits" binding:"required"`
	PricePerPage   decimal.Decimal `json:"pricePerPage" binding:"required"`
	PriceMonthly   decimal.Decimal `json:"priceMonthly" binding:"required"`
}

// PlanResponse defines the data returned for a plan.
type PlanResponse struct {
	PlanID         string          `json:"planID"`
	Name           string          `json:"name"`
	MonthlyCredits decimal.Decimal `json:"monthlyCredits"`
	PricePerPage   decimal.Decimal `json:"pricePerPage"`
	PriceMonthly   decimal.Decimal `json:"priceMonthly"`
	IsActive       bool            `json:"isActive"`
}

// ToPlanResponse converts a domain.Plan to PlanResponse.
func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		PlanID:         p.PlanID,
		Name:           p.Name,
		MonthlyCredits: p.MonthlyCredits,
		PricePerPage:   p.PricePerPage,
		PriceMonthly:   p.PriceMonthly,
		IsActive:       p.IsActive,
	}
}

// ToPlanResponseList converts a slice of domain.Plan.
func ToPlanResponseList(plans []domain.Plan) []PlanResponse {
	res := make([]PlanResponse, len(plans))
	for i := range plans {
		res[i] = ToPlanResponse(&plans[i])
	}
	return res
}
