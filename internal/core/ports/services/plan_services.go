package services

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/dto"
)

// PlanSvcFacade defines operations for pricing plans.
type PlanSvcFacade interface {
	// CreatePlan persists a new plan.
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest, creatorUserID string) (*domain.Plan, error)

	// GetPlanByID retrieves a plan by its unique identifier.
	GetPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListPlans retrieves all active plans.
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}
