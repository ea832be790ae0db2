package repositories

import (
	"context"

	"github.com/askelio/askelio-backend/internal/core/domain"
)

// PlanRepositoryFacade defines operations for pricing plan data.
type PlanRepositoryFacade interface {
	// SavePlan persists a new plan.
	SavePlan(ctx context.Context, plan domain.Plan) error

	// FindPlanByID retrieves a plan by its unique identifier.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListPlans retrieves all active plans.
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}
