package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portsrepo "github.com/askelio/askelio-backend/internal/core/ports/repositories"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/google/uuid"
)

type planService struct {
	BaseService
	planRepo portsrepo.PlanRepositoryFacade
}

// NewPlanService creates the pricing plan service.
func NewPlanService(planRepo portsrepo.PlanRepositoryFacade) portssvc.PlanSvcFacade {
	return &planService{planRepo: planRepo}
}

// CreatePlan persists a new plan.
func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest, creatorUserID string) (*domain.Plan, error) {
	if req.MonthlyCredits.IsNegative() || req.PricePerPage.IsNegative() || req.PriceMonthly.IsNegative() {
		return nil, fmt.Errorf("%w: plan amounts must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	plan := domain.Plan{
		PlanID:         uuid.NewString(),
		Name:           req.Name,
		MonthlyCredits: req.MonthlyCredits,
		PricePerPage:   req.PricePerPage,
		PriceMonthly:   req.PriceMonthly,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to create plan", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Plan created", slog.String("plan_id", plan.PlanID))
	return &plan, nil
}

// GetPlanByID retrieves a plan by its unique identifier.
func (s *planService) GetPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	return s.planRepo.FindPlanByID(ctx, planID)
}

// ListPlans retrieves all active plans.
func (s *planService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.ListPlans(ctx)
}
