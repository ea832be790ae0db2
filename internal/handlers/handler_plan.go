package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/askelio/askelio-backend/internal/apperrors"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planHandler handles HTTP requests related to pricing plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers routes related to plans.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	plans := rg.Group("/plans")
	{
		plans.POST("", h.createPlan)
		plans.GET("", h.listPlans)
		plans.GET("/:planID", h.getPlan)
	}
}

// createPlan godoc
// @Summary Create a pricing plan
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Plan details"
// @Success 201 {object} dto.PlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create plan"
// @Security BearerAuth
// @Router /plans [post]
func (h *planHandler) createPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan))
}

// listPlans godoc
// @Summary List active plans
// @Tags plans
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list plans"
// @Security BearerAuth
// @Router /plans [get]
func (h *planHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list plans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponseList(plans))
}

// getPlan godoc
// @Summary Get a plan
// @Tags plans
// @Produce json
// @Param planID path string true "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve plan"
// @Security BearerAuth
// @Router /plans/{planID} [get]
func (h *planHandler) getPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	planID := c.Param("planID")

	plan, err := h.planService.GetPlanByID(c.Request.Context(), planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		} else {
			logger.Error("Failed to get plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}
