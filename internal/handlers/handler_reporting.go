package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles aggregate reporting requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// getAccountSummary godoc
// @Summary Get a per-kind summary for an account
// @Description Aggregates ledger entries per kind over a period; defaults to the last 30 days
// @Tags reporting
// @Produce json
// @Param accountID path string true "Account ID"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /accounts/{accountID}/summary [get]
func (h *reportingHandler) getAccountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.AccountSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		// Include the whole end day.
		to = params.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period end precedes period start"})
		return
	}

	summary, err := h.reportingService.GetAccountSummary(c.Request.Context(), accountID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to build account summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getMonthlyUsage godoc
// @Summary Get month-bucketed usage
// @Description Returns usage totals per month, oldest first
// @Tags reporting
// @Produce json
// @Param accountID path string true "Account ID"
// @Param months query int false "Number of months" default(6)
// @Success 200 {object} dto.MonthlyUsageResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build usage report"
// @Security BearerAuth
// @Router /accounts/{accountID}/usage/monthly [get]
func (h *reportingHandler) getMonthlyUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.MonthlyUsageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	usage, err := h.reportingService.GetMonthlyUsage(c.Request.Context(), accountID, params.Months)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to build monthly usage", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build usage report"})
		}
		return
	}

	c.JSON(http.StatusOK, usage)
}
