package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditHandler handles HTTP requests against the credit ledger.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
}

func newCreditHandler(cs portssvc.CreditSvcFacade) *creditHandler {
	return &creditHandler{creditService: cs}
}

// registerCreditRoutes registers the ledger write routes.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade) {
	h := newCreditHandler(creditService)

	credits := rg.Group("/credits")
	{
		credits.POST("/purchase", h.purchaseCredits)
		credits.POST("/usage", h.recordUsage)
		credits.POST("/adjust", h.adjustCredits)
	}
}

// appendEntry runs the ledger append and writes the HTTP response, mapping
// the ledger error taxonomy onto status codes. Insufficient credits maps to
// 402 so clients can distinguish it from plain validation failures.
func (h *creditHandler) appendEntry(c *gin.Context, req dto.AppendTransactionRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.creditService.AppendTransaction(c.Request.Context(), req, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to append ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(entry))
}

// purchaseCredits godoc
// @Summary Record a credit purchase
// @Description Appends a PURCHASE entry after a confirmed payment
// @Tags credits
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseCreditsRequest true "Purchase details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /credits/purchase [post]
func (h *creditHandler) purchaseCredits(c *gin.Context) {
	var req dto.PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.appendEntry(c, dto.AppendTransactionRequest{
		AccountID:        req.AccountID,
		Amount:           req.Amount,
		Kind:             domain.KindPurchase,
		Description:      req.Description,
		Category:         "purchase",
		PaymentMethod:    &req.PaymentMethod,
		PaymentReference: &req.PaymentReference,
	})
}

// recordUsage godoc
// @Summary Record credit usage
// @Description Appends a USAGE entry for a processed document; cost is given as a positive number
// @Tags credits
// @Accept json
// @Produce json
// @Param usage body dto.RecordUsageRequest true "Usage details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} map[string]string "Insufficient credits"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /credits/usage [post]
func (h *creditHandler) recordUsage(c *gin.Context) {
	var req dto.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.appendEntry(c, dto.AppendTransactionRequest{
		AccountID:      req.AccountID,
		Amount:         req.Cost.Neg(),
		Kind:           domain.KindUsage,
		Description:    req.Description,
		Category:       req.Category,
		DocumentID:     req.DocumentID,
		SessionID:      req.SessionID,
		Provider:       req.Provider,
		Model:          req.Model,
		PagesProcessed: req.PagesProcessed,
		TokensUsed:     req.TokensUsed,
		CostUSD:        req.CostUSD,
	})
}

// adjustCredits godoc
// @Summary Record a refund, bonus or manual adjustment
// @Description Appends a REFUND, BONUS or ADJUSTMENT entry
// @Tags credits
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustCreditsRequest true "Adjustment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /credits/adjust [post]
func (h *creditHandler) adjustCredits(c *gin.Context) {
	var req dto.AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.appendEntry(c, dto.AppendTransactionRequest{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Description: req.Description,
		Category:    req.Category,
	})
}

// getBalance godoc
// @Summary Get account balance
// @Description Returns the current balance and lifetime purchased/used totals
// @Tags credits
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *creditHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balance, err := h.creditService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, balance)
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Returns ledger entries newest first, optionally filtered by kind
// @Tags credits
// @Produce json
// @Param accountID path string true "Account ID"
// @Param kind query string false "Transaction kind filter" Enums(PURCHASE, USAGE, REFUND, BONUS, ADJUSTMENT)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /accounts/{accountID}/transactions [get]
func (h *creditHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.creditService.ListTransactions(c.Request.Context(), accountID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponseList(entries),
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
}

// getStatement godoc
// @Summary Get a cursor-paginated statement
// @Description Returns a page of ledger entries and a token for the next page
// @Tags credits
// @Produce json
// @Param accountID path string true "Account ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid page token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /accounts/{accountID}/statement [get]
func (h *creditHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.creditService.GetStatement(c.Request.Context(), accountID, params.Limit, params.NextToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatementResponse{
		Transactions: dto.ToTransactionResponseList(entries),
		NextToken:    nextToken,
	})
}
