package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/askelio/askelio-backend/internal/apperrors"
	"github.com/askelio/askelio-backend/internal/core/domain"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CreditService ---

type MockCreditService struct {
	mock.Mock
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

func (m *MockCreditService) AppendTransaction(ctx context.Context, req dto.AppendTransactionRequest, actorUserID string) (*domain.CreditTransaction, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditService) GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

func (m *MockCreditService) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) ([]domain.CreditTransaction, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditService) GetStatement(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		val := args.Get(1).(string)
		token = &val
	}
	return args.Get(0).([]domain.CreditTransaction), token, args.Error(2)
}

// --- Test Suite ---

type CreditHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockCreditService
	jwtSecret string
	userID    string
}

func (suite *CreditHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "askelio-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CreditHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockSvc = new(MockCreditService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerCreditRoutes(v1, suite.mockSvc)

	h := newCreditHandler(suite.mockSvc)
	v1.GET("/accounts/:accountID/balance", h.getBalance)
	v1.GET("/accounts/:accountID/statement", h.getStatement)
}

func (suite *CreditHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CreditHandlerTestSuite) TestPurchaseCredits() {
	accountID := uuid.NewString()
	amount := decimal.RequireFromString("500.00")

	suite.mockSvc.On("AppendTransaction", mock.Anything, mock.MatchedBy(func(req dto.AppendTransactionRequest) bool {
		return req.AccountID == accountID &&
			req.Kind == domain.KindPurchase &&
			req.Amount.Equal(amount)
	}), suite.userID).Return(&domain.CreditTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Amount:        amount,
		Kind:          domain.KindPurchase,
		BalanceAfter:  amount,
	}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/credits/purchase", dto.PurchaseCreditsRequest{
		AccountID:        accountID,
		Amount:           amount,
		PaymentMethod:    "stripe",
		PaymentReference: "pi_123",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.BalanceAfter.Equal(amount))
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *CreditHandlerTestSuite) TestRecordUsage_NegatesCost() {
	accountID := uuid.NewString()

	suite.mockSvc.On("AppendTransaction", mock.Anything, mock.MatchedBy(func(req dto.AppendTransactionRequest) bool {
		return req.Kind == domain.KindUsage && req.Amount.Equal(decimal.RequireFromString("-0.25"))
	}), suite.userID).Return(&domain.CreditTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Amount:        decimal.RequireFromString("-0.25"),
		Kind:          domain.KindUsage,
	}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/credits/usage", dto.RecordUsageRequest{
		AccountID: accountID,
		Cost:      decimal.RequireFromString("0.25"),
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *CreditHandlerTestSuite) TestRecordUsage_InsufficientCredits() {
	accountID := uuid.NewString()

	suite.mockSvc.On("AppendTransaction", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: balance 0.10, requested 0.25", apperrors.ErrInsufficientCredits)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/credits/usage", dto.RecordUsageRequest{
		AccountID: accountID,
		Cost:      decimal.RequireFromString("0.25"),
	})

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *CreditHandlerTestSuite) TestAdjustCredits_InvalidAmount() {
	accountID := uuid.NewString()

	suite.mockSvc.On("AppendTransaction", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: amount must be non-zero", apperrors.ErrInvalidAmount)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/credits/adjust", map[string]any{
		"accountID": accountID,
		"amount":    "1",
		"kind":      "ADJUSTMENT",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CreditHandlerTestSuite) TestPurchaseCredits_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/credits/purchase", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditHandlerTestSuite) TestGetBalance() {
	accountID := uuid.NewString()

	suite.mockSvc.On("GetBalance", mock.Anything, accountID).Return(&dto.BalanceResponse{
		AccountID:         accountID,
		Balance:           decimal.RequireFromString("12.75"),
		LifetimePurchased: decimal.RequireFromString("20"),
		LifetimeUsed:      decimal.RequireFromString("7.25"),
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("12.75")))
}

func (suite *CreditHandlerTestSuite) TestGetBalance_NotFound() {
	accountID := uuid.NewString()

	suite.mockSvc.On("GetBalance", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CreditHandlerTestSuite) TestGetStatement_InvalidToken() {
	accountID := uuid.NewString()

	suite.mockSvc.On("GetStatement", mock.Anything, accountID, 20, mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/statement?nextToken=garbage", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestCreditHandler(t *testing.T) {
	suite.Run(t, new(CreditHandlerTestSuite))
}
