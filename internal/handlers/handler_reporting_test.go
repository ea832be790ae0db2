package handlers

import (
	"context"
	"encoding/json"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) GetAccountSummary(ctx context.Context, accountID string, from, to time.Time) (*dto.AccountSummaryResponse, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountSummaryResponse), args.Error(1)
}

func (m *MockReportingService) GetMonthlyUsage(ctx context.Context, accountID string, months int) (*dto.MonthlyUsageResponse, error) {
	args := m.Called(ctx, accountID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlyUsageResponse), args.Error(1)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, actorUserID string) error {
	args := m.Called(ctx, accountID, actorUserID)
	return args.Error(0)
}

// --- Test Suite ---

// Routes are registered through registerAccountRoutes so the paths asserted
// here are the ones the server actually mounts.
type ReportingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockReporting *MockReportingService
	jwtSecret     string
	userID        string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockReporting = new(MockReportingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerAccountRoutes(v1, new(MockAccountService), new(MockCreditService), suite.mockReporting)
}

func (suite *ReportingHandlerTestSuite) doGet(path string) *httptest.ResponseRecorder {
	claims := jwt.RegisteredClaims{
		Issuer:    "askelio-test",
		Subject:   suite.userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyUsage() {
	accountID := uuid.NewString()

	suite.mockReporting.On("GetMonthlyUsage", mock.Anything, accountID, 6).
		Return(&dto.MonthlyUsageResponse{AccountID: accountID}, nil).Once()

	w := suite.doGet("/api/v1/accounts/" + accountID + "/usage/monthly")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlyUsageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyUsage_CustomMonths() {
	accountID := uuid.NewString()

	suite.mockReporting.On("GetMonthlyUsage", mock.Anything, accountID, 12).
		Return(&dto.MonthlyUsageResponse{AccountID: accountID}, nil).Once()

	w := suite.doGet("/api/v1/accounts/" + accountID + "/usage/monthly?months=12")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyUsage_AccountNotFound() {
	accountID := uuid.NewString()

	suite.mockReporting.On("GetMonthlyUsage", mock.Anything, accountID, 6).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doGet("/api/v1/accounts/" + accountID + "/usage/monthly")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetAccountSummary_ToBeforeFrom() {
	accountID := uuid.NewString()

	w := suite.doGet("/api/v1/accounts/" + accountID + "/summary?from=2026-02-01&to=2026-01-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "GetAccountSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
