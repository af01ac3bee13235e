package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/handlers"
	"github.com/Triostacksoftware/robobooks-ledger/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LockService ---
type MockLockService struct {
	mock.Mock
}

func (m *MockLockService) LockModule(ctx context.Context, organizationID string, req dto.LockModuleRequest, userID string) (*domain.TransactionLock, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionLock), args.Error(1)
}

func (m *MockLockService) PartiallyUnlock(ctx context.Context, organizationID string, module domain.LedgerModule, req dto.PartialUnlockRequest, userID string) (*domain.TransactionLock, error) {
	args := m.Called(ctx, organizationID, module, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionLock), args.Error(1)
}

func (m *MockLockService) UnlockModule(ctx context.Context, organizationID string, module domain.LedgerModule, userID string) error {
	args := m.Called(ctx, organizationID, module, userID)
	return args.Error(0)
}

func (m *MockLockService) ListLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLock), args.Error(1)
}

func (m *MockLockService) IsDateLocked(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) (bool, error) {
	args := m.Called(ctx, organizationID, module, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockLockService) CheckDate(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) error {
	args := m.Called(ctx, organizationID, module, date)
	return args.Error(0)
}

var _ portssvc.LockSvcFacade = (*MockLockService)(nil)

// --- Test Suite ---
type LockHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLockService *MockLockService
	jwtSecret       string
	organizationID  string
	userID          string
}

func (suite *LockHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockLockService = new(MockLockService)
	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Lock: suite.mockLockService})
}

func (suite *LockHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LockHandlerTestSuite) TestLockModule_Success() {
	lockDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	lock := &domain.TransactionLock{
		LockID:         uuid.NewString(),
		OrganizationID: suite.organizationID,
		Module:         domain.ModuleSales,
		Status:         domain.LockLocked,
		LockDate:       lockDate,
		Reason:         "month-end close",
	}

	suite.mockLockService.On("LockModule",
		mock.Anything,
		suite.organizationID,
		mock.MatchedBy(func(req dto.LockModuleRequest) bool {
			return req.Module == "sales" && req.Reason == "month-end close"
		}),
		suite.userID,
	).Return(lock, nil).Once()

	body := dto.LockModuleRequest{Module: "sales", LockDate: lockDate, Reason: "month-end close"}
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks", suite.organizationID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionLockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(lock.LockID, resp.LockID)
	suite.Equal("sales", resp.Module)
	suite.Equal("locked", resp.Status)
	suite.mockLockService.AssertExpectations(suite.T())
}

func (suite *LockHandlerTestSuite) TestLockModule_AlreadyLockedConflict() {
	suite.mockLockService.On("LockModule", mock.Anything, suite.organizationID, mock.Anything, suite.userID).
		Return(nil, &apperrors.DuplicateLockError{Module: "sales"}).Once()

	body := dto.LockModuleRequest{Module: "sales", LockDate: time.Now(), Reason: "close"}
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks", suite.organizationID), body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LockHandlerTestSuite) TestLockModule_MissingFields() {
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks", suite.organizationID), map[string]string{"module": "sales"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLockService.AssertNotCalled(suite.T(), "LockModule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LockHandlerTestSuite) TestLockModule_Unauthorized() {
	body := dto.LockModuleRequest{Module: "sales", LockDate: time.Now(), Reason: "close"}
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks", suite.organizationID), &buf)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LockHandlerTestSuite) TestPartiallyUnlock_Success() {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	lock := &domain.TransactionLock{
		LockID:            uuid.NewString(),
		Module:            domain.ModuleSales,
		Status:            domain.LockPartiallyUnlocked,
		LockDate:          time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		PartialUnlockFrom: &from,
		PartialUnlockTo:   &to,
	}

	suite.mockLockService.On("PartiallyUnlock", mock.Anything, suite.organizationID, domain.ModuleSales, mock.Anything, suite.userID).
		Return(lock, nil).Once()

	body := dto.PartialUnlockRequest{From: from, To: to, Reason: "invoice corrections"}
	w := suite.doRequest(http.MethodPut, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks/sales/partial-unlock", suite.organizationID), body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionLockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("partially_unlocked", resp.Status)
}

func (suite *LockHandlerTestSuite) TestPartiallyUnlock_UnknownModule() {
	body := dto.PartialUnlockRequest{From: time.Now(), To: time.Now(), Reason: "fix"}
	w := suite.doRequest(http.MethodPut, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks/payroll/partial-unlock", suite.organizationID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLockService.AssertNotCalled(suite.T(), "PartiallyUnlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LockHandlerTestSuite) TestUnlockModule_Success() {
	suite.mockLockService.On("UnlockModule", mock.Anything, suite.organizationID, domain.ModuleBanking, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks/banking", suite.organizationID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLockService.AssertExpectations(suite.T())
}

func (suite *LockHandlerTestSuite) TestLockStatus_Success() {
	suite.mockLockService.On("IsDateLocked", mock.Anything, suite.organizationID, domain.ModuleSales, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks/sales/status?date=2025-06-15", suite.organizationID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LockStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Locked)
	suite.Equal("sales", resp.Module)
}

func (suite *LockHandlerTestSuite) TestLockStatus_BadDate() {
	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/transaction-locks/sales/status?date=June", suite.organizationID), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLockService.AssertNotCalled(suite.T(), "IsDateLocked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLockHandler(t *testing.T) {
	suite.Run(t, new(LockHandlerTestSuite))
}
