package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconciliationRepo *MockReconciliationRepository
	mockAccountSvc         *MockAccountService
	mockLockSvc            *MockLockService
	service                portssvc.ReconciliationSvcFacade
	organizationID         string
	userID                 string
	bankAccount            domain.Account
	periodStart            time.Time
	periodEnd              time.Time
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReconciliationRepo = new(MockReconciliationRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockLockSvc = new(MockLockService)
	suite.service = services.NewReconciliationService(suite.mockReconciliationRepo, suite.mockAccountSvc, suite.mockLockSvc, 3, decimal.New(1, -2))

	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.bankAccount = domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: suite.organizationID,
		Name:           "Operating Account",
		CurrencyCode:   "USD",
		IsActive:       true,
	}
	suite.periodStart = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.periodEnd = time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReconciliationServiceTestSuite) expectAccountOK(ctx context.Context) {
	suite.mockAccountSvc.On("VerifyAccounts", ctx, suite.organizationID, []string{suite.bankAccount.AccountID}).
		Return(map[string]domain.Account{suite.bankAccount.AccountID: suite.bankAccount}, nil).Once()
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_AutoMatch() {
	ctx := context.Background()
	suite.expectAccountOK(ctx)

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateReconciliationRequest{
		AccountID:   suite.bankAccount.AccountID,
		BankBalance: decimal.NewFromInt(5000),
		BookBalance: decimal.NewFromInt(5000),
		StartDate:   suite.periodStart,
		EndDate:     suite.periodEnd,
		BankLines: []dto.BankStatementLineRequest{
			{Date: day, Amount: decimal.NewFromInt(250), Description: "ACH payment"},
			{Date: day.AddDate(0, 0, 5), Amount: decimal.NewFromInt(99), Description: "Card fee"},
		},
		BookTransactions: []dto.BookTransactionRequest{
			{TransactionID: uuid.NewString(), Date: day.AddDate(0, 0, 1), Amount: decimal.NewFromInt(250), Description: "Customer payment"},
		},
	}

	suite.mockReconciliationRepo.On("SaveReconciliation", ctx, mock.AnythingOfType("domain.BankReconciliation"), mock.AnythingOfType("domain.AuditRecord")).Return(nil).Once()

	rec, err := suite.service.CreateReconciliation(ctx, suite.organizationID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconciliationInProgress, rec.Status)
	suite.Require().Len(rec.Items, 2)

	// The 250 line pairs with the single candidate one day away.
	suite.Equal(domain.ItemMatched, rec.Items[0].Status)
	suite.Require().NotNil(rec.Items[0].BookTransaction)
	suite.True(rec.Items[0].Difference.IsZero())

	// The 99 fee has no book side and stays unmatched with its full amount open.
	suite.Equal(domain.ItemUnmatched, rec.Items[1].Status)
	suite.Nil(rec.Items[1].BookTransaction)
	suite.True(rec.Items[1].Difference.Equal(decimal.NewFromInt(99)))

	suite.True(rec.Difference.Equal(decimal.NewFromInt(99)))
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_AmbiguousCandidatesLeftUnmatched() {
	ctx := context.Background()
	suite.expectAccountOK(ctx)

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateReconciliationRequest{
		AccountID:   suite.bankAccount.AccountID,
		BankBalance: decimal.NewFromInt(100),
		BookBalance: decimal.NewFromInt(100),
		StartDate:   suite.periodStart,
		EndDate:     suite.periodEnd,
		BankLines: []dto.BankStatementLineRequest{
			{Date: day, Amount: decimal.NewFromInt(100), Description: "Transfer"},
		},
		BookTransactions: []dto.BookTransactionRequest{
			{TransactionID: uuid.NewString(), Date: day, Amount: decimal.NewFromInt(100)},
			{TransactionID: uuid.NewString(), Date: day.AddDate(0, 0, 1), Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockReconciliationRepo.On("SaveReconciliation", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	rec, err := suite.service.CreateReconciliation(ctx, suite.organizationID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ItemUnmatched, rec.Items[0].Status)
	suite.Nil(rec.Items[0].BookTransaction)
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_OutsideMatchWindow() {
	ctx := context.Background()
	suite.expectAccountOK(ctx)

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateReconciliationRequest{
		AccountID: suite.bankAccount.AccountID,
		StartDate: suite.periodStart,
		EndDate:   suite.periodEnd,
		BankLines: []dto.BankStatementLineRequest{
			{Date: day, Amount: decimal.NewFromInt(100)},
		},
		BookTransactions: []dto.BookTransactionRequest{
			{TransactionID: uuid.NewString(), Date: day.AddDate(0, 0, 4), Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockReconciliationRepo.On("SaveReconciliation", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	rec, err := suite.service.CreateReconciliation(ctx, suite.organizationID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ItemUnmatched, rec.Items[0].Status)
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_InvalidPeriod() {
	ctx := context.Background()
	req := dto.CreateReconciliationRequest{
		AccountID: suite.bankAccount.AccountID,
		StartDate: suite.periodEnd,
		EndDate:   suite.periodStart,
	}

	_, err := suite.service.CreateReconciliation(ctx, suite.organizationID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidPeriod)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "VerifyAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) reconciliationWithItem(status domain.ReconciliationItemStatus, difference decimal.Decimal) *domain.BankReconciliation {
	reconciliationID := uuid.NewString()
	item := domain.ReconciliationItem{
		ItemID:           uuid.NewString(),
		ReconciliationID: reconciliationID,
		BankLine: domain.BankStatementLine{
			LineID: uuid.NewString(),
			Date:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(250),
		},
		Status:     status,
		Difference: difference,
	}
	if status != domain.ItemUnmatched {
		item.BookTransaction = &domain.BookTransaction{
			TransactionID: uuid.NewString(),
			Date:          item.BankLine.Date,
			Amount:        item.BankLine.Amount.Sub(difference),
		}
	}
	return &domain.BankReconciliation{
		ReconciliationID: reconciliationID,
		OrganizationID:   suite.organizationID,
		AccountID:        suite.bankAccount.AccountID,
		Status:           domain.ReconciliationInProgress,
		StartDate:        suite.periodStart,
		EndDate:          suite.periodEnd,
		Items:            []domain.ReconciliationItem{item},
	}
}

func (suite *ReconciliationServiceTestSuite) TestMatchItem_Success() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemUnmatched, decimal.NewFromInt(250))
	itemID := rec.Items[0].ItemID
	req := dto.MatchItemRequest{
		BookTransaction: dto.BookTransactionRequest{
			TransactionID: uuid.NewString(),
			Date:          rec.Items[0].BankLine.Date,
			Amount:        decimal.NewFromInt(250),
		},
	}

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()
	suite.mockReconciliationRepo.On("UpdateItem", ctx, rec.ReconciliationID, mock.MatchedBy(func(item domain.ReconciliationItem) bool {
		return item.ItemID == itemID && item.Status == domain.ItemMatched && item.Difference.IsZero()
	}), domain.ReconciliationInProgress, mock.AnythingOfType("domain.AuditRecord")).Return(rec, nil).Once()

	_, err := suite.service.MatchItem(ctx, suite.organizationID, rec.ReconciliationID, itemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestMatchItem_AlreadyMatched() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemMatched, decimal.Zero)

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.MatchItem(ctx, suite.organizationID, rec.ReconciliationID, rec.Items[0].ItemID, dto.MatchItemRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrItemNotMatchable)
	suite.mockReconciliationRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestMatchItem_CompletedRun() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemUnmatched, decimal.NewFromInt(250))
	rec.Status = domain.ReconciliationCompleted

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.MatchItem(ctx, suite.organizationID, rec.ReconciliationID, rec.Items[0].ItemID, dto.MatchItemRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRunAlreadyCompleted)
}

func (suite *ReconciliationServiceTestSuite) TestMatchItem_UnknownItem() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemUnmatched, decimal.NewFromInt(250))

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.MatchItem(ctx, suite.organizationID, rec.ReconciliationID, uuid.NewString(), dto.MatchItemRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrItemNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestConfirmReconciled_CompletesRun() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemMatched, decimal.Zero)
	itemID := rec.Items[0].ItemID
	completed := &domain.BankReconciliation{
		ReconciliationID: rec.ReconciliationID,
		OrganizationID:   suite.organizationID,
		Status:           domain.ReconciliationCompleted,
	}

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()
	suite.mockLockSvc.On("CheckDate", ctx, suite.organizationID, domain.ModuleBanking, rec.Items[0].BankLine.Date).Return(nil).Once()
	// The last open item reconciling flips the run to completed.
	suite.mockReconciliationRepo.On("UpdateItem", ctx, rec.ReconciliationID, mock.MatchedBy(func(item domain.ReconciliationItem) bool {
		return item.ItemID == itemID && item.Status == domain.ItemReconciled
	}), domain.ReconciliationCompleted, mock.AnythingOfType("domain.AuditRecord")).Return(completed, nil).Once()

	updated, err := suite.service.ConfirmReconciled(ctx, suite.organizationID, rec.ReconciliationID, itemID, false, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconciliationCompleted, updated.Status)
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
	suite.mockLockSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestConfirmReconciled_MismatchWithoutOverride() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemMatched, decimal.RequireFromString("12.50"))
	itemID := rec.Items[0].ItemID

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.ConfirmReconciled(ctx, suite.organizationID, rec.ReconciliationID, itemID, false, suite.userID)

	suite.Require().Error(err)
	var target *apperrors.ReconciliationMismatchError
	suite.Require().ErrorAs(err, &target)
	suite.Equal(itemID, target.ItemID)
	suite.Equal("12.5", target.Difference)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockReconciliationRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestConfirmReconciled_MismatchWithOverride() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemMatched, decimal.RequireFromString("12.50"))
	itemID := rec.Items[0].ItemID

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()
	suite.mockLockSvc.On("CheckDate", ctx, suite.organizationID, domain.ModuleBanking, rec.Items[0].BankLine.Date).Return(nil).Once()
	// A 12.50 residual exceeds tolerance, so the run stays open.
	suite.mockReconciliationRepo.On("UpdateItem", ctx, rec.ReconciliationID, mock.Anything, domain.ReconciliationInProgress, mock.Anything).Return(rec, nil).Once()

	_, err := suite.service.ConfirmReconciled(ctx, suite.organizationID, rec.ReconciliationID, itemID, true, suite.userID)

	suite.Require().NoError(err)
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestConfirmReconciled_UnmatchedItem() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemUnmatched, decimal.NewFromInt(250))

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.ConfirmReconciled(ctx, suite.organizationID, rec.ReconciliationID, rec.Items[0].ItemID, false, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrItemNotConfirmable)
}

func (suite *ReconciliationServiceTestSuite) TestConfirmReconciled_BankingPeriodLocked() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemMatched, decimal.Zero)
	lockErr := &apperrors.LockViolationError{Module: "banking", LockDate: time.Now(), Date: rec.Items[0].BankLine.Date}

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()
	suite.mockLockSvc.On("CheckDate", ctx, suite.organizationID, domain.ModuleBanking, rec.Items[0].BankLine.Date).Return(lockErr).Once()

	_, err := suite.service.ConfirmReconciled(ctx, suite.organizationID, rec.ReconciliationID, rec.Items[0].ItemID, false, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockReconciliationRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestGetReconciliationByID_WrongOrganization() {
	ctx := context.Background()
	rec := suite.reconciliationWithItem(domain.ItemUnmatched, decimal.NewFromInt(250))
	rec.OrganizationID = uuid.NewString()

	suite.mockReconciliationRepo.On("FindReconciliationByID", ctx, rec.ReconciliationID).Return(rec, nil).Once()

	_, err := suite.service.GetReconciliationByID(ctx, suite.organizationID, rec.ReconciliationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
