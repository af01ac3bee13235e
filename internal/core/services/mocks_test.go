package services_test

import (
	"context"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLineItemsByEntryID(ctx context.Context, entryID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem, audit domain.AuditRecord) error {
	args := m.Called(ctx, entry, lines, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkPosted(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	args := m.Called(ctx, entry, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.LineItem, originalEntryID string, audits []domain.AuditRecord) error {
	args := m.Called(ctx, reversing, lines, originalEntryID, audits)
	return args.Error(0)
}

// --- Mock AdjustmentRepository ---

type MockAdjustmentRepository struct {
	mock.Mock
}

var _ portsrepo.AdjustmentRepositoryFacade = (*MockAdjustmentRepository)(nil)

func (m *MockAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.CurrencyAdjustment, error) {
	args := m.Called(ctx, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustmentsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.CurrencyAdjustment, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) SaveAdjustment(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error {
	args := m.Called(ctx, adj, audit)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) UpdateAdjustmentStatus(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error {
	args := m.Called(ctx, adj, audit)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) ApproveWithEntry(ctx context.Context, adj domain.CurrencyAdjustment, entry *domain.JournalEntry, lines []domain.LineItem, audits []domain.AuditRecord) error {
	args := m.Called(ctx, adj, entry, lines, audits)
	return args.Error(0)
}

// --- Mock LockRepository ---

type MockLockRepository struct {
	mock.Mock
}

var _ portsrepo.LockRepositoryFacade = (*MockLockRepository)(nil)

func (m *MockLockRepository) FindActiveLock(ctx context.Context, organizationID string, module domain.LedgerModule) (*domain.TransactionLock, error) {
	args := m.Called(ctx, organizationID, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionLock), args.Error(1)
}

func (m *MockLockRepository) ListActiveLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLock), args.Error(1)
}

func (m *MockLockRepository) CreateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	args := m.Called(ctx, lock, audit)
	return args.Error(0)
}

func (m *MockLockRepository) UpdateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	args := m.Called(ctx, lock, audit)
	return args.Error(0)
}

func (m *MockLockRepository) DeactivateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	args := m.Called(ctx, lock, audit)
	return args.Error(0)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.BankReconciliation, audit domain.AuditRecord) error {
	args := m.Called(ctx, rec, audit)
	return args.Error(0)
}

func (m *MockReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) UpdateItem(ctx context.Context, reconciliationID string, item domain.ReconciliationItem, parentStatus domain.ReconciliationStatus, audit domain.AuditRecord) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, reconciliationID, item, parentStatus, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepositoryFacade = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextValue(ctx context.Context, organizationID string, kind domain.DocumentKind) (int64, error) {
	args := m.Called(ctx, organizationID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, organizationID, from, to, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) VerifyAccounts(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Mock SequenceService ---

type MockSequenceService struct {
	mock.Mock
}

var _ portssvc.SequenceSvcFacade = (*MockSequenceService)(nil)

func (m *MockSequenceService) NextNumber(ctx context.Context, organizationID string, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, organizationID, kind)
	return args.String(0), args.Error(1)
}

// --- Mock LockService ---

type MockLockService struct {
	mock.Mock
}

var _ portssvc.LockSvcFacade = (*MockLockService)(nil)

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

// --- Mock CurrencyService ---

type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) Convert(ctx context.Context, organizationID string, req dto.ConvertCurrencyRequest) (*dto.ConvertCurrencyResponse, error) {
	args := m.Called(ctx, organizationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertCurrencyResponse), args.Error(1)
}

func (m *MockCurrencyService) CreateExchangeRate(ctx context.Context, organizationID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockCurrencyService) GetRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, organizationID, from, to, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockCurrencyService) ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) PostEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, organizationID, entryID, reason, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// MockAuditRepository is a mock implementation of portsrepo.AuditRepositoryFacade.
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveRecord(ctx context.Context, record domain.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) ListRecords(ctx context.Context, organizationID string, filter portsrepo.AuditRecordFilter, limit, offset int) ([]domain.AuditRecord, error) {
	args := m.Called(ctx, organizationID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditRecord), args.Error(1)
}
