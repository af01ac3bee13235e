package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/accounting"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod       = fmt.Errorf("reconciliation start date must not be after end date: %w", apperrors.ErrValidation)
	ErrItemNotFound        = fmt.Errorf("reconciliation item not found: %w", apperrors.ErrNotFound)
	ErrItemNotMatchable    = fmt.Errorf("only unmatched items can be matched: %w", apperrors.ErrConflict)
	ErrItemNotConfirmable  = fmt.Errorf("only matched items can be confirmed: %w", apperrors.ErrConflict)
	ErrRunAlreadyCompleted = fmt.Errorf("reconciliation run is already completed: %w", apperrors.ErrConflict)
)

// reconciliationService pairs bank statement lines against book transactions.
// Runs auto-match on creation; leftovers are paired manually and each matched
// item is individually confirmed under the banking period lock.
type reconciliationService struct {
	reconciliationRepo portsrepo.ReconciliationRepositoryFacade
	accountSvc         portssvc.AccountSvcFacade
	lockSvc            portssvc.LockSvcFacade
	matchWindowDays    int
	tolerance          decimal.Decimal
}

// NewReconciliationService creates a new ReconciliationSvcFacade.
// matchWindowDays widens the auto-match date window; 0 requires same-day.
func NewReconciliationService(reconciliationRepo portsrepo.ReconciliationRepositoryFacade, accountSvc portssvc.AccountSvcFacade, lockSvc portssvc.LockSvcFacade, matchWindowDays int, tolerance decimal.Decimal) portssvc.ReconciliationSvcFacade {
	if tolerance.IsZero() {
		tolerance = accounting.DefaultBalanceTolerance
	}
	return &reconciliationService{
		reconciliationRepo: reconciliationRepo,
		accountSvc:         accountSvc,
		lockSvc:            lockSvc,
		matchWindowDays:    matchWindowDays,
		tolerance:          tolerance,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) CreateReconciliation(ctx context.Context, organizationID string, req dto.CreateReconciliationRequest, creatorUserID string) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if dates.AfterDay(req.StartDate, req.EndDate) {
		return nil, ErrInvalidPeriod
	}
	if _, err := s.accountSvc.VerifyAccounts(ctx, organizationID, []string{req.AccountID}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reconciliationID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	books := make([]domain.BookTransaction, len(req.BookTransactions))
	for i, b := range req.BookTransactions {
		books[i] = domain.BookTransaction{
			TransactionID: b.TransactionID,
			Date:          b.Date,
			Amount:        b.Amount,
			Description:   b.Description,
			EntryID:       b.EntryID,
		}
	}

	consumed := make(map[int]bool, len(books))
	items := make([]domain.ReconciliationItem, len(req.BankLines))
	matched := 0
	for i, l := range req.BankLines {
		line := domain.BankStatementLine{
			LineID:      uuid.NewString(),
			Date:        l.Date,
			Amount:      l.Amount,
			Description: l.Description,
			Reference:   l.Reference,
		}

		item := domain.ReconciliationItem{
			ItemID:           uuid.NewString(),
			ReconciliationID: reconciliationID,
			BankLine:         line,
			Status:           domain.ItemUnmatched,
			AuditFields:      audit,
		}
		if idx, ok := s.findCandidate(line, books, consumed); ok {
			consumed[idx] = true
			book := books[idx]
			item.BookTransaction = &book
			item.Status = domain.ItemMatched
			matched++
		}
		item.Difference = domain.ItemDifference(line, item.BookTransaction)
		items[i] = item
	}

	rec := domain.BankReconciliation{
		ReconciliationID: reconciliationID,
		OrganizationID:   organizationID,
		AccountID:        req.AccountID,
		BankBalance:      req.BankBalance,
		BookBalance:      req.BookBalance,
		Difference:       domain.OutstandingDifference(items),
		Status:           domain.ReconciliationInProgress,
		StartDate:        dates.DayOf(req.StartDate),
		EndDate:          dates.DayOf(req.EndDate),
		Items:            items,
		AuditFields:      audit,
	}

	auditRec, err := NewAuditRecord(organizationID, creatorUserID, domain.ActionCreate, domain.EntityReconciliation, reconciliationID, nil, rec)
	if err != nil {
		return nil, err
	}

	if err := s.reconciliationRepo.SaveReconciliation(ctx, rec, auditRec); err != nil {
		logger.Error("Failed to save reconciliation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save reconciliation: %w", err)
	}

	logger.Info("Reconciliation created",
		slog.String("reconciliation_id", reconciliationID),
		slog.Int("items", len(items)),
		slog.Int("auto_matched", matched))
	return &rec, nil
}

// findCandidate returns the index of the single unconsumed book transaction
// whose amount equals the bank line's within tolerance and whose date falls
// inside the match window. Zero or multiple candidates mean no auto-match;
// an ambiguous line is left for manual pairing.
func (s *reconciliationService) findCandidate(line domain.BankStatementLine, books []domain.BookTransaction, consumed map[int]bool) (int, bool) {
	found := -1
	for i, b := range books {
		if consumed[i] {
			continue
		}
		if line.Amount.Sub(b.Amount).Abs().GreaterThanOrEqual(s.tolerance) {
			continue
		}
		if !dates.WithinDays(line.Date, b.Date, s.matchWindowDays) {
			continue
		}
		if found >= 0 {
			return -1, false
		}
		found = i
	}
	return found, found >= 0
}

func (s *reconciliationService) GetReconciliationByID(ctx context.Context, organizationID, reconciliationID string) (*domain.BankReconciliation, error) {
	rec, err := s.reconciliationRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reconciliation %s: %w", reconciliationID, err)
	}
	if rec.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return rec, nil
}

func (s *reconciliationService) MatchItem(ctx context.Context, organizationID, reconciliationID, itemID string, req dto.MatchItemRequest, userID string) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rec, err := s.GetReconciliationByID(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}
	if rec.Status == domain.ReconciliationCompleted {
		return nil, ErrRunAlreadyCompleted
	}

	item, err := findItem(rec, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemUnmatched {
		return nil, fmt.Errorf("%w: item is %s", ErrItemNotMatchable, item.Status)
	}

	before := *item
	now := time.Now().UTC()
	book := domain.BookTransaction{
		TransactionID: req.BookTransaction.TransactionID,
		Date:          req.BookTransaction.Date,
		Amount:        req.BookTransaction.Amount,
		Description:   req.BookTransaction.Description,
		EntryID:       req.BookTransaction.EntryID,
	}
	item.BookTransaction = &book
	item.Status = domain.ItemMatched
	item.Difference = domain.ItemDifference(item.BankLine, &book)
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID

	auditRec, err := NewAuditRecord(organizationID, userID, domain.ActionMatch, domain.EntityReconciliationItem, itemID, before, item)
	if err != nil {
		return nil, err
	}

	updated, err := s.reconciliationRepo.UpdateItem(ctx, reconciliationID, *item, s.parentStatus(rec, *item), auditRec)
	if err != nil {
		logger.Error("Failed to match reconciliation item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to match reconciliation item: %w", err)
	}

	logger.Info("Reconciliation item matched",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("item_id", itemID))
	return updated, nil
}

func (s *reconciliationService) ConfirmReconciled(ctx context.Context, organizationID, reconciliationID, itemID string, override bool, userID string) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rec, err := s.GetReconciliationByID(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}
	if rec.Status == domain.ReconciliationCompleted {
		return nil, ErrRunAlreadyCompleted
	}

	item, err := findItem(rec, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemMatched {
		return nil, fmt.Errorf("%w: item is %s", ErrItemNotConfirmable, item.Status)
	}

	if !item.Difference.IsZero() && !override {
		return nil, &apperrors.ReconciliationMismatchError{
			ItemID:     itemID,
			Difference: item.Difference.String(),
		}
	}

	if err := s.lockSvc.CheckDate(ctx, organizationID, domain.ModuleBanking, item.BankLine.Date); err != nil {
		return nil, err
	}

	before := *item
	now := time.Now().UTC()
	item.Status = domain.ItemReconciled
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID

	auditRec, err := NewAuditRecord(organizationID, userID, domain.ActionReconcile, domain.EntityReconciliationItem, itemID, before, item)
	if err != nil {
		return nil, err
	}

	updated, err := s.reconciliationRepo.UpdateItem(ctx, reconciliationID, *item, s.parentStatus(rec, *item), auditRec)
	if err != nil {
		logger.Error("Failed to confirm reconciliation item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to confirm reconciliation item: %w", err)
	}

	logger.Info("Reconciliation item confirmed",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("item_id", itemID),
		slog.Bool("override", override))
	return updated, nil
}

func findItem(rec *domain.BankReconciliation, itemID string) (*domain.ReconciliationItem, error) {
	for i := range rec.Items {
		if rec.Items[i].ItemID == itemID {
			return &rec.Items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// parentStatus derives the run status as if item replaced its current version.
func (s *reconciliationService) parentStatus(rec *domain.BankReconciliation, item domain.ReconciliationItem) domain.ReconciliationStatus {
	items := make([]domain.ReconciliationItem, len(rec.Items))
	copy(items, rec.Items)
	for i := range items {
		if items[i].ItemID == item.ItemID {
			items[i] = item
		}
	}
	if domain.CanComplete(items, s.tolerance) {
		return domain.ReconciliationCompleted
	}
	return domain.ReconciliationInProgress
}
