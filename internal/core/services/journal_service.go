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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDescriptionMissing = fmt.Errorf("journal entry description is required: %w", apperrors.ErrValidation)
	ErrNotDraft           = fmt.Errorf("journal entry must be a draft to be posted: %w", apperrors.ErrConflict)
	ErrNotPosted          = fmt.Errorf("journal entry must be posted to be reversed: %w", apperrors.ErrConflict)
	ErrAlreadyReversal    = fmt.Errorf("cannot reverse a journal entry that is itself a reversal: %w", apperrors.ErrConflict)
	ErrAlreadyReversed    = fmt.Errorf("journal entry has already been reversed: %w", apperrors.ErrConflict)
)

// journalService provides journal entry operations: draft creation, posting
// guarded by double-entry validation and period locks, and reversal via
// mirrored compensating entries.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	sequenceSvc portssvc.SequenceSvcFacade
	lockSvc     portssvc.LockSvcFacade
	tolerance   decimal.Decimal
}

// NewJournalService creates a new JournalSvcFacade.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, sequenceSvc portssvc.SequenceSvcFacade, lockSvc portssvc.LockSvcFacade, tolerance decimal.Decimal) portssvc.JournalSvcFacade {
	if tolerance.IsZero() {
		tolerance = accounting.DefaultBalanceTolerance
	}
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		sequenceSvc: sequenceSvc,
		lockSvc:     lockSvc,
		tolerance:   tolerance,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}
	currency, err := domain.ParseCurrency(req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	sourceKind := domain.SourceManual
	if req.SourceKind != "" {
		switch k := domain.SourceKind(req.SourceKind); k {
		case domain.SourceManual, domain.SourceInvoice, domain.SourceBill, domain.SourceBankTransaction, domain.SourceCurrencyAdjustment:
			sourceKind = k
		default:
			return nil, fmt.Errorf("%w: unknown source kind %q", apperrors.ErrValidation, req.SourceKind)
		}
	}

	// Per-line sanity at creation: non-negative single-sided amounts against
	// existing, active accounts. The full double-entry check runs at posting
	// so an unbalanced draft can still be saved and fixed later.
	accountIDs := make([]string, 0, len(req.LineItems))
	for i, l := range req.LineItems {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: amounts must not be negative", apperrors.ErrValidation, i+1)
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return nil, fmt.Errorf("%w: line %d: a line item cannot carry both a debit and a credit", apperrors.ErrValidation, i+1)
		}
		accountIDs = append(accountIDs, l.AccountID)
	}

	if _, err := s.accountSvc.VerifyAccounts(ctx, organizationID, accountIDs); err != nil {
		return nil, err
	}

	entryNumber, err := s.sequenceSvc.NextNumber(ctx, organizationID, domain.KindJournal)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	lines := make([]domain.LineItem, len(req.LineItems))
	for i, l := range req.LineItems {
		rate := l.ExchangeRate
		if rate.IsZero() {
			rate = decimal.NewFromInt(1)
		}
		amount := l.Debit
		if l.Credit.IsPositive() {
			amount = l.Credit
		}
		lines[i] = domain.LineItem{
			LineItemID:   uuid.NewString(),
			EntryID:      entryID,
			AccountID:    l.AccountID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			CurrencyCode: currency,
			ExchangeRate: rate,
			BaseAmount:   amount.Mul(rate),
			Notes:        l.Notes,
			AuditFields:  audit,
		}
	}

	totals := accounting.ComputeTotals(lines)
	entry := domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: organizationID,
		EntryNumber:    entryNumber,
		EntryDate:      req.EntryDate,
		Description:    req.Description,
		SourceKind:     sourceKind,
		SourceRef:      req.SourceRef,
		Status:         domain.EntryDraft,
		CurrencyCode:   currency,
		TotalDebit:     totals.TotalDebit,
		TotalCredit:    totals.TotalCredit,
		AuditFields:    audit,
	}

	auditRec, err := NewAuditRecord(organizationID, creatorUserID, domain.ActionCreate, domain.EntityJournalEntry, entryID, nil, entry)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines, auditRec); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entryID),
		slog.String("entry_number", entryNumber))
	entry.LineItems = lines
	return &entry, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.OrganizationID != organizationID {
		// Obscure existence across tenants.
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.journalRepo.FindLineItemsByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve line items for entry %s: %w", entryID, err)
	}
	entry.LineItems = lines
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	entries, err := s.journalRepo.ListEntriesByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) PostEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.GetEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrNotDraft, entry.Status)
	}

	// Period-lock guard on the entry's effective date.
	if err := s.lockSvc.CheckDate(ctx, organizationID, entry.SourceKind.Module(), entry.EntryDate); err != nil {
		return nil, err
	}

	result := accounting.ValidateLineItems(entry.LineItems, s.tolerance)
	if !result.IsValid {
		logger.Warn("Journal entry failed validation",
			slog.String("entry_id", entryID),
			slog.Int("violations", len(result.Errors)))
		return nil, &accounting.ValidationFailedError{Result: result}
	}

	before := *entry
	now := time.Now().UTC()
	totals := accounting.ComputeTotals(entry.LineItems)
	entry.TotalDebit = totals.TotalDebit
	entry.TotalCredit = totals.TotalCredit
	entry.Status = domain.EntryPosted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	auditRec, err := NewAuditRecord(organizationID, userID, domain.ActionPost, domain.EntityJournalEntry, entryID, before, entry)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.MarkPosted(ctx, *entry, auditRec); err != nil {
		logger.Error("Failed to post journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post journal entry: %w", err)
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

func (s *journalService) ReverseEntry(ctx context.Context, organizationID, entryID, reason, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, fmt.Errorf("%w: reversal reason is required", apperrors.ErrValidation)
	}

	original, err := s.GetEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.EntryPosted {
		return nil, fmt.Errorf("%w: status is %s", ErrNotPosted, original.Status)
	}
	if original.OriginalEntryID != nil {
		return nil, ErrAlreadyReversal
	}
	if original.ReversingEntryID != nil {
		return nil, ErrAlreadyReversed
	}

	if err := s.lockSvc.CheckDate(ctx, organizationID, original.SourceKind.Module(), original.EntryDate); err != nil {
		return nil, err
	}

	entryNumber, err := s.sequenceSvc.NextNumber(ctx, organizationID, domain.KindJournal)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	lines := make([]domain.LineItem, len(original.LineItems))
	for i, l := range original.LineItems {
		m := l.Mirrored()
		m.LineItemID = uuid.NewString()
		m.EntryID = reversingID
		m.AuditFields = audit
		lines[i] = m
	}

	reversing := domain.JournalEntry{
		EntryID:         reversingID,
		OrganizationID:  organizationID,
		EntryNumber:     entryNumber,
		EntryDate:       original.EntryDate,
		Description:     fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, reason),
		SourceKind:      original.SourceKind,
		SourceRef:       original.EntryID,
		Status:          domain.EntryPosted,
		CurrencyCode:    original.CurrencyCode,
		TotalDebit:      original.TotalCredit,
		TotalCredit:     original.TotalDebit,
		OriginalEntryID: &original.EntryID,
		AuditFields:     audit,
	}

	createAudit, err := NewAuditRecord(organizationID, userID, domain.ActionCreate, domain.EntityJournalEntry, reversingID, nil, reversing)
	if err != nil {
		return nil, err
	}
	reverseAudit, err := NewAuditRecord(organizationID, userID, domain.ActionReverse, domain.EntityJournalEntry, original.EntryID, original, reversing)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveReversal(ctx, reversing, lines, original.EntryID, []domain.AuditRecord{createAudit, reverseAudit}); err != nil {
		logger.Error("Failed to save reversal", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to reverse journal entry: %w", err)
	}

	logger.Info("Journal entry reversed",
		slog.String("original_entry_id", original.EntryID),
		slog.String("reversing_entry_id", reversingID))
	reversing.LineItems = lines
	return &reversing, nil
}
