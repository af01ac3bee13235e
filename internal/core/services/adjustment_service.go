package services

import (
	"context"
	"errors"
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
	ErrSameCurrencyAdjustment = fmt.Errorf("adjustment currencies must differ: %w", apperrors.ErrValidation)
	ErrNotPending             = fmt.Errorf("currency adjustment is not pending: %w", apperrors.ErrConflict)
	ErrRejectionReasonMissing = fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
)

// adjustmentService manages currency adjustments: pending revaluations that,
// once approved, post a two-line gain/loss journal entry.
type adjustmentService struct {
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	currencySvc    portssvc.CurrencySvcFacade
	accountSvc     portssvc.AccountSvcFacade
	sequenceSvc    portssvc.SequenceSvcFacade
	lockSvc        portssvc.LockSvcFacade
}

// NewAdjustmentService creates a new AdjustmentSvcFacade.
func NewAdjustmentService(adjustmentRepo portsrepo.AdjustmentRepositoryFacade, currencySvc portssvc.CurrencySvcFacade, accountSvc portssvc.AccountSvcFacade, sequenceSvc portssvc.SequenceSvcFacade, lockSvc portssvc.LockSvcFacade) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		adjustmentRepo: adjustmentRepo,
		currencySvc:    currencySvc,
		accountSvc:     accountSvc,
		sequenceSvc:    sequenceSvc,
		lockSvc:        lockSvc,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

func (s *adjustmentService) CreateAdjustment(ctx context.Context, organizationID string, req dto.CreateCurrencyAdjustmentRequest, creatorUserID string) (*domain.CurrencyAdjustment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from, err := domain.ParseCurrency(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseCurrency(req.ToCurrency)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, ErrSameCurrencyAdjustment
	}

	converted, err := accounting.Convert(req.OriginalAmount, req.ExchangeRate)
	if err != nil {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: err.Error()}
	}

	// Classify against the previously recorded rate for the pair. With no
	// baseline there is nothing to gain or lose against, so the adjustment
	// is neutral.
	adjustmentType := domain.AdjustmentNeutral
	amount := decimal.Zero
	prior, err := s.currencySvc.GetRate(ctx, organizationID, from, to, req.EffectiveDate)
	switch {
	case err == nil:
		expected := req.OriginalAmount.Mul(prior.Rate)
		adjustmentType = accounting.Classify(expected, converted, to.MinorUnitTolerance())
		if adjustmentType != domain.AdjustmentNeutral {
			amount = converted.Sub(expected)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// No baseline rate recorded.
	default:
		return nil, err
	}

	referenceNumber, err := s.sequenceSvc.NextNumber(ctx, organizationID, domain.KindCurrencyAdjustment)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	adj := domain.CurrencyAdjustment{
		AdjustmentID:    uuid.NewString(),
		OrganizationID:  organizationID,
		ReferenceNumber: referenceNumber,
		AccountID:       req.AccountID,
		GainLossAccount: req.GainLossAccount,
		FromCurrency:    from,
		ToCurrency:      to,
		OriginalAmount:  req.OriginalAmount,
		ConvertedAmount: converted,
		ExchangeRate:    req.ExchangeRate,
		AdjustmentType:  adjustmentType,
		Amount:          amount,
		EffectiveDate:   req.EffectiveDate,
		Status:          domain.AdjustmentPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	auditRec, err := NewAuditRecord(organizationID, creatorUserID, domain.ActionCreate, domain.EntityCurrencyAdjustment, adj.AdjustmentID, nil, adj)
	if err != nil {
		return nil, err
	}

	if err := s.adjustmentRepo.SaveAdjustment(ctx, adj, auditRec); err != nil {
		logger.Error("Failed to save currency adjustment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save currency adjustment: %w", err)
	}

	logger.Info("Currency adjustment created",
		slog.String("adjustment_id", adj.AdjustmentID),
		slog.String("reference_number", referenceNumber),
		slog.String("type", string(adjustmentType)))
	return &adj, nil
}

func (s *adjustmentService) GetAdjustmentByID(ctx context.Context, organizationID, adjustmentID string) (*domain.CurrencyAdjustment, error) {
	adj, err := s.adjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency adjustment %s: %w", adjustmentID, err)
	}
	if adj.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return adj, nil
}

func (s *adjustmentService) ListAdjustments(ctx context.Context, organizationID string, limit, offset int) ([]domain.CurrencyAdjustment, error) {
	if limit <= 0 {
		limit = 20
	}
	adjustments, err := s.adjustmentRepo.ListAdjustmentsByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency adjustments: %w", err)
	}
	return adjustments, nil
}

func (s *adjustmentService) ApproveAdjustment(ctx context.Context, organizationID, adjustmentID, approverID string) (*domain.CurrencyAdjustment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	adj, err := s.GetAdjustmentByID(ctx, organizationID, adjustmentID)
	if err != nil {
		return nil, err
	}
	if adj.Status != domain.AdjustmentPending {
		return nil, fmt.Errorf("%w: status is %s", ErrNotPending, adj.Status)
	}

	// Approval writes to the accountant module on the effective date.
	if err := s.lockSvc.CheckDate(ctx, organizationID, domain.ModuleAccountant, adj.EffectiveDate); err != nil {
		return nil, err
	}

	before := *adj
	now := time.Now().UTC()
	adj.Status = domain.AdjustmentApproved
	adj.ApproverID = approverID
	adj.ApprovedAt = &now
	adj.LastUpdatedAt = now
	adj.LastUpdatedBy = approverID

	var entry *domain.JournalEntry
	var lines []domain.LineItem
	audits := make([]domain.AuditRecord, 0, 2)

	// A neutral adjustment moves no value, so no journal entry is posted.
	if adj.AdjustmentType != domain.AdjustmentNeutral {
		entry, lines, err = s.buildGainLossEntry(ctx, organizationID, adj, approverID, now)
		if err != nil {
			return nil, err
		}
		adj.EntryID = &entry.EntryID

		entryAudit, err := NewAuditRecord(organizationID, approverID, domain.ActionCreate, domain.EntityJournalEntry, entry.EntryID, nil, entry)
		if err != nil {
			return nil, err
		}
		audits = append(audits, entryAudit)
	}

	approveAudit, err := NewAuditRecord(organizationID, approverID, domain.ActionApprove, domain.EntityCurrencyAdjustment, adjustmentID, before, adj)
	if err != nil {
		return nil, err
	}
	audits = append(audits, approveAudit)

	// The status transition and the gain/loss entry commit together, so a
	// failed approval never leaves a posted entry behind.
	if err := s.adjustmentRepo.ApproveWithEntry(ctx, *adj, entry, lines, audits); err != nil {
		logger.Error("Failed to approve currency adjustment", slog.String("adjustment_id", adjustmentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to approve currency adjustment: %w", err)
	}

	logger.Info("Currency adjustment approved",
		slog.String("adjustment_id", adjustmentID),
		slog.String("approver_id", approverID))
	return adj, nil
}

// buildGainLossEntry assembles the posted two-line journal entry realizing a
// non-neutral adjustment. A gain debits the adjusted account and credits the
// gain/loss account; a loss runs the other way.
func (s *adjustmentService) buildGainLossEntry(ctx context.Context, organizationID string, adj *domain.CurrencyAdjustment, userID string, now time.Time) (*domain.JournalEntry, []domain.LineItem, error) {
	if _, err := s.accountSvc.VerifyAccounts(ctx, organizationID, []string{adj.AccountID, adj.GainLossAccount}); err != nil {
		return nil, nil, err
	}

	entryNumber, err := s.sequenceSvc.NextNumber(ctx, organizationID, domain.KindJournal)
	if err != nil {
		return nil, nil, err
	}

	magnitude := adj.Amount.Abs()
	one := decimal.NewFromInt(1)
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	adjusted := domain.LineItem{
		LineItemID:   uuid.NewString(),
		EntryID:      entryID,
		AccountID:    adj.AccountID,
		CurrencyCode: adj.ToCurrency,
		ExchangeRate: one,
		BaseAmount:   magnitude,
		AuditFields:  audit,
	}
	gainLoss := domain.LineItem{
		LineItemID:   uuid.NewString(),
		EntryID:      entryID,
		AccountID:    adj.GainLossAccount,
		CurrencyCode: adj.ToCurrency,
		ExchangeRate: one,
		BaseAmount:   magnitude,
		AuditFields:  audit,
	}
	if adj.AdjustmentType == domain.AdjustmentGain {
		adjusted.Debit = magnitude
		gainLoss.Credit = magnitude
	} else {
		adjusted.Credit = magnitude
		gainLoss.Debit = magnitude
	}

	entry := &domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: organizationID,
		EntryNumber:    entryNumber,
		EntryDate:      adj.EffectiveDate,
		Description:    fmt.Sprintf("Currency adjustment %s (%s)", adj.ReferenceNumber, adj.AdjustmentType),
		SourceKind:     domain.SourceCurrencyAdjustment,
		SourceRef:      adj.AdjustmentID,
		Status:         domain.EntryPosted,
		CurrencyCode:   adj.ToCurrency,
		TotalDebit:     magnitude,
		TotalCredit:    magnitude,
		AuditFields:    audit,
	}
	return entry, []domain.LineItem{adjusted, gainLoss}, nil
}

func (s *adjustmentService) RejectAdjustment(ctx context.Context, organizationID, adjustmentID, reason, userID string) (*domain.CurrencyAdjustment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, ErrRejectionReasonMissing
	}

	adj, err := s.GetAdjustmentByID(ctx, organizationID, adjustmentID)
	if err != nil {
		return nil, err
	}
	if adj.Status != domain.AdjustmentPending {
		return nil, fmt.Errorf("%w: status is %s", ErrNotPending, adj.Status)
	}

	before := *adj
	now := time.Now().UTC()
	adj.Status = domain.AdjustmentRejected
	adj.RejectionReason = reason
	adj.LastUpdatedAt = now
	adj.LastUpdatedBy = userID

	auditRec, err := NewAuditRecord(organizationID, userID, domain.ActionReject, domain.EntityCurrencyAdjustment, adjustmentID, before, adj)
	if err != nil {
		return nil, err
	}

	if err := s.adjustmentRepo.UpdateAdjustmentStatus(ctx, *adj, auditRec); err != nil {
		logger.Error("Failed to reject currency adjustment", slog.String("adjustment_id", adjustmentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to reject currency adjustment: %w", err)
	}

	logger.Info("Currency adjustment rejected", slog.String("adjustment_id", adjustmentID))
	return adj, nil
}
