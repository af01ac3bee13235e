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
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/dates"
	"github.com/google/uuid"
)

var (
	ErrLockDateInFuture    = fmt.Errorf("lock date cannot be in the future: %w", apperrors.ErrValidation)
	ErrNotLocked           = fmt.Errorf("module is not locked: %w", apperrors.ErrConflict)
	ErrPartialWindowBounds = fmt.Errorf("partial unlock window must satisfy from <= to <= lock date: %w", apperrors.ErrValidation)
)

// lockService is the period-lock guard: a per-(organization, module) state
// machine over unlocked, locked and partially_unlocked. The uniqueness of
// the active record is enforced by the repository's conditional insert, so
// two racing Lock calls cannot both succeed.
type lockService struct {
	lockRepo portsrepo.LockRepositoryFacade
}

// NewLockService creates a new LockSvcFacade.
func NewLockService(lockRepo portsrepo.LockRepositoryFacade) portssvc.LockSvcFacade {
	return &lockService{lockRepo: lockRepo}
}

var _ portssvc.LockSvcFacade = (*lockService)(nil)

func (s *lockService) LockModule(ctx context.Context, organizationID string, req dto.LockModuleRequest, userID string) (*domain.TransactionLock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	module, err := domain.ParseLedgerModule(req.Module)
	if err != nil {
		return nil, err
	}

	// Day granularity so that "today" always remains lockable regardless of
	// the request's wall-clock time.
	if dates.AfterDay(req.LockDate, dates.Today()) {
		return nil, fmt.Errorf("%w: %s", ErrLockDateInFuture, req.LockDate.Format("2006-01-02"))
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: lock reason is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	lock := domain.TransactionLock{
		LockID:         uuid.NewString(),
		OrganizationID: organizationID,
		Module:         module,
		Status:         domain.LockLocked,
		LockDate:       dates.DayOf(req.LockDate),
		Reason:         req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	audit, err := NewAuditRecord(organizationID, userID, domain.ActionLock, domain.EntityTransactionLock, lock.LockID, nil, lock)
	if err != nil {
		return nil, err
	}

	if err := s.lockRepo.CreateLock(ctx, lock, audit); err != nil {
		var dup *apperrors.DuplicateLockError
		if errors.As(err, &dup) {
			logger.Warn("Module already locked", slog.String("module", string(module)))
			return nil, err
		}
		logger.Error("Failed to create transaction lock", slog.String("module", string(module)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create transaction lock: %w", err)
	}

	logger.Info("Module locked",
		slog.String("module", string(module)),
		slog.String("lock_date", lock.LockDate.Format("2006-01-02")))
	return &lock, nil
}

func (s *lockService) PartiallyUnlock(ctx context.Context, organizationID string, module domain.LedgerModule, req dto.PartialUnlockRequest, userID string) (*domain.TransactionLock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lock, err := s.lockRepo.FindActiveLock(ctx, organizationID, module)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: module %s", ErrNotLocked, module)
		}
		return nil, fmt.Errorf("failed to find active lock: %w", err)
	}

	// Partial unlock is only reachable from the fully locked state.
	if lock.Status != domain.LockLocked {
		return nil, fmt.Errorf("%w: module %s is %s, expected locked", apperrors.ErrConflict, module, lock.Status)
	}

	from, to := dates.DayOf(req.From), dates.DayOf(req.To)
	if from.After(to) || dates.AfterDay(to, lock.LockDate) {
		return nil, fmt.Errorf("%w: [%s, %s] against lock date %s",
			ErrPartialWindowBounds, from.Format("2006-01-02"), to.Format("2006-01-02"), lock.LockDate.Format("2006-01-02"))
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: partial unlock reason is required", apperrors.ErrValidation)
	}

	before := *lock
	now := time.Now().UTC()
	lock.Status = domain.LockPartiallyUnlocked
	lock.PartialUnlockFrom = &from
	lock.PartialUnlockTo = &to
	lock.PartialUnlockReason = req.Reason
	lock.LastUpdatedAt = now
	lock.LastUpdatedBy = userID

	audit, err := NewAuditRecord(organizationID, userID, domain.ActionPartialUnlock, domain.EntityTransactionLock, lock.LockID, before, lock)
	if err != nil {
		return nil, err
	}

	if err := s.lockRepo.UpdateLock(ctx, *lock, audit); err != nil {
		logger.Error("Failed to partially unlock module", slog.String("module", string(module)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to partially unlock module: %w", err)
	}

	logger.Info("Module partially unlocked",
		slog.String("module", string(module)),
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")))
	return lock, nil
}

func (s *lockService) UnlockModule(ctx context.Context, organizationID string, module domain.LedgerModule, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	lock, err := s.lockRepo.FindActiveLock(ctx, organizationID, module)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: module %s", ErrNotLocked, module)
		}
		return fmt.Errorf("failed to find active lock: %w", err)
	}

	before := *lock
	now := time.Now().UTC()
	lock.Status = domain.LockUnlocked
	lock.LastUpdatedAt = now
	lock.LastUpdatedBy = userID

	audit, err := NewAuditRecord(organizationID, userID, domain.ActionUnlock, domain.EntityTransactionLock, lock.LockID, before, lock)
	if err != nil {
		return err
	}

	if err := s.lockRepo.DeactivateLock(ctx, *lock, audit); err != nil {
		logger.Error("Failed to unlock module", slog.String("module", string(module)), slog.String("error", err.Error()))
		return fmt.Errorf("failed to unlock module: %w", err)
	}

	logger.Info("Module unlocked", slog.String("module", string(module)))
	return nil
}

func (s *lockService) ListLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error) {
	locks, err := s.lockRepo.ListActiveLocks(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction locks: %w", err)
	}
	return locks, nil
}

func (s *lockService) IsDateLocked(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) (bool, error) {
	lock, err := s.lockRepo.FindActiveLock(ctx, organizationID, module)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No active record is the unlocked state.
			return false, nil
		}
		return false, fmt.Errorf("failed to check period lock: %w", err)
	}
	return lock.Covers(date), nil
}

func (s *lockService) CheckDate(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) error {
	lock, err := s.lockRepo.FindActiveLock(ctx, organizationID, module)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check period lock: %w", err)
	}
	if lock.Covers(date) {
		return &apperrors.LockViolationError{
			Module:   string(module),
			LockDate: lock.LockDate,
			Date:     dates.DayOf(date),
		}
	}
	return nil
}
