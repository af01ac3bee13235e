package services

import (
	"context"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
)

// LockSvcFacade is the period-lock guard. Every mutating ledger operation
// consults CheckDate for its module and effective date before proceeding.
type LockSvcFacade interface {
	// LockModule closes a module's period. Fails with
	// *apperrors.DuplicateLockError when an active lock already exists and
	// with a validation error when the lock date is in the calendar future.
	LockModule(ctx context.Context, organizationID string, req dto.LockModuleRequest, userID string) (*domain.TransactionLock, error)

	// PartiallyUnlock opens an exception window [from, to] inside a locked
	// period. Only valid from the locked state; from <= to <= lockDate.
	PartiallyUnlock(ctx context.Context, organizationID string, module domain.LedgerModule, req dto.PartialUnlockRequest, userID string) (*domain.TransactionLock, error)

	// UnlockModule clears the active lock. Absence of an active record is
	// the unlocked state.
	UnlockModule(ctx context.Context, organizationID string, module domain.LedgerModule, userID string) error

	// ListLocks returns all active locks for an organization.
	ListLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error)

	// IsDateLocked reports whether a transaction dated on the given day is
	// blocked in the module.
	IsDateLocked(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) (bool, error)

	// CheckDate is IsDateLocked as a guard: it returns
	// *apperrors.LockViolationError when the date is locked, nil otherwise.
	CheckDate(ctx context.Context, organizationID string, module domain.LedgerModule, date time.Time) error
}
