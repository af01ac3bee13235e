package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// LockRepositoryFacade persists transaction locks. The storage layer is
// responsible for the one-active-lock-per-(organization, module) invariant:
// CreateLock performs the existence check and the insert as a single
// conditional statement, never check-then-act across round trips.
type LockRepositoryFacade interface {
	// FindActiveLock returns the active lock for a module, or
	// apperrors.ErrNotFound when the module is unlocked.
	FindActiveLock(ctx context.Context, organizationID string, module domain.LedgerModule) (*domain.TransactionLock, error)

	// ListActiveLocks returns all active locks for an organization.
	ListActiveLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error)

	// CreateLock inserts a new active lock. When an active lock already
	// exists for the (organization, module) pair it returns
	// *apperrors.DuplicateLockError; exactly one of two racing calls wins.
	CreateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error

	// UpdateLock mutates the active lock in place (partial unlock, window
	// changes). Returns apperrors.ErrNotFound if no active lock exists.
	UpdateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error

	// DeactivateLock clears the active lock back to unlocked. Returns
	// apperrors.ErrNotFound if no active lock exists.
	DeactivateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error
}
