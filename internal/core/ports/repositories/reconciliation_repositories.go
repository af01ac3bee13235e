package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// ReconciliationRepositoryFacade persists reconciliation runs. All item
// mutations lock the parent document row so concurrent edits to the same
// run serialize; the parent difference is recomputed from the full item set
// inside the same transaction.
type ReconciliationRepositoryFacade interface {
	// SaveReconciliation persists a new run with its items.
	SaveReconciliation(ctx context.Context, rec domain.BankReconciliation, audit domain.AuditRecord) error

	// FindReconciliationByID retrieves a run with its items.
	FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error)

	// UpdateItem applies an item mutation, recomputes the parent difference
	// as the sum of all non-reconciled item differences, updates the parent
	// status, and returns the refreshed document.
	UpdateItem(ctx context.Context, reconciliationID string, item domain.ReconciliationItem, parentStatus domain.ReconciliationStatus, audit domain.AuditRecord) (*domain.BankReconciliation, error)
}
