package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// AdjustmentReader defines read operations for currency adjustments.
type AdjustmentReader interface {
	// FindAdjustmentByID retrieves an adjustment by its unique identifier.
	FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.CurrencyAdjustment, error)

	// ListAdjustmentsByOrganization retrieves a paginated list, newest first.
	ListAdjustmentsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.CurrencyAdjustment, error)
}

// AdjustmentWriter defines write operations for currency adjustments.
// Adjustments are never hard-deleted; only status transitions mutate them.
type AdjustmentWriter interface {
	// SaveAdjustment persists a new pending adjustment.
	SaveAdjustment(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error

	// UpdateAdjustmentStatus applies an approval or rejection transition.
	// Returns apperrors.ErrConflict if the adjustment is not pending.
	UpdateAdjustmentStatus(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error

	// ApproveWithEntry applies the approval transition and persists the
	// posted gain/loss journal entry in the same transaction; entry is nil
	// for a neutral adjustment. Returns apperrors.ErrConflict if the
	// adjustment is not pending.
	ApproveWithEntry(ctx context.Context, adj domain.CurrencyAdjustment, entry *domain.JournalEntry, lines []domain.LineItem, audits []domain.AuditRecord) error
}

// AdjustmentRepositoryFacade combines adjustment repository interfaces.
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
