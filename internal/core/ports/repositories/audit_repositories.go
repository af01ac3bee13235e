package repositories

import (
	"context"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// AuditRecordFilter narrows an audit trail listing.
type AuditRecordFilter struct {
	EntityType string
	EntityID   string
	ActorID    string
	From       *time.Time
	To         *time.Time
}

// AuditRepositoryFacade stores the append-only audit trail. Records are
// never updated or deleted here; retention sweeps run outside this core.
type AuditRepositoryFacade interface {
	// SaveRecord appends a standalone audit record (used for read-side or
	// non-transactional events; mutations audit inside their own tx).
	SaveRecord(ctx context.Context, record domain.AuditRecord) error

	// ListRecords retrieves a filtered, paginated slice of the trail,
	// newest first.
	ListRecords(ctx context.Context, organizationID string, filter AuditRecordFilter, limit, offset int) ([]domain.AuditRecord, error)
}
