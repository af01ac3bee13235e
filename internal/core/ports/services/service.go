package services

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
)

// SequenceSvcFacade produces unique, monotonically increasing document
// references scoped to an (organization, document kind) pair.
type SequenceSvcFacade interface {
	// NextNumber returns the next formatted reference, e.g. JE-000042.
	// When the counter cannot be advanced it returns
	// *apperrors.SequenceUnavailableError; a number is never reused.
	NextNumber(ctx context.Context, organizationID string, kind domain.DocumentKind) (string, error)
}

// AuditSvcFacade exposes the append-only audit trail.
type AuditSvcFacade interface {
	// Record appends a standalone audit record.
	Record(ctx context.Context, record domain.AuditRecord) error

	// ListRecords reads a filtered page of the trail, newest first.
	ListRecords(ctx context.Context, organizationID string, filter portsrepo.AuditRecordFilter, limit, offset int) ([]domain.AuditRecord, error)
}

// AccountSvcFacade verifies chart-of-accounts references. The account
// catalog itself is owned by an external service.
type AccountSvcFacade interface {
	// VerifyAccounts resolves the given IDs and fails with a validation
	// error when any is missing or inactive.
	VerifyAccounts(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)
}
