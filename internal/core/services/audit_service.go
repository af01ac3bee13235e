package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/google/uuid"
)

// auditService reads and appends the audit trail. Mutations of audited
// entities write their records inside the owning repository transaction;
// this service covers standalone appends and the read side.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new AuditSvcFacade.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, record domain.AuditRecord) error {
	if record.RecordID == "" {
		record.RecordID = uuid.NewString()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	if record.Severity == "" {
		record.Severity = domain.SeverityInfo
	}

	if err := s.auditRepo.SaveRecord(ctx, record); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit record",
			slog.String("entity_type", record.EntityType),
			slog.String("entity_id", record.EntityID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

func (s *auditService) ListRecords(ctx context.Context, organizationID string, filter portsrepo.AuditRecordFilter, limit, offset int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	records, err := s.auditRepo.ListRecords(ctx, organizationID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}

// NewAuditRecord builds a record for a state change, serializing the before
// and after snapshots. Marshal failures surface as errors so a mutation is
// never silently unaudited.
func NewAuditRecord(organizationID, actorID string, action domain.AuditAction, entityType, entityID string, before, after any) (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		RecordID:       uuid.NewString(),
		OrganizationID: organizationID,
		ActorID:        actorID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Severity:       domain.SeverityInfo,
		RecordedAt:     time.Now().UTC(),
	}
	if before != nil {
		b, err := json.Marshal(before)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("failed to serialize audit before-state: %w", err)
		}
		rec.Before = b
	}
	if after != nil {
		a, err := json.Marshal(after)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("failed to serialize audit after-state: %w", err)
		}
		rec.After = a
	}
	return rec, nil
}
