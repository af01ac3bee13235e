package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to its model
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		RecordID:       d.RecordID,
		OrganizationID: d.OrganizationID,
		ActorID:        d.ActorID,
		Action:         string(d.Action),
		EntityType:     d.EntityType,
		EntityID:       d.EntityID,
		Before:         d.Before,
		After:          d.After,
		Severity:       string(d.Severity),
		RecordedAt:     d.RecordedAt,
		RetentionDate:  d.RetentionDate,
	}
}

// ToDomainAuditRecord converts a model AuditRecord to its domain
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		RecordID:       m.RecordID,
		OrganizationID: m.OrganizationID,
		ActorID:        m.ActorID,
		Action:         domain.AuditAction(m.Action),
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		Before:         m.Before,
		After:          m.After,
		Severity:       domain.AuditSeverity(m.Severity),
		RecordedAt:     m.RecordedAt,
		RetentionDate:  m.RetentionDate,
	}
}
