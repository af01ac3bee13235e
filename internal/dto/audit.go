package dto

import (
	"encoding/json"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// AuditRecordResponse is the outward shape of one audit record.
type AuditRecordResponse struct {
	RecordID   string          `json:"recordID"`
	ActorID    string          `json:"actorID"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityID"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Severity   string          `json:"severity"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// ListAuditRecordsResponse pages through the audit trail.
type ListAuditRecordsResponse struct {
	Records []AuditRecordResponse `json:"records"`
}

// ToAuditRecordResponse converts a domain record to its response DTO.
func ToAuditRecordResponse(r *domain.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		RecordID:   r.RecordID,
		ActorID:    r.ActorID,
		Action:     string(r.Action),
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Before:     r.Before,
		After:      r.After,
		Severity:   string(r.Severity),
		RecordedAt: r.RecordedAt,
	}
}
