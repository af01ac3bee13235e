package models

import (
	"encoding/json"
	"time"
)

// AuditRecord is the database representation of one immutable audit row.
type AuditRecord struct {
	RecordID       string          `json:"recordID"`
	OrganizationID string          `json:"organizationID"`
	ActorID        string          `json:"actorID"`
	Action         string          `json:"action"`
	EntityType     string          `json:"entityType"`
	EntityID       string          `json:"entityID"`
	Before         json.RawMessage `json:"before"`
	After          json.RawMessage `json:"after"`
	Severity       string          `json:"severity"`
	RecordedAt     time.Time       `json:"recordedAt"`
	RetentionDate  *time.Time      `json:"retentionDate"`
}
