package domain

import (
	"encoding/json"
	"time"
)

// AuditSeverity grades an audit record.
type AuditSeverity string

const (
	SeverityInfo     AuditSeverity = "info"
	SeverityWarning  AuditSeverity = "warning"
	SeverityCritical AuditSeverity = "critical"
)

// AuditAction names the state change an audit record captures.
type AuditAction string

const (
	ActionCreate        AuditAction = "create"
	ActionPost          AuditAction = "post"
	ActionReverse       AuditAction = "reverse"
	ActionApprove       AuditAction = "approve"
	ActionReject        AuditAction = "reject"
	ActionLock          AuditAction = "lock"
	ActionPartialUnlock AuditAction = "partial_unlock"
	ActionUnlock        AuditAction = "unlock"
	ActionMatch         AuditAction = "match"
	ActionReconcile     AuditAction = "reconcile"
)

// AuditRecord is an immutable trace of who changed what. Records are
// append-only; removal happens only through an external retention sweep
// keyed on RetentionDate.
type AuditRecord struct {
	RecordID       string          `json:"recordID"`
	OrganizationID string          `json:"organizationID"`
	ActorID        string          `json:"actorID"`
	Action         AuditAction     `json:"action"`
	EntityType     string          `json:"entityType"`
	EntityID       string          `json:"entityID"`
	Before         json.RawMessage `json:"before,omitempty"`
	After          json.RawMessage `json:"after,omitempty"`
	Severity       AuditSeverity   `json:"severity"`
	RecordedAt     time.Time       `json:"recordedAt"`
	RetentionDate  *time.Time      `json:"retentionDate,omitempty"`
}

// Audited entity type names, part of the wire contract with consumers of
// the audit trail.
const (
	EntityJournalEntry       = "journal_entry"
	EntityCurrencyAdjustment = "currency_adjustment"
	EntityTransactionLock    = "transaction_lock"
	EntityReconciliation     = "bank_reconciliation"
	EntityReconciliationItem = "reconciliation_item"
	EntityExchangeRate       = "exchange_rate"
)
