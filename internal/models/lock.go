package models

import "time"

// TransactionLock is the database representation of a period lock.
type TransactionLock struct {
	LockID            string     `json:"lockID"`
	OrganizationID    string     `json:"organizationID"`
	Module            string     `json:"module"`
	Status            string     `json:"status"`
	LockDate          time.Time  `json:"lockDate"`
	Reason            string     `json:"reason"`
	PartialUnlockFrom   *time.Time `json:"partialUnlockFrom"`
	PartialUnlockTo     *time.Time `json:"partialUnlockTo"`
	PartialUnlockReason string     `json:"partialUnlockReason"`
	AuditFields
}
