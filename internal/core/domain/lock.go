package domain

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/dates"
)

// LockStatus is the state of a transaction lock record. An organization with
// no active record for a module is conceptually unlocked; the "unlocked"
// status only appears on deactivated rows kept for history.
type LockStatus string

const (
	LockUnlocked          LockStatus = "unlocked"
	LockLocked            LockStatus = "locked"
	LockPartiallyUnlocked LockStatus = "partially_unlocked"
)

// TransactionLock closes an accounting period for one module of one
// organization. At most one active (locked or partially_unlocked) record
// exists per (organization, module); re-locking, unlocking and partial
// unlocking mutate that record in place.
type TransactionLock struct {
	LockID         string       `json:"lockID"`
	OrganizationID string       `json:"organizationID"`
	Module         LedgerModule `json:"module"`
	Status         LockStatus   `json:"status"`
	LockDate       time.Time    `json:"lockDate"` // Transactions on or before this day are locked
	Reason         string       `json:"reason"`

	// Partial-unlock exception window, only meaningful when Status is
	// partially_unlocked. Invariant: From <= To <= LockDate.
	PartialUnlockFrom   *time.Time `json:"partialUnlockFrom,omitempty"`
	PartialUnlockTo     *time.Time `json:"partialUnlockTo,omitempty"`
	PartialUnlockReason string     `json:"partialUnlockReason,omitempty"`

	AuditFields
}

// Active reports whether the record currently restricts mutations.
func (l TransactionLock) Active() bool {
	return l.Status == LockLocked || l.Status == LockPartiallyUnlocked
}

// Covers reports whether a transaction dated on the given calendar day is
// blocked by this lock. A partially unlocked record leaves the exception
// window [From, To] open while the rest of the period stays closed.
func (l TransactionLock) Covers(date time.Time) bool {
	if !l.Active() {
		return false
	}
	if dates.AfterDay(date, l.LockDate) {
		return false
	}
	if l.Status == LockPartiallyUnlocked && l.PartialUnlockFrom != nil && l.PartialUnlockTo != nil {
		if !dates.BeforeDay(date, *l.PartialUnlockFrom) && dates.OnOrBeforeDay(date, *l.PartialUnlockTo) {
			return false
		}
	}
	return true
}
