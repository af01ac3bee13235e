package dto

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// LockModuleRequest closes a module's period through LockDate.
type LockModuleRequest struct {
	Module   string    `json:"module" binding:"required"`
	LockDate time.Time `json:"lockDate" binding:"required"`
	Reason   string    `json:"reason" binding:"required"`
}

// PartialUnlockRequest opens an exception window inside a locked period.
type PartialUnlockRequest struct {
	From   time.Time `json:"partialUnlockFrom" binding:"required"`
	To     time.Time `json:"partialUnlockTo" binding:"required"`
	Reason string    `json:"partialUnlockReason" binding:"required"`
}

// TransactionLockResponse is the outward shape of a lock record.
type TransactionLockResponse struct {
	LockID              string     `json:"lockID"`
	Module              string     `json:"module"`
	Status              string     `json:"status"`
	LockDate            time.Time  `json:"lockDate"`
	Reason              string     `json:"reason"`
	PartialUnlockFrom   *time.Time `json:"partialUnlockFrom,omitempty"`
	PartialUnlockTo     *time.Time `json:"partialUnlockTo,omitempty"`
	PartialUnlockReason string     `json:"partialUnlockReason,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	CreatedBy           string     `json:"createdBy"`
}

// LockStatusResponse answers "is this date locked for this module".
type LockStatusResponse struct {
	Module string    `json:"module"`
	Date   time.Time `json:"date"`
	Locked bool      `json:"locked"`
}

// ToTransactionLockResponse converts a domain lock to its response DTO.
func ToTransactionLockResponse(l *domain.TransactionLock) TransactionLockResponse {
	return TransactionLockResponse{
		LockID:              l.LockID,
		Module:              string(l.Module),
		Status:              string(l.Status),
		LockDate:            l.LockDate,
		Reason:              l.Reason,
		PartialUnlockFrom:   l.PartialUnlockFrom,
		PartialUnlockTo:     l.PartialUnlockTo,
		PartialUnlockReason: l.PartialUnlockReason,
		CreatedAt:           l.CreatedAt,
		CreatedBy:           l.CreatedBy,
	}
}
