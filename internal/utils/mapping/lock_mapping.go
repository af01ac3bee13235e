package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToModelTransactionLock converts a domain TransactionLock to its model
func ToModelTransactionLock(d domain.TransactionLock) models.TransactionLock {
	return models.TransactionLock{
		LockID:              d.LockID,
		OrganizationID:      d.OrganizationID,
		Module:              string(d.Module),
		Status:              string(d.Status),
		LockDate:            d.LockDate,
		Reason:              d.Reason,
		PartialUnlockFrom:   d.PartialUnlockFrom,
		PartialUnlockTo:     d.PartialUnlockTo,
		PartialUnlockReason: d.PartialUnlockReason,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransactionLock converts a model TransactionLock to its domain
func ToDomainTransactionLock(m models.TransactionLock) domain.TransactionLock {
	return domain.TransactionLock{
		LockID:              m.LockID,
		OrganizationID:      m.OrganizationID,
		Module:              domain.LedgerModule(m.Module),
		Status:              domain.LockStatus(m.Status),
		LockDate:            m.LockDate,
		Reason:              m.Reason,
		PartialUnlockFrom:   m.PartialUnlockFrom,
		PartialUnlockTo:     m.PartialUnlockTo,
		PartialUnlockReason: m.PartialUnlockReason,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
