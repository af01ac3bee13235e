package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToDomainAccount converts a model Account to its domain
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		CurrencyCode:   domain.CurrencyCode(m.CurrencyCode),
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
