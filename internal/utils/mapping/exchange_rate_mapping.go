package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to its model
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		OrganizationID:   d.OrganizationID,
		FromCurrencyCode: string(d.FromCurrencyCode),
		ToCurrencyCode:   string(d.ToCurrencyCode),
		Rate:             d.Rate,
		DateEffective:    d.DateEffective,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to its domain
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		OrganizationID:   m.OrganizationID,
		FromCurrencyCode: domain.CurrencyCode(m.FromCurrencyCode),
		ToCurrencyCode:   domain.CurrencyCode(m.ToCurrencyCode),
		Rate:             m.Rate,
		DateEffective:    m.DateEffective,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
