package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToModelCurrencyAdjustment converts a domain CurrencyAdjustment to its model
func ToModelCurrencyAdjustment(d domain.CurrencyAdjustment) models.CurrencyAdjustment {
	return models.CurrencyAdjustment{
		AdjustmentID:    d.AdjustmentID,
		OrganizationID:  d.OrganizationID,
		ReferenceNumber: d.ReferenceNumber,
		AccountID:       d.AccountID,
		GainLossAccount: d.GainLossAccount,
		FromCurrency:    string(d.FromCurrency),
		ToCurrency:      string(d.ToCurrency),
		OriginalAmount:  d.OriginalAmount,
		ConvertedAmount: d.ConvertedAmount,
		ExchangeRate:    d.ExchangeRate,
		AdjustmentType:  string(d.AdjustmentType),
		Amount:          d.Amount,
		EffectiveDate:   d.EffectiveDate,
		Status:          string(d.Status),
		ApproverID:      d.ApproverID,
		ApprovedAt:      d.ApprovedAt,
		RejectionReason: d.RejectionReason,
		EntryID:         d.EntryID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyAdjustment converts a model CurrencyAdjustment to its domain
func ToDomainCurrencyAdjustment(m models.CurrencyAdjustment) domain.CurrencyAdjustment {
	return domain.CurrencyAdjustment{
		AdjustmentID:    m.AdjustmentID,
		OrganizationID:  m.OrganizationID,
		ReferenceNumber: m.ReferenceNumber,
		AccountID:       m.AccountID,
		GainLossAccount: m.GainLossAccount,
		FromCurrency:    domain.CurrencyCode(m.FromCurrency),
		ToCurrency:      domain.CurrencyCode(m.ToCurrency),
		OriginalAmount:  m.OriginalAmount,
		ConvertedAmount: m.ConvertedAmount,
		ExchangeRate:    m.ExchangeRate,
		AdjustmentType:  domain.AdjustmentType(m.AdjustmentType),
		Amount:          m.Amount,
		EffectiveDate:   m.EffectiveDate,
		Status:          domain.AdjustmentStatus(m.Status),
		ApproverID:      m.ApproverID,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		EntryID:         m.EntryID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
