package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		OrganizationID:   d.OrganizationID,
		EntryNumber:      d.EntryNumber,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		SourceKind:       string(d.SourceKind),
		SourceRef:        d.SourceRef,
		Status:           string(d.Status),
		CurrencyCode:     string(d.CurrencyCode),
		TotalDebit:       d.TotalDebit,
		TotalCredit:      d.TotalCredit,
		OriginalEntryID:  d.OriginalEntryID,
		ReversingEntryID: d.ReversingEntryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		OrganizationID:   m.OrganizationID,
		EntryNumber:      m.EntryNumber,
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		SourceKind:       domain.SourceKind(m.SourceKind),
		SourceRef:        m.SourceRef,
		Status:           domain.EntryStatus(m.Status),
		CurrencyCode:     domain.CurrencyCode(m.CurrencyCode),
		TotalDebit:       m.TotalDebit,
		TotalCredit:      m.TotalCredit,
		OriginalEntryID:  m.OriginalEntryID,
		ReversingEntryID: m.ReversingEntryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:   d.LineItemID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		CurrencyCode: string(d.CurrencyCode),
		ExchangeRate: d.ExchangeRate,
		BaseAmount:   d.BaseAmount,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:   m.LineItemID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		CurrencyCode: domain.CurrencyCode(m.CurrencyCode),
		ExchangeRate: m.ExchangeRate,
		BaseAmount:   m.BaseAmount,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
