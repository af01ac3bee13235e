package mapping

import (
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelBankReconciliation converts a domain BankReconciliation to its model
func ToModelBankReconciliation(d domain.BankReconciliation) models.BankReconciliation {
	return models.BankReconciliation{
		ReconciliationID: d.ReconciliationID,
		OrganizationID:   d.OrganizationID,
		AccountID:        d.AccountID,
		BankBalance:      d.BankBalance,
		BookBalance:      d.BookBalance,
		Difference:       d.Difference,
		Status:           string(d.Status),
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankReconciliation converts a model BankReconciliation to its domain
func ToDomainBankReconciliation(m models.BankReconciliation) domain.BankReconciliation {
	return domain.BankReconciliation{
		ReconciliationID: m.ReconciliationID,
		OrganizationID:   m.OrganizationID,
		AccountID:        m.AccountID,
		BankBalance:      m.BankBalance,
		BookBalance:      m.BookBalance,
		Difference:       m.Difference,
		Status:           domain.ReconciliationStatus(m.Status),
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReconciliationItem flattens a domain ReconciliationItem, with its
// nested bank line and optional book transaction, into a single row.
func ToModelReconciliationItem(d domain.ReconciliationItem) models.ReconciliationItem {
	m := models.ReconciliationItem{
		ItemID:           d.ItemID,
		ReconciliationID: d.ReconciliationID,
		BankLineID:       d.BankLine.LineID,
		BankDate:         d.BankLine.Date,
		BankAmount:       d.BankLine.Amount,
		BankDescription:  d.BankLine.Description,
		BankReference:    d.BankLine.Reference,
		Status:           string(d.Status),
		Difference:       d.Difference,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if b := d.BookTransaction; b != nil {
		m.BookTxnID = &b.TransactionID
		m.BookDate = &b.Date
		amount := b.Amount
		m.BookAmount = &amount
		m.BookDescription = &b.Description
		m.BookEntryID = &b.EntryID
	}
	return m
}

// ToDomainReconciliationItem rebuilds a domain ReconciliationItem from a row.
func ToDomainReconciliationItem(m models.ReconciliationItem) domain.ReconciliationItem {
	d := domain.ReconciliationItem{
		ItemID:           m.ItemID,
		ReconciliationID: m.ReconciliationID,
		BankLine: domain.BankStatementLine{
			LineID:      m.BankLineID,
			Date:        m.BankDate,
			Amount:      m.BankAmount,
			Description: m.BankDescription,
			Reference:   m.BankReference,
		},
		Status:      domain.ReconciliationItemStatus(m.Status),
		Difference:  m.Difference,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.BookTxnID != nil {
		book := domain.BookTransaction{TransactionID: *m.BookTxnID}
		if m.BookDate != nil {
			book.Date = *m.BookDate
		}
		if m.BookAmount != nil {
			book.Amount = *m.BookAmount
		} else {
			book.Amount = decimal.Zero
		}
		if m.BookDescription != nil {
			book.Description = *m.BookDescription
		}
		if m.BookEntryID != nil {
			book.EntryID = *m.BookEntryID
		}
		d.BookTransaction = &book
	}
	return d
}

// ToDomainReconciliationItemSlice converts a slice of rows to domain items
func ToDomainReconciliationItemSlice(ms []models.ReconciliationItem) []domain.ReconciliationItem {
	ds := make([]domain.ReconciliationItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReconciliationItem(m)
	}
	return ds
}
