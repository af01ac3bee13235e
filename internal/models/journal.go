package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of a journal entry header.
type JournalEntry struct {
	EntryID          string          `json:"entryID"` // Primary key (UUID)
	OrganizationID   string          `json:"organizationID"`
	EntryNumber      string          `json:"entryNumber"`
	EntryDate        time.Time       `json:"entryDate"`
	Description      string          `json:"description"`
	SourceKind       string          `json:"sourceKind"`
	SourceRef        string          `json:"sourceRef"`
	Status           string          `json:"status"`
	CurrencyCode     string          `json:"currencyCode"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	OriginalEntryID  *string         `json:"originalEntryID"`
	ReversingEntryID *string         `json:"reversingEntryID"`
	AuditFields
}

// LineItem is the database representation of one journal entry leg.
type LineItem struct {
	LineItemID   string          `json:"lineItemID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Notes        string          `json:"notes"`
	AuditFields
}
