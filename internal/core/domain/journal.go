package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	EntryDraft    EntryStatus = "draft"
	EntryPosted   EntryStatus = "posted"
	EntryReversed EntryStatus = "reversed"
)

// SourceKind records which document produced a journal entry.
type SourceKind string

const (
	SourceManual             SourceKind = "manual"
	SourceInvoice            SourceKind = "invoice"
	SourceBill               SourceKind = "bill"
	SourceBankTransaction    SourceKind = "bank_transaction"
	SourceCurrencyAdjustment SourceKind = "currency_adjustment"
)

// Module maps a source kind to the ledger module whose period lock governs it.
func (k SourceKind) Module() LedgerModule {
	switch k {
	case SourceInvoice:
		return ModuleSales
	case SourceBill:
		return ModulePurchases
	case SourceBankTransaction:
		return ModuleBanking
	default:
		return ModuleAccountant
	}
}

// JournalEntry represents a single, balanced financial event composed of
// multiple line items. Entries are created in draft and only become posted
// after the double-entry validation succeeds.
type JournalEntry struct {
	EntryID        string       `json:"entryID"` // Primary key (UUID)
	OrganizationID string       `json:"organizationID"`
	EntryNumber    string       `json:"entryNumber"` // Sequential, unique per organization (e.g. JE-000042)
	EntryDate      time.Time    `json:"entryDate"`
	Description    string       `json:"description"`
	SourceKind     SourceKind   `json:"sourceKind"`
	SourceRef      string       `json:"sourceRef"` // ID of the originating document, if any
	Status         EntryStatus  `json:"status"`
	CurrencyCode   CurrencyCode `json:"currencyCode"`

	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`

	// Reversal linkage. An entry that reverses another carries
	// OriginalEntryID; the reversed original carries ReversingEntryID.
	OriginalEntryID  *string `json:"originalEntryID,omitempty"`
	ReversingEntryID *string `json:"reversingEntryID,omitempty"`

	LineItems []LineItem `json:"lineItems,omitempty"`
	AuditFields
}

// LineItem is one leg of a journal entry, affecting a single account.
// Exactly one of Debit or Credit is positive on a well-formed line.
type LineItem struct {
	LineItemID   string          `json:"lineItemID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode CurrencyCode    `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate to the organization base currency
	BaseAmount   decimal.Decimal `json:"baseAmount"`   // Debit or credit expressed in base currency
	Notes        string          `json:"notes"`
	AuditFields
}

// Mirrored returns the compensating line for a reversal: debit and credit
// swapped, everything else preserved.
func (l LineItem) Mirrored() LineItem {
	m := l
	m.Debit, m.Credit = l.Credit, l.Debit
	return m
}
