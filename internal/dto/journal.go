package dto

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest is one leg of a journal entry being created.
type CreateLineItemRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Notes        string          `json:"notes"`
}

// CreateJournalEntryRequest creates a draft journal entry.
type CreateJournalEntryRequest struct {
	EntryDate    time.Time               `json:"entryDate" binding:"required"`
	Description  string                  `json:"description" binding:"required"`
	CurrencyCode string                  `json:"currencyCode" binding:"required,len=3"`
	SourceKind   string                  `json:"sourceKind"`
	SourceRef    string                  `json:"sourceRef"`
	LineItems    []CreateLineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// ReverseJournalEntryRequest carries the reason for a reversal.
type ReverseJournalEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// LineItemResponse is the outward shape of a line item.
type LineItemResponse struct {
	LineItemID   string          `json:"lineItemID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Notes        string          `json:"notes,omitempty"`
}

// JournalEntryResponse is the outward shape of a journal entry.
type JournalEntryResponse struct {
	EntryID          string             `json:"entryID"`
	EntryNumber      string             `json:"entryNumber"`
	EntryDate        time.Time          `json:"entryDate"`
	Description      string             `json:"description"`
	SourceKind       string             `json:"sourceKind"`
	SourceRef        string             `json:"sourceRef,omitempty"`
	Status           string             `json:"status"`
	CurrencyCode     string             `json:"currencyCode"`
	TotalDebit       decimal.Decimal    `json:"totalDebit"`
	TotalCredit      decimal.Decimal    `json:"totalCredit"`
	OriginalEntryID  *string            `json:"originalEntryID,omitempty"`
	ReversingEntryID *string            `json:"reversingEntryID,omitempty"`
	LineItems        []LineItemResponse `json:"lineItems,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
}

// ValidationReportResponse is returned alongside a rejected posting.
type ValidationReportResponse struct {
	IsValid bool                       `json:"isValid"`
	Errors  []accounting.RuleViolation `json:"errors,omitempty"`
}

// ToJournalEntryResponse converts a domain entry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:          e.EntryID,
		EntryNumber:      e.EntryNumber,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		SourceKind:       string(e.SourceKind),
		SourceRef:        e.SourceRef,
		Status:           string(e.Status),
		CurrencyCode:     string(e.CurrencyCode),
		TotalDebit:       e.TotalDebit,
		TotalCredit:      e.TotalCredit,
		OriginalEntryID:  e.OriginalEntryID,
		ReversingEntryID: e.ReversingEntryID,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
	for _, l := range e.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			LineItemID:   l.LineItemID,
			AccountID:    l.AccountID,
			Debit:        l.Debit,
			Credit:       l.Credit,
			CurrencyCode: string(l.CurrencyCode),
			ExchangeRate: l.ExchangeRate,
			BaseAmount:   l.BaseAmount,
			Notes:        l.Notes,
		})
	}
	return resp
}
