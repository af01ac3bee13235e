package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyAdjustment is the database representation of a revaluation.
type CurrencyAdjustment struct {
	AdjustmentID    string          `json:"adjustmentID"`
	OrganizationID  string          `json:"organizationID"`
	ReferenceNumber string          `json:"referenceNumber"`
	AccountID       string          `json:"accountID"`
	GainLossAccount string          `json:"gainLossAccount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	AdjustmentType  string          `json:"adjustmentType"`
	Amount          decimal.Decimal `json:"amount"`
	EffectiveDate   time.Time       `json:"effectiveDate"`
	Status          string          `json:"status"`
	ApproverID      string          `json:"approverID"`
	ApprovedAt      *time.Time      `json:"approvedAt"`
	RejectionReason string          `json:"rejectionReason"`
	EntryID         *string         `json:"entryID"`
	AuditFields
}
