package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentStatus is the lifecycle state of a currency adjustment.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "pending"
	AdjustmentApproved AdjustmentStatus = "approved"
	AdjustmentRejected AdjustmentStatus = "rejected"
)

// CurrencyAdjustment records a revaluation of an account balance from one
// currency to another. Adjustments are created pending and mutated only by
// an approval or rejection transition; they are never hard-deleted.
type CurrencyAdjustment struct {
	AdjustmentID    string          `json:"adjustmentID"`
	OrganizationID  string          `json:"organizationID"`
	ReferenceNumber string          `json:"referenceNumber"` // Sequential, unique per organization (e.g. CA-000007)
	AccountID       string          `json:"accountID"`
	GainLossAccount string          `json:"gainLossAccount"` // Account absorbing the gain or loss leg
	FromCurrency    CurrencyCode    `json:"fromCurrency"`
	ToCurrency      CurrencyCode    `json:"toCurrency"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	AdjustmentType  AdjustmentType  `json:"adjustmentType"`
	Amount          decimal.Decimal `json:"amount"` // Signed gain(+)/loss(-) amount
	EffectiveDate   time.Time       `json:"effectiveDate"`
	Status          AdjustmentStatus `json:"status"`
	ApproverID      string          `json:"approverID,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	EntryID         *string         `json:"entryID,omitempty"` // Journal entry posted on approval
	AuditFields
}
