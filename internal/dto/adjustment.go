package dto

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyAdjustmentRequest revalues an account balance at a new rate.
type CreateCurrencyAdjustmentRequest struct {
	AccountID       string          `json:"accountID" binding:"required"`
	GainLossAccount string          `json:"gainLossAccount" binding:"required"`
	FromCurrency    string          `json:"fromCurrency" binding:"required,len=3"`
	ToCurrency      string          `json:"toCurrency" binding:"required,len=3"`
	OriginalAmount  decimal.Decimal `json:"originalAmount" binding:"required"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate" binding:"required"`
	EffectiveDate   time.Time       `json:"effectiveDate" binding:"required"`
}

// RejectCurrencyAdjustmentRequest carries the mandatory rejection reason.
type RejectCurrencyAdjustmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CurrencyAdjustmentResponse is the outward shape of an adjustment.
type CurrencyAdjustmentResponse struct {
	AdjustmentID    string          `json:"adjustmentID"`
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
	ApproverID      string          `json:"approverID,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	EntryID         *string         `json:"entryID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToCurrencyAdjustmentResponse converts a domain adjustment to its DTO.
func ToCurrencyAdjustmentResponse(a *domain.CurrencyAdjustment) CurrencyAdjustmentResponse {
	return CurrencyAdjustmentResponse{
		AdjustmentID:    a.AdjustmentID,
		ReferenceNumber: a.ReferenceNumber,
		AccountID:       a.AccountID,
		GainLossAccount: a.GainLossAccount,
		FromCurrency:    string(a.FromCurrency),
		ToCurrency:      string(a.ToCurrency),
		OriginalAmount:  a.OriginalAmount,
		ConvertedAmount: a.ConvertedAmount,
		ExchangeRate:    a.ExchangeRate,
		AdjustmentType:  string(a.AdjustmentType),
		Amount:          a.Amount,
		EffectiveDate:   a.EffectiveDate,
		Status:          string(a.Status),
		ApproverID:      a.ApproverID,
		ApprovedAt:      a.ApprovedAt,
		RejectionReason: a.RejectionReason,
		EntryID:         a.EntryID,
		CreatedAt:       a.CreatedAt,
		CreatedBy:       a.CreatedBy,
	}
}
