package dto

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest records a rate for a currency pair. A zero rate
// stores a pending record that cannot yet be used for conversion.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse is the outward shape of a recorded rate.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ConvertCurrencyRequest asks for a one-off conversion and classification.
type ConvertCurrencyRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
}

// ConvertCurrencyResponse carries the converted amount and, when a prior
// rate exists as a baseline, the gain/loss classification.
type ConvertCurrencyResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	AdjustmentType  string          `json:"adjustmentType"`
}

// ToExchangeRateResponse converts a domain rate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: string(r.FromCurrencyCode),
		ToCurrencyCode:   string(r.ToCurrencyCode),
		Rate:             r.Rate,
		DateEffective:    r.DateEffective,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
}
