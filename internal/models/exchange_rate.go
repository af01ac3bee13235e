package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the database representation of a recorded rate.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	OrganizationID   string          `json:"organizationID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
