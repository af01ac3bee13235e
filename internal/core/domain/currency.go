package domain

import (
	"strings"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CurrencyCode is a member of the closed set of supported ISO-4217 codes.
// Construction goes through ParseCurrency so an unknown code never enters
// the domain.
type CurrencyCode string

type currencyInfo struct {
	Name       string
	Symbol     string
	MinorUnits int32
}

var supportedCurrencies = map[CurrencyCode]currencyInfo{
	"AED": {"UAE Dirham", "د.إ", 2},
	"AUD": {"Australian Dollar", "A$", 2},
	"BHD": {"Bahraini Dinar", ".د.ب", 3},
	"CAD": {"Canadian Dollar", "C$", 2},
	"CHF": {"Swiss Franc", "CHF", 2},
	"CNY": {"Chinese Yuan", "¥", 2},
	"EUR": {"Euro", "€", 2},
	"GBP": {"Pound Sterling", "£", 2},
	"HKD": {"Hong Kong Dollar", "HK$", 2},
	"IDR": {"Indonesian Rupiah", "Rp", 2},
	"INR": {"Indian Rupee", "₹", 2},
	"JPY": {"Japanese Yen", "¥", 0},
	"KWD": {"Kuwaiti Dinar", "د.ك", 3},
	"LKR": {"Sri Lankan Rupee", "රු", 2},
	"MYR": {"Malaysian Ringgit", "RM", 2},
	"NPR": {"Nepalese Rupee", "रू", 2},
	"NZD": {"New Zealand Dollar", "NZ$", 2},
	"OMR": {"Omani Rial", "ر.ع.", 3},
	"PHP": {"Philippine Peso", "₱", 2},
	"QAR": {"Qatari Riyal", "ر.ق", 2},
	"SAR": {"Saudi Riyal", "ر.س", 2},
	"SGD": {"Singapore Dollar", "S$", 2},
	"THB": {"Thai Baht", "฿", 2},
	"USD": {"US Dollar", "$", 2},
	"VND": {"Vietnamese Dong", "₫", 0},
	"ZAR": {"South African Rand", "R", 2},
}

// ParseCurrency validates and normalizes a currency code.
func ParseCurrency(code string) (CurrencyCode, error) {
	c := CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := supportedCurrencies[c]; !ok {
		return "", &apperrors.CurrencyError{Code: string(c), Reason: "unrecognized currency code"}
	}
	return c, nil
}

// MinorUnitTolerance returns one minor unit of the currency (e.g. 0.01 for
// USD, 1 for JPY). Used as the equality tolerance when matching amounts.
func (c CurrencyCode) MinorUnitTolerance() decimal.Decimal {
	info, ok := supportedCurrencies[c]
	if !ok {
		return decimal.New(1, -2)
	}
	return decimal.New(1, -info.MinorUnits)
}

// Symbol returns the display symbol for the currency, or the code itself.
func (c CurrencyCode) Symbol() string {
	if info, ok := supportedCurrencies[c]; ok {
		return info.Symbol
	}
	return string(c)
}

// Name returns the human-readable currency name.
func (c CurrencyCode) Name() string {
	if info, ok := supportedCurrencies[c]; ok {
		return info.Name
	}
	return string(c)
}

// AdjustmentType classifies the outcome of a currency revaluation.
type AdjustmentType string

const (
	AdjustmentGain    AdjustmentType = "gain"
	AdjustmentLoss    AdjustmentType = "loss"
	AdjustmentNeutral AdjustmentType = "neutral"
)

// ExchangeRate is a recorded conversion rate between two currencies.
// A rate of zero marks a pending record: storable, not usable for conversion.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	OrganizationID   string          `json:"organizationID"`
	FromCurrencyCode CurrencyCode    `json:"fromCurrencyCode"`
	ToCurrencyCode   CurrencyCode    `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// Usable reports whether the rate can be used for conversion.
func (r ExchangeRate) Usable() bool {
	return r.Rate.IsPositive()
}
