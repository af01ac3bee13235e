package domain_test

import (
	"testing"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.CurrencyCode
		wantErr bool
	}{
		{"USD", "USD", false},
		{"usd", "USD", false},
		{"  eur ", "EUR", false},
		{"jpy", "JPY", false},
		{"XYZ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := domain.ParseCurrency(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			var target *apperrors.CurrencyError
			assert.ErrorAs(t, err, &target)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestCurrencyCode_MinorUnitTolerance(t *testing.T) {
	assert.True(t, domain.CurrencyCode("USD").MinorUnitTolerance().Equal(decimal.RequireFromString("0.01")))
	assert.True(t, domain.CurrencyCode("JPY").MinorUnitTolerance().Equal(decimal.NewFromInt(1)))
	assert.True(t, domain.CurrencyCode("BHD").MinorUnitTolerance().Equal(decimal.RequireFromString("0.001")))
}

func TestExchangeRate_Usable(t *testing.T) {
	assert.True(t, domain.ExchangeRate{Rate: decimal.RequireFromString("0.95")}.Usable())
	assert.False(t, domain.ExchangeRate{Rate: decimal.Zero}.Usable())
	assert.False(t, domain.ExchangeRate{Rate: decimal.NewFromInt(-1)}.Usable())
}
