package repositories

import (
	"context"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// ExchangeRateRepositoryFacade stores recorded conversion rates.
type ExchangeRateRepositoryFacade interface {
	// SaveExchangeRate inserts or updates the rate for a currency pair and
	// effective date. Zero-rate (pending) records are storable.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindRate retrieves the most recent rate for the pair effective on or
	// before asOf, falling back to the inverted reverse pair.
	FindRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error)

	// ListRates retrieves rates for an organization, newest first.
	ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error)
}
