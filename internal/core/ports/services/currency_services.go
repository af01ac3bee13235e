package services

import (
	"context"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
)

// CurrencySvcFacade is the conversion engine plus rate storage.
type CurrencySvcFacade interface {
	// Convert converts an amount at the given rate and classifies the
	// result against the previously recorded rate when one exists.
	Convert(ctx context.Context, organizationID string, req dto.ConvertCurrencyRequest) (*dto.ConvertCurrencyResponse, error)

	// CreateExchangeRate records a rate. Rate 0 stores a pending record.
	CreateExchangeRate(ctx context.Context, organizationID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// GetRate retrieves the most recent usable rate for a pair as of a date.
	GetRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error)

	// ListRates retrieves recorded rates, newest first.
	ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error)
}
