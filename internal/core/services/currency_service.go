package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// currencyService is the conversion engine plus exchange-rate storage.
type currencyService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewCurrencyService creates a new CurrencySvcFacade.
func NewCurrencyService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{rateRepo: rateRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) Convert(ctx context.Context, organizationID string, req dto.ConvertCurrencyRequest) (*dto.ConvertCurrencyResponse, error) {
	from, err := domain.ParseCurrency(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseCurrency(req.ToCurrency)
	if err != nil {
		return nil, err
	}
	if req.Rate.IsNegative() {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: "exchange rate must not be negative"}
	}
	if req.Rate.IsZero() {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: "exchange rate not yet available"}
	}

	converted, err := accounting.Convert(req.Amount, req.Rate)
	if err != nil {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: err.Error()}
	}

	// Classify against the value the previously recorded rate would have
	// produced. Without a recorded baseline the movement is neutral.
	adjustmentType := domain.AdjustmentNeutral
	prior, err := s.rateRepo.FindRate(ctx, organizationID, from, to, time.Now().UTC())
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up baseline rate: %w", err)
	}
	if err == nil && prior.Usable() {
		expected := req.Amount.Mul(prior.Rate)
		adjustmentType = accounting.Classify(expected, converted, to.MinorUnitTolerance())
	}

	return &dto.ConvertCurrencyResponse{
		Amount:          req.Amount,
		FromCurrency:    string(from),
		ToCurrency:      string(to),
		Rate:            req.Rate,
		ConvertedAmount: converted,
		AdjustmentType:  string(adjustmentType),
	}, nil
}

func (s *currencyService) CreateExchangeRate(ctx context.Context, organizationID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from, err := domain.ParseCurrency(req.FromCurrencyCode)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseCurrency(req.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	// Negative rates are meaningless; zero marks a pending record, which is
	// storable but rejected at conversion time.
	if req.Rate.IsNegative() {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: "exchange rate must not be negative"}
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		OrganizationID:   organizationID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	logger.Info("Exchange rate recorded",
		slog.String("from", string(from)), slog.String("to", string(to)),
		slog.String("rate", req.Rate.String()))
	return &rate, nil
}

func (s *currencyService) GetRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error) {
	if from == to {
		return &domain.ExchangeRate{
			OrganizationID:   organizationID,
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			DateEffective:    asOf,
		}, nil
	}
	rate, err := s.rateRepo.FindRate(ctx, organizationID, from, to, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to find exchange rate %s/%s: %w", from, to, err)
	}
	if !rate.Usable() {
		return nil, &apperrors.CurrencyError{Code: string(from), Reason: "exchange rate not yet available"}
	}
	return rate, nil
}

func (s *currencyService) ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 20
	}
	rates, err := s.rateRepo.ListRates(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}
