package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const exchangeRateColumns = `
	exchange_rate_id, organization_id, from_currency_code, to_currency_code,
	rate, date_effective, created_at, created_by, last_updated_at, last_updated_by
`

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rates.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate upserts the rate for a pair and effective date. Re-saving
// the same scope overwrites the rate, which is how a pending zero rate gets
// filled in later.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (organization_id, from_currency_code, to_currency_code, date_effective)
		DO UPDATE SET rate = EXCLUDED.rate,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.OrganizationID,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.Rate,
		m.DateEffective,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rate "+m.ExchangeRateID, err)
	}
	return nil
}

// FindRate retrieves the most recent rate for the pair effective on or before
// asOf. When no direct rate exists, the reverse pair is consulted and the
// usable reverse rate is inverted.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, organizationID string, from, to domain.CurrencyCode, asOf time.Time) (*domain.ExchangeRate, error) {
	direct, err := r.findPairRate(ctx, organizationID, string(from), string(to), asOf)
	if err == nil {
		return direct, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	reverse, err := r.findPairRate(ctx, organizationID, string(to), string(from), asOf)
	if err != nil {
		return nil, err
	}
	if !reverse.Usable() {
		return nil, apperrors.ErrNotFound
	}

	inverted := *reverse
	inverted.FromCurrencyCode = from
	inverted.ToCurrencyCode = to
	inverted.Rate = decimal.NewFromInt(1).Div(reverse.Rate)
	return &inverted, nil
}

func (r *PgxExchangeRateRepository) findPairRate(ctx context.Context, organizationID, from, to string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE organization_id = $1 AND from_currency_code = $2 AND to_currency_code = $3
		  AND date_effective <= $4
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, organizationID, from, to, asOf).Scan(
		&m.ExchangeRateID,
		&m.OrganizationID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.DateEffective,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate for pair "+from+"/"+to, err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListRates retrieves recorded rates for an organization, newest first.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, organizationID string, limit, offset int) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE organization_id = $1
		ORDER BY date_effective DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchange rates for organization "+organizationID, err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(
			&m.ExchangeRateID,
			&m.OrganizationID,
			&m.FromCurrencyCode,
			&m.ToCurrencyCode,
			&m.Rate,
			&m.DateEffective,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate row", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rate rows", err)
	}
	return rates, nil
}
