package pgsql

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for mirrored account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountsByIDs retrieves accounts keyed by ID. IDs that do not exist
// are simply absent from the result; the caller decides if that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT account_id, organization_id, name, currency_code, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE organization_id = $1 AND account_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts for organization "+organizationID, err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.OrganizationID,
			&m.Name,
			&m.CurrencyCode,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		account := mapping.ToDomainAccount(m)
		accounts[account.AccountID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}
