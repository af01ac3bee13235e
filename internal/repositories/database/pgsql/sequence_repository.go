package pgsql

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document counters.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// NextValue advances the counter for the (organization, kind) scope in a
// single upsert. The row lock taken by ON CONFLICT DO UPDATE serializes
// concurrent callers, so no two of them see the same value.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, organizationID string, kind domain.DocumentKind) (int64, error) {
	query := `
		INSERT INTO document_sequences (organization_id, document_kind, next_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (organization_id, document_kind)
		DO UPDATE SET next_value = document_sequences.next_value + 1
		RETURNING next_value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, organizationID, string(kind)).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance document sequence for kind "+string(kind), err)
	}
	return value, nil
}
