package pgsql

import (
	"context"
	"errors"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lockColumns = `
	lock_id, organization_id, module, status, lock_date, reason,
	partial_unlock_from, partial_unlock_to, partial_unlock_reason,
	created_at, created_by, last_updated_at, last_updated_by
`

type PgxLockRepository struct {
	BaseRepository
}

// newPgxLockRepository creates a new repository for transaction locks.
func newPgxLockRepository(pool *pgxpool.Pool) portsrepo.LockRepositoryFacade {
	return &PgxLockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LockRepositoryFacade = (*PgxLockRepository)(nil)

func scanLock(row pgx.Row) (*domain.TransactionLock, error) {
	var m models.TransactionLock
	err := row.Scan(
		&m.LockID,
		&m.OrganizationID,
		&m.Module,
		&m.Status,
		&m.LockDate,
		&m.Reason,
		&m.PartialUnlockFrom,
		&m.PartialUnlockTo,
		&m.PartialUnlockReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction lock row", err)
	}
	lock := mapping.ToDomainTransactionLock(m)
	return &lock, nil
}

// FindActiveLock returns the active lock for the module, if any.
func (r *PgxLockRepository) FindActiveLock(ctx context.Context, organizationID string, module domain.LedgerModule) (*domain.TransactionLock, error) {
	query := `
		SELECT ` + lockColumns + `
		FROM transaction_locks
		WHERE organization_id = $1 AND module = $2 AND status <> 'unlocked';
	`
	return scanLock(r.Pool.QueryRow(ctx, query, organizationID, string(module)))
}

// ListActiveLocks returns all active locks for the organization.
func (r *PgxLockRepository) ListActiveLocks(ctx context.Context, organizationID string) ([]domain.TransactionLock, error) {
	query := `
		SELECT ` + lockColumns + `
		FROM transaction_locks
		WHERE organization_id = $1 AND status <> 'unlocked'
		ORDER BY module;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active locks for organization "+organizationID, err)
	}
	defer rows.Close()

	locks := []domain.TransactionLock{}
	for rows.Next() {
		var m models.TransactionLock
		if err := rows.Scan(
			&m.LockID,
			&m.OrganizationID,
			&m.Module,
			&m.Status,
			&m.LockDate,
			&m.Reason,
			&m.PartialUnlockFrom,
			&m.PartialUnlockTo,
			&m.PartialUnlockReason,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction lock row", err)
		}
		locks = append(locks, mapping.ToDomainTransactionLock(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction lock rows", err)
	}
	return locks, nil
}

// CreateLock inserts a new active lock. The partial unique index on
// (organization_id, module) WHERE status <> 'unlocked' makes the insert the
// existence check: of two racing calls exactly one hits 23505 and loses.
func (r *PgxLockRepository) CreateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransactionLock(lock)
	query := `
		INSERT INTO transaction_locks (` + lockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.LockID,
		m.OrganizationID,
		m.Module,
		m.Status,
		m.LockDate,
		m.Reason,
		m.PartialUnlockFrom,
		m.PartialUnlockTo,
		m.PartialUnlockReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &apperrors.DuplicateLockError{Module: m.Module}
		}
		return apperrors.NewAppError(500, "failed to insert transaction lock "+m.LockID, err)
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateLock mutates the active lock row in place.
func (r *PgxLockRepository) UpdateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransactionLock(lock)
	query := `
		UPDATE transaction_locks
		SET status = $2,
		    lock_date = $3,
		    reason = $4,
		    partial_unlock_from = $5,
		    partial_unlock_to = $6,
		    partial_unlock_reason = $7,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE lock_id = $1 AND status <> 'unlocked';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.LockID,
		m.Status,
		m.LockDate,
		m.Reason,
		m.PartialUnlockFrom,
		m.PartialUnlockTo,
		m.PartialUnlockReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction lock "+m.LockID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeactivateLock flips the active lock back to unlocked, clearing the
// uniqueness slot so the module can be locked again later.
func (r *PgxLockRepository) DeactivateLock(ctx context.Context, lock domain.TransactionLock, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transaction_locks
		SET status = 'unlocked',
		    partial_unlock_from = NULL,
		    partial_unlock_to = NULL,
		    partial_unlock_reason = '',
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE lock_id = $1 AND status <> 'unlocked';
	`
	cmdTag, err := tx.Exec(ctx, query, lock.LockID, lock.LastUpdatedAt, lock.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate transaction lock "+lock.LockID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
