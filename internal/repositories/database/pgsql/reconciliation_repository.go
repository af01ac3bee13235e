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
	"github.com/jackc/pgx/v5/pgxpool"
)

const reconciliationColumns = `
	reconciliation_id, organization_id, account_id, bank_balance, book_balance,
	difference, status, start_date, end_date,
	created_at, created_by, last_updated_at, last_updated_by
`

const reconciliationItemColumns = `
	item_id, reconciliation_id, bank_line_id, bank_date, bank_amount,
	bank_description, bank_reference, book_txn_id, book_date, book_amount,
	book_description, book_entry_id, status, difference,
	created_at, created_by, last_updated_at, last_updated_by
`

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for reconciliation runs.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

// SaveReconciliation persists a new run, its items and the creation audit
// record in one transaction.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.BankReconciliation, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBankReconciliation(rec)
	headerQuery := `
		INSERT INTO bank_reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.ReconciliationID,
		m.OrganizationID,
		m.AccountID,
		m.BankBalance,
		m.BookBalance,
		m.Difference,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert reconciliation "+m.ReconciliationID, err)
	}

	itemQuery := `
		INSERT INTO reconciliation_items (` + reconciliationItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	batch := &pgx.Batch{}
	for _, item := range rec.Items {
		im := mapping.ToModelReconciliationItem(item)
		batch.Queue(itemQuery,
			im.ItemID,
			im.ReconciliationID,
			im.BankLineID,
			im.BankDate,
			im.BankAmount,
			im.BankDescription,
			im.BankReference,
			im.BookTxnID,
			im.BookDate,
			im.BookAmount,
			im.BookDescription,
			im.BookEntryID,
			im.Status,
			im.Difference,
			im.CreatedAt,
			im.CreatedBy,
			im.LastUpdatedAt,
			im.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for reconciliation "+m.ReconciliationID, err)
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateItem applies an item mutation under a row lock on the parent run, so
// concurrent edits to the same run serialize. The parent difference is
// recomputed inside the transaction as the sum of all non-reconciled item
// differences, which keeps the invariant even if two items change back to back.
func (r *PgxReconciliationRepository) UpdateItem(ctx context.Context, reconciliationID string, item domain.ReconciliationItem, parentStatus domain.ReconciliationStatus, audit domain.AuditRecord) (*domain.BankReconciliation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT reconciliation_id FROM bank_reconciliations WHERE reconciliation_id = $1 FOR UPDATE;`
	var lockedID string
	if err := tx.QueryRow(ctx, lockQuery, reconciliationID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock reconciliation "+reconciliationID, err)
	}

	im := mapping.ToModelReconciliationItem(item)
	itemQuery := `
		UPDATE reconciliation_items
		SET book_txn_id = $3,
		    book_date = $4,
		    book_amount = $5,
		    book_description = $6,
		    book_entry_id = $7,
		    status = $8,
		    difference = $9,
		    last_updated_at = $10,
		    last_updated_by = $11
		WHERE item_id = $1 AND reconciliation_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, itemQuery,
		im.ItemID,
		reconciliationID,
		im.BookTxnID,
		im.BookDate,
		im.BookAmount,
		im.BookDescription,
		im.BookEntryID,
		im.Status,
		im.Difference,
		im.LastUpdatedAt,
		im.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update reconciliation item "+im.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	parentQuery := `
		UPDATE bank_reconciliations
		SET difference = (
			SELECT COALESCE(SUM(difference), 0)
			FROM reconciliation_items
			WHERE reconciliation_id = $1 AND status <> 'reconciled'
		),
		    status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE reconciliation_id = $1;
	`
	_, err = tx.Exec(ctx, parentQuery, reconciliationID, string(parentStatus), im.LastUpdatedAt, im.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update reconciliation "+reconciliationID, err)
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return nil, err
	}

	rec, err := r.findReconciliationTx(ctx, tx, reconciliationID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindReconciliationByID retrieves a run with its items.
func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	return r.findReconciliation(ctx, r.Pool, reconciliationID)
}

func (r *PgxReconciliationRepository) findReconciliationTx(ctx context.Context, tx pgx.Tx, reconciliationID string) (*domain.BankReconciliation, error) {
	return r.findReconciliation(ctx, tx, reconciliationID)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxReconciliationRepository) findReconciliation(ctx context.Context, q querier, reconciliationID string) (*domain.BankReconciliation, error) {
	headerQuery := `
		SELECT ` + reconciliationColumns + `
		FROM bank_reconciliations
		WHERE reconciliation_id = $1;
	`
	var m models.BankReconciliation
	err := q.QueryRow(ctx, headerQuery, reconciliationID).Scan(
		&m.ReconciliationID,
		&m.OrganizationID,
		&m.AccountID,
		&m.BankBalance,
		&m.BookBalance,
		&m.Difference,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reconciliation by ID "+reconciliationID, err)
	}

	itemQuery := `
		SELECT ` + reconciliationItemColumns + `
		FROM reconciliation_items
		WHERE reconciliation_id = $1
		ORDER BY bank_date, item_id;
	`
	rows, err := q.Query(ctx, itemQuery, reconciliationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for reconciliation "+reconciliationID, err)
	}
	defer rows.Close()

	items := []models.ReconciliationItem{}
	for rows.Next() {
		var im models.ReconciliationItem
		if err := rows.Scan(
			&im.ItemID,
			&im.ReconciliationID,
			&im.BankLineID,
			&im.BankDate,
			&im.BankAmount,
			&im.BankDescription,
			&im.BankReference,
			&im.BookTxnID,
			&im.BookDate,
			&im.BookAmount,
			&im.BookDescription,
			&im.BookEntryID,
			&im.Status,
			&im.Difference,
			&im.CreatedAt,
			&im.CreatedBy,
			&im.LastUpdatedAt,
			&im.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation item row", err)
		}
		items = append(items, im)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reconciliation item rows", err)
	}

	rec := mapping.ToDomainBankReconciliation(m)
	rec.Items = mapping.ToDomainReconciliationItemSlice(items)
	return &rec, nil
}
