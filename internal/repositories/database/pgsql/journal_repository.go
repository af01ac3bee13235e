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

const journalColumns = `
	entry_id, organization_id, entry_number, entry_date, description,
	source_kind, source_ref, status, currency_code, total_debit, total_credit,
	original_entry_id, reversing_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

const insertLineItemQuery = `
	INSERT INTO line_items (
		line_item_id, entry_id, account_id, debit, credit, currency_code,
		exchange_rate, base_amount, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func insertJournalEntryTx(ctx context.Context, tx pgx.Tx, m models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.OrganizationID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.SourceKind,
		m.SourceRef,
		m.Status,
		m.CurrencyCode,
		m.TotalDebit,
		m.TotalCredit,
		m.OriginalEntryID,
		m.ReversingEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	return nil
}

func queueLineItems(batch *pgx.Batch, lines []domain.LineItem) {
	for _, line := range lines {
		m := mapping.ToModelLineItem(line)
		batch.Queue(insertLineItemQuery,
			m.LineItemID,
			m.EntryID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.CurrencyCode,
			m.ExchangeRate,
			m.BaseAmount,
			m.Notes,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveEntry persists a draft entry, its line items and the creation audit
// record in one transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournalEntryTx(ctx, tx, mapping.ToModelJournalEntry(entry)); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line item batch for entry "+entry.EntryID, err)
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkPosted transitions a draft to posted. The WHERE status = 'draft'
// clause makes the transition single-shot: a concurrent post or reversal
// leaves zero rows affected and the call fails with ErrConflict.
func (r *PgxJournalRepository) MarkPosted(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET status = 'posted',
		    total_debit = $2,
		    total_credit = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE entry_id = $1 AND status = 'draft';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.TotalDebit,
		m.TotalCredit,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal entry "+m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveReversal persists the compensating entry and flips the original to
// reversed atomically, so the ledger never shows one without the other.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.LineItem, originalEntryID string, audits []domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournalEntryTx(ctx, tx, mapping.ToModelJournalEntry(reversing)); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line item batch for entry "+reversing.EntryID, err)
	}

	flipQuery := `
		UPDATE journal_entries
		SET status = 'reversed',
		    reversing_entry_id = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE entry_id = $1 AND status = 'posted';
	`
	cmdTag, err := tx.Exec(ctx, flipQuery,
		originalEntryID,
		reversing.EntryID,
		reversing.LastUpdatedAt,
		reversing.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal entry "+originalEntryID+" reversed", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	for _, audit := range audits {
		if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.SourceKind,
		&m.SourceRef,
		&m.Status,
		&m.CurrencyCode,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.OriginalEntryID,
		&m.ReversingEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLineItemsByEntryID retrieves the line items of an entry in insertion order.
func (r *PgxJournalRepository) FindLineItemsByEntryID(ctx context.Context, entryID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, entry_id, account_id, debit, credit, currency_code,
		       exchange_rate, base_amount, notes,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM line_items
		WHERE entry_id = $1
		ORDER BY line_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.LineItem{}
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.BaseAmount,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for entry "+entryID, err)
	}
	return mapping.ToDomainLineItemSlice(lines), nil
}

// ListEntriesByOrganization retrieves a page of entries, newest first.
func (r *PgxJournalRepository) ListEntriesByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE organization_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries for organization "+organizationID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.OrganizationID,
			&m.EntryNumber,
			&m.EntryDate,
			&m.Description,
			&m.SourceKind,
			&m.SourceRef,
			&m.Status,
			&m.CurrencyCode,
			&m.TotalDebit,
			&m.TotalCredit,
			&m.OriginalEntryID,
			&m.ReversingEntryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row for organization "+organizationID, err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows for organization "+organizationID, err)
	}
	return entries, nil
}
