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

const adjustmentColumns = `
	adjustment_id, organization_id, reference_number, account_id, gain_loss_account,
	from_currency, to_currency, original_amount, converted_amount, exchange_rate,
	adjustment_type, amount, effective_date, status, approver_id, approved_at,
	rejection_reason, entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for currency adjustments.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

// SaveAdjustment persists a new pending adjustment with its audit record.
func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		m := mapping.ToModelCurrencyAdjustment(adj)
		query := `
			INSERT INTO currency_adjustments (` + adjustmentColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
		`
		_, err := tx.Exec(ctx, query,
			m.AdjustmentID,
			m.OrganizationID,
			m.ReferenceNumber,
			m.AccountID,
			m.GainLossAccount,
			m.FromCurrency,
			m.ToCurrency,
			m.OriginalAmount,
			m.ConvertedAmount,
			m.ExchangeRate,
			m.AdjustmentType,
			m.Amount,
			m.EffectiveDate,
			m.Status,
			m.ApproverID,
			m.ApprovedAt,
			m.RejectionReason,
			m.EntryID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert currency adjustment "+m.AdjustmentID, err)
		}
		return insertAuditRecordTx(ctx, tx, audit)
	})
}

// applyAdjustmentTransitionTx moves a pending adjustment to its decided
// status. The WHERE status = 'pending' clause lets exactly one of two racing
// decisions through; the loser gets ErrConflict.
func applyAdjustmentTransitionTx(ctx context.Context, tx pgx.Tx, m models.CurrencyAdjustment) error {
	query := `
		UPDATE currency_adjustments
		SET status = $2,
		    approver_id = $3,
		    approved_at = $4,
		    rejection_reason = $5,
		    entry_id = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE adjustment_id = $1 AND status = 'pending';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.AdjustmentID,
		m.Status,
		m.ApproverID,
		m.ApprovedAt,
		m.RejectionReason,
		m.EntryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update currency adjustment "+m.AdjustmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// UpdateAdjustmentStatus applies an approval or rejection transition.
func (r *PgxAdjustmentRepository) UpdateAdjustmentStatus(ctx context.Context, adj domain.CurrencyAdjustment, audit domain.AuditRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := applyAdjustmentTransitionTx(ctx, tx, mapping.ToModelCurrencyAdjustment(adj)); err != nil {
			return err
		}
		return insertAuditRecordTx(ctx, tx, audit)
	})
}

// ApproveWithEntry commits the approval transition and the posted gain/loss
// entry together, so the ledger never shows one without the other. entry is
// nil for a neutral adjustment.
func (r *PgxAdjustmentRepository) ApproveWithEntry(ctx context.Context, adj domain.CurrencyAdjustment, entry *domain.JournalEntry, lines []domain.LineItem, audits []domain.AuditRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := applyAdjustmentTransitionTx(ctx, tx, mapping.ToModelCurrencyAdjustment(adj)); err != nil {
			return err
		}

		if entry != nil {
			if err := insertJournalEntryTx(ctx, tx, mapping.ToModelJournalEntry(*entry)); err != nil {
				return err
			}
			batch := &pgx.Batch{}
			queueLineItems(batch, lines)
			br := tx.SendBatch(ctx, batch)
			if err := br.Close(); err != nil {
				return apperrors.NewAppError(500, "failed to execute line item batch for entry "+entry.EntryID, err)
			}
		}

		for _, audit := range audits {
			if err := insertAuditRecordTx(ctx, tx, audit); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAdjustmentByID retrieves an adjustment by its ID.
func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.CurrencyAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM currency_adjustments
		WHERE adjustment_id = $1;
	`
	var m models.CurrencyAdjustment
	err := r.Pool.QueryRow(ctx, query, adjustmentID).Scan(
		&m.AdjustmentID,
		&m.OrganizationID,
		&m.ReferenceNumber,
		&m.AccountID,
		&m.GainLossAccount,
		&m.FromCurrency,
		&m.ToCurrency,
		&m.OriginalAmount,
		&m.ConvertedAmount,
		&m.ExchangeRate,
		&m.AdjustmentType,
		&m.Amount,
		&m.EffectiveDate,
		&m.Status,
		&m.ApproverID,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.EntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency adjustment by ID "+adjustmentID, err)
	}

	adj := mapping.ToDomainCurrencyAdjustment(m)
	return &adj, nil
}

// ListAdjustmentsByOrganization retrieves a page of adjustments, newest first.
func (r *PgxAdjustmentRepository) ListAdjustmentsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.CurrencyAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM currency_adjustments
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currency adjustments for organization "+organizationID, err)
	}
	defer rows.Close()

	adjustments := []domain.CurrencyAdjustment{}
	for rows.Next() {
		var m models.CurrencyAdjustment
		if err := rows.Scan(
			&m.AdjustmentID,
			&m.OrganizationID,
			&m.ReferenceNumber,
			&m.AccountID,
			&m.GainLossAccount,
			&m.FromCurrency,
			&m.ToCurrency,
			&m.OriginalAmount,
			&m.ConvertedAmount,
			&m.ExchangeRate,
			&m.AdjustmentType,
			&m.Amount,
			&m.EffectiveDate,
			&m.Status,
			&m.ApproverID,
			&m.ApprovedAt,
			&m.RejectionReason,
			&m.EntryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency adjustment row", err)
		}
		adjustments = append(adjustments, mapping.ToDomainCurrencyAdjustment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency adjustment rows", err)
	}
	return adjustments, nil
}
