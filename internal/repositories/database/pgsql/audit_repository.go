package pgsql

import (
	"context"
	"strconv"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/Triostacksoftware/robobooks-ledger/internal/models"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertAuditRecordQuery = `
	INSERT INTO audit_records (
		record_id, organization_id, actor_id, action, entity_type, entity_id,
		before_state, after_state, severity, recorded_at, retention_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// insertAuditRecordTx appends one audit record using the caller's transaction
// so the record lands atomically with the mutation it describes.
func insertAuditRecordTx(ctx context.Context, tx pgx.Tx, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := tx.Exec(ctx, insertAuditRecordQuery,
		m.RecordID,
		m.OrganizationID,
		m.ActorID,
		m.Action,
		m.EntityType,
		m.EntityID,
		m.Before,
		m.After,
		m.Severity,
		m.RecordedAt,
		m.RetentionDate,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit record "+m.RecordID, err)
	}
	return nil
}

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveRecord appends a standalone audit record outside any mutation tx.
func (r *PgxAuditRepository) SaveRecord(ctx context.Context, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := r.Pool.Exec(ctx, insertAuditRecordQuery,
		m.RecordID,
		m.OrganizationID,
		m.ActorID,
		m.Action,
		m.EntityType,
		m.EntityID,
		m.Before,
		m.After,
		m.Severity,
		m.RecordedAt,
		m.RetentionDate,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit record "+m.RecordID, err)
	}
	return nil
}

// ListRecords retrieves a filtered page of the trail, newest first.
func (r *PgxAuditRepository) ListRecords(ctx context.Context, organizationID string, filter portsrepo.AuditRecordFilter, limit, offset int) ([]domain.AuditRecord, error) {
	query := `
		SELECT record_id, organization_id, actor_id, action, entity_type, entity_id,
		       before_state, after_state, severity, recorded_at, retention_date
		FROM audit_records
		WHERE organization_id = $1
	`
	args := []interface{}{organizationID}

	if filter.EntityType != "" {
		args = append(args, filter.EntityType)
		query += " AND entity_type = $" + strconv.Itoa(len(args))
	}
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		query += " AND entity_id = $" + strconv.Itoa(len(args))
	}
	if filter.ActorID != "" {
		args = append(args, filter.ActorID)
		query += " AND actor_id = $" + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += " AND recorded_at >= $" + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += " AND recorded_at < $" + strconv.Itoa(len(args))
	}

	args = append(args, limit)
	query += " ORDER BY recorded_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit records for organization "+organizationID, err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		var m models.AuditRecord
		if err := rows.Scan(
			&m.RecordID,
			&m.OrganizationID,
			&m.ActorID,
			&m.Action,
			&m.EntityType,
			&m.EntityID,
			&m.Before,
			&m.After,
			&m.Severity,
			&m.RecordedAt,
			&m.RetentionDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit record row", err)
		}
		records = append(records, mapping.ToDomainAuditRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit record rows", err)
	}
	return records, nil
}
