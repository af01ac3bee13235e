package pgsql

import (
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)
	adjustmentRepo := newPgxAdjustmentRepository(dbPool)
	lockRepo := newPgxLockRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalRepo:        journalRepo,
		AdjustmentRepo:     adjustmentRepo,
		LockRepo:           lockRepo,
		ReconciliationRepo: reconciliationRepo,
		SequenceRepo:       sequenceRepo,
		AuditRepo:          auditRepo,
		ExchangeRateRepo:   exchangeRateRepo,
		AccountRepo:        accountRepo,
	}
}
