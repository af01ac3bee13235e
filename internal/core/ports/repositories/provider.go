package repositories

// RepositoryProvider bundles the concrete repositories for injection into
// the service layer.
type RepositoryProvider struct {
	JournalRepo        JournalRepositoryFacade
	AdjustmentRepo     AdjustmentRepositoryFacade
	LockRepo           LockRepositoryFacade
	ReconciliationRepo ReconciliationRepositoryFacade
	SequenceRepo       SequenceRepositoryFacade
	AuditRepo          AuditRepositoryFacade
	ExchangeRateRepo   ExchangeRateRepositoryFacade
	AccountRepo        AccountRepositoryFacade
}
