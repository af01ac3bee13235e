package services

// ServiceContainer bundles the service facades for injection into the
// transport layer.
type ServiceContainer struct {
	Journal        JournalSvcFacade
	Adjustment     AdjustmentSvcFacade
	Lock           LockSvcFacade
	Reconciliation ReconciliationSvcFacade
	Currency       CurrencySvcFacade
	Sequence       SequenceSvcFacade
	Audit          AuditSvcFacade
	Account        AccountSvcFacade
}
