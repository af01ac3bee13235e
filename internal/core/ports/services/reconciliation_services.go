package services

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
)

// ReconciliationSvcFacade exposes bank reconciliation operations.
type ReconciliationSvcFacade interface {
	// CreateReconciliation starts a run and auto-matches bank lines against
	// book transactions by amount and date window.
	CreateReconciliation(ctx context.Context, organizationID string, req dto.CreateReconciliationRequest, creatorUserID string) (*domain.BankReconciliation, error)

	// GetReconciliationByID retrieves a run with its items.
	GetReconciliationByID(ctx context.Context, organizationID, reconciliationID string) (*domain.BankReconciliation, error)

	// MatchItem manually pairs an unmatched item with a book transaction.
	MatchItem(ctx context.Context, organizationID, reconciliationID, itemID string, req dto.MatchItemRequest, userID string) (*domain.BankReconciliation, error)

	// ConfirmReconciled settles a matched item. A non-zero difference is
	// rejected with *apperrors.ReconciliationMismatchError unless override
	// is set. Confirmation is guarded by the banking period lock.
	ConfirmReconciled(ctx context.Context, organizationID, reconciliationID, itemID string, override bool, userID string) (*domain.BankReconciliation, error)
}
