package services

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
)

// AdjustmentSvcFacade exposes currency adjustment operations.
type AdjustmentSvcFacade interface {
	// CreateAdjustment converts and classifies the amount at the new rate
	// and stores a pending adjustment with a fresh reference number.
	CreateAdjustment(ctx context.Context, organizationID string, req dto.CreateCurrencyAdjustmentRequest, creatorUserID string) (*domain.CurrencyAdjustment, error)

	// GetAdjustmentByID retrieves an adjustment.
	GetAdjustmentByID(ctx context.Context, organizationID, adjustmentID string) (*domain.CurrencyAdjustment, error)

	// ListAdjustments retrieves a page of adjustments, newest first.
	ListAdjustments(ctx context.Context, organizationID string, limit, offset int) ([]domain.CurrencyAdjustment, error)

	// ApproveAdjustment approves a pending adjustment and posts the
	// resulting gain/loss journal entry, guarded by the period lock.
	ApproveAdjustment(ctx context.Context, organizationID, adjustmentID, approverID string) (*domain.CurrencyAdjustment, error)

	// RejectAdjustment rejects a pending adjustment with a mandatory reason.
	RejectAdjustment(ctx context.Context, organizationID, adjustmentID, reason, userID string) (*domain.CurrencyAdjustment, error)
}
