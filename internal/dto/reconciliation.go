package dto

import (
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankStatementLineRequest is one bank-reported transaction.
type BankStatementLineRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
}

// BookTransactionRequest is one book-recorded transaction.
type BookTransactionRequest struct {
	TransactionID string          `json:"transactionID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	EntryID       string          `json:"entryID"`
}

// CreateReconciliationRequest starts a reconciliation run; auto-matching
// happens on creation.
type CreateReconciliationRequest struct {
	AccountID        string                     `json:"accountID" binding:"required"`
	BankBalance      decimal.Decimal            `json:"bankBalance"`
	BookBalance      decimal.Decimal            `json:"bookBalance"`
	StartDate        time.Time                  `json:"startDate" binding:"required"`
	EndDate          time.Time                  `json:"endDate" binding:"required"`
	BankLines        []BankStatementLineRequest `json:"bankTransactions" binding:"required,min=1,dive"`
	BookTransactions []BookTransactionRequest   `json:"bookTransactions" binding:"dive"`
}

// MatchItemRequest manually pairs an item with a book transaction.
type MatchItemRequest struct {
	BookTransaction BookTransactionRequest `json:"bookTransaction" binding:"required"`
}

// ConfirmItemRequest settles a matched item. Override allows confirming an
// item whose difference is non-zero.
type ConfirmItemRequest struct {
	Override bool `json:"override"`
}

// ReconciliationItemResponse is the outward shape of one item.
type ReconciliationItemResponse struct {
	ItemID          string                   `json:"itemID"`
	BankTransaction domain.BankStatementLine `json:"bankTransaction"`
	BookTransaction *domain.BookTransaction  `json:"bookTransaction,omitempty"`
	Status          string                   `json:"status"`
	Difference      decimal.Decimal          `json:"difference"`
}

// ReconciliationResponse is the outward shape of a run.
type ReconciliationResponse struct {
	ReconciliationID string                       `json:"reconciliationID"`
	AccountID        string                       `json:"accountID"`
	BankBalance      decimal.Decimal              `json:"bankBalance"`
	BookBalance      decimal.Decimal              `json:"bookBalance"`
	Difference       decimal.Decimal              `json:"difference"`
	Status           string                       `json:"status"`
	StartDate        time.Time                    `json:"startDate"`
	EndDate          time.Time                    `json:"endDate"`
	Items            []ReconciliationItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time                    `json:"createdAt"`
	CreatedBy        string                       `json:"createdBy"`
}

// ToReconciliationResponse converts a domain run to its response DTO.
func ToReconciliationResponse(r *domain.BankReconciliation) ReconciliationResponse {
	resp := ReconciliationResponse{
		ReconciliationID: r.ReconciliationID,
		AccountID:        r.AccountID,
		BankBalance:      r.BankBalance,
		BookBalance:      r.BookBalance,
		Difference:       r.Difference,
		Status:           string(r.Status),
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, ReconciliationItemResponse{
			ItemID:          it.ItemID,
			BankTransaction: it.BankLine,
			BookTransaction: it.BookTransaction,
			Status:          string(it.Status),
			Difference:      it.Difference,
		})
	}
	return resp
}
