package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the lifecycle state of a bank reconciliation run.
type ReconciliationStatus string

const (
	ReconciliationDraft      ReconciliationStatus = "draft"
	ReconciliationInProgress ReconciliationStatus = "in_progress"
	ReconciliationCompleted  ReconciliationStatus = "completed"
)

// ReconciliationItemStatus is the state of a single bank line in a run.
type ReconciliationItemStatus string

const (
	ItemUnmatched  ReconciliationItemStatus = "unmatched"
	ItemMatched    ReconciliationItemStatus = "matched"
	ItemReconciled ReconciliationItemStatus = "reconciled"
)

// BankStatementLine is a transaction reported by the bank for the period.
type BankStatementLine struct {
	LineID      string          `json:"lineID"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
}

// BookTransaction is a transaction recorded in the books for the same
// account and period.
type BookTransaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	EntryID       string          `json:"entryID"` // Journal entry the transaction belongs to
}

// BankReconciliation pairs bank-reported transactions against book-recorded
// ones for an account over a period. Its Difference always equals the signed
// sum of the differences of all items not yet reconciled.
type BankReconciliation struct {
	ReconciliationID string               `json:"reconciliationID"`
	OrganizationID   string               `json:"organizationID"`
	AccountID        string               `json:"accountID"`
	BankBalance      decimal.Decimal      `json:"bankBalance"`
	BookBalance      decimal.Decimal      `json:"bookBalance"`
	Difference       decimal.Decimal      `json:"difference"`
	Status           ReconciliationStatus `json:"status"`
	StartDate        time.Time            `json:"startDate"`
	EndDate          time.Time            `json:"endDate"`
	Items            []ReconciliationItem `json:"items,omitempty"`
	AuditFields
}

// ReconciliationItem is one bank line and its (possibly absent) book
// counterpart. Difference = bank amount - book amount; an unmatched item
// carries its full bank amount.
type ReconciliationItem struct {
	ItemID           string                   `json:"itemID"`
	ReconciliationID string                   `json:"reconciliationID"`
	BankLine         BankStatementLine        `json:"bankTransaction"`
	BookTransaction  *BookTransaction         `json:"bookTransaction,omitempty"`
	Status           ReconciliationItemStatus `json:"status"`
	Difference       decimal.Decimal          `json:"difference"`
	AuditFields
}

// ItemDifference computes the signed difference for a bank line paired with
// an optional book transaction.
func ItemDifference(bank BankStatementLine, book *BookTransaction) decimal.Decimal {
	if book == nil {
		return bank.Amount
	}
	return bank.Amount.Sub(book.Amount)
}

// OutstandingDifference sums the differences of all items that are not yet
// reconciled. Reconciled items are settled and drop out of the sum.
func OutstandingDifference(items []ReconciliationItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Status != ItemReconciled {
			total = total.Add(it.Difference)
		}
	}
	return total
}

// CanComplete reports whether the run may transition to completed: the
// outstanding difference is within tolerance and no unmatched items remain.
func CanComplete(items []ReconciliationItem, tolerance decimal.Decimal) bool {
	for _, it := range items {
		if it.Status == ItemUnmatched {
			return false
		}
	}
	return OutstandingDifference(items).Abs().LessThan(tolerance)
}
