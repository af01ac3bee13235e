package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankReconciliation is the database representation of a reconciliation run.
type BankReconciliation struct {
	ReconciliationID string          `json:"reconciliationID"`
	OrganizationID   string          `json:"organizationID"`
	AccountID        string          `json:"accountID"`
	BankBalance      decimal.Decimal `json:"bankBalance"`
	BookBalance      decimal.Decimal `json:"bookBalance"`
	Difference       decimal.Decimal `json:"difference"`
	Status           string          `json:"status"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	AuditFields
}

// ReconciliationItem is the database representation of one bank line and its
// optional book counterpart, flattened into a single row.
type ReconciliationItem struct {
	ItemID           string          `json:"itemID"`
	ReconciliationID string          `json:"reconciliationID"`
	BankLineID       string          `json:"bankLineID"`
	BankDate         time.Time       `json:"bankDate"`
	BankAmount       decimal.Decimal `json:"bankAmount"`
	BankDescription  string          `json:"bankDescription"`
	BankReference    string          `json:"bankReference"`
	BookTxnID        *string         `json:"bookTxnID"`
	BookDate         *time.Time      `json:"bookDate"`
	BookAmount       *decimal.Decimal `json:"bookAmount"`
	BookDescription  *string         `json:"bookDescription"`
	BookEntryID      *string         `json:"bookEntryID"`
	Status           string          `json:"status"`
	Difference       decimal.Decimal `json:"difference"`
	AuditFields
}
