package domain

// Account is reference data mirrored from the chart-of-accounts service.
// The ledger core only verifies that account references exist, are active,
// and carry the expected currency; account management lives elsewhere.
type Account struct {
	AccountID      string       `json:"accountID"`
	OrganizationID string       `json:"organizationID"`
	Name           string       `json:"name"`
	CurrencyCode   CurrencyCode `json:"currencyCode"`
	IsActive       bool         `json:"isActive"`
	AuditFields
}
