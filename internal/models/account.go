package models

// Account is the database representation of a chart-of-accounts entry
// mirrored for line item validation.
type Account struct {
	AccountID      string `json:"accountID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currencyCode"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
