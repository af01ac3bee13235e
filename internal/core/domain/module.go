package domain

import (
	"fmt"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
)

// LedgerModule identifies the functional area a transaction belongs to.
// Period locks are scoped per (organization, module).
type LedgerModule string

const (
	ModuleSales      LedgerModule = "sales"
	ModulePurchases  LedgerModule = "purchases"
	ModuleBanking    LedgerModule = "banking"
	ModuleAccountant LedgerModule = "accountant"
)

// ParseLedgerModule validates a raw module name at the type boundary.
func ParseLedgerModule(s string) (LedgerModule, error) {
	switch LedgerModule(s) {
	case ModuleSales, ModulePurchases, ModuleBanking, ModuleAccountant:
		return LedgerModule(s), nil
	}
	return "", fmt.Errorf("%w: unknown ledger module %q", apperrors.ErrValidation, s)
}
