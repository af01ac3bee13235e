package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// AccountRepositoryFacade reads the locally mirrored chart-of-accounts
// reference data. The authoritative account service lives outside this core.
type AccountRepositoryFacade interface {
	// FindAccountsByIDs retrieves accounts keyed by ID. Missing IDs are
	// simply absent from the map.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)
}
