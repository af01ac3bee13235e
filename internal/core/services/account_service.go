package services

import (
	"context"
	"fmt"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	portsrepo "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/repositories"
	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
)

// accountService verifies chart-of-accounts references against the locally
// mirrored reference table. Account CRUD is the external catalog's job.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountSvcFacade.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) VerifyAccounts(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	unique := uniqueStrings(accountIDs)
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}

	for _, id := range unique {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if acc.OrganizationID != organizationID {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return accounts, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
