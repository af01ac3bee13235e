package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// SequenceRepositoryFacade owns the per-(organization, kind) document
// counters. NextValue must be a single atomic increment-and-read; counting
// existing documents is racy and forbidden.
type SequenceRepositoryFacade interface {
	// NextValue atomically advances the counter and returns the new value.
	// Concurrent callers for the same scope never observe the same value.
	NextValue(ctx context.Context, organizationID string, kind domain.DocumentKind) (int64, error)
}
