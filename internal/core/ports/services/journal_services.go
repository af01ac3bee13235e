package services

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/dto"
)

// JournalSvcFacade exposes journal entry operations.
type JournalSvcFacade interface {
	// CreateEntry creates a draft entry with a fresh sequential entry number.
	CreateEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its line items.
	GetEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries, newest first.
	ListEntries(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error)

	// PostEntry validates a draft and transitions it to posted. When the
	// line items are invalid it returns *accounting.ValidationFailedError
	// with the full rule report and mutates nothing.
	PostEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error)

	// ReverseEntry posts a mirrored compensating entry and flips the
	// original to reversed. The original is never deleted.
	ReverseEntry(ctx context.Context, organizationID, entryID, reason, userID string) (*domain.JournalEntry, error)
}
