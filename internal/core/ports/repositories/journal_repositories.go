package repositories

import (
	"context"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entry data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLineItemsByEntryID retrieves the ordered line items of an entry.
	FindLineItemsByEntryID(ctx context.Context, entryID string) ([]domain.LineItem, error)

	// ListEntriesByOrganization retrieves a paginated list of entries for an
	// organization, newest first.
	ListEntriesByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entry data. Every
// writer method persists its audit record inside the same database
// transaction as the mutation: both land or neither does.
type JournalWriter interface {
	// SaveEntry persists a draft entry with its line items.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem, audit domain.AuditRecord) error

	// MarkPosted transitions a draft entry to posted, storing its totals.
	// Returns apperrors.ErrConflict if the entry is no longer a draft.
	MarkPosted(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error

	// SaveReversal persists the compensating entry with its mirrored lines
	// and flips the original to reversed, linking the two, atomically.
	SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.LineItem, originalEntryID string, audits []domain.AuditRecord) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
