package repositories

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// EntryReader defines read operations for accounting entries
type EntryReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error)

	// SearchEntries returns one page of entries matching the filter, lines included.
	SearchEntries(ctx context.Context, filter domain.EntryFilter) (*domain.EntryPage, error)
}

// EntryWriter defines write operations for accounting entries
type EntryWriter interface {
	// SaveEntry persists a new entry and its lines atomically and sets entry.Number.
	SaveEntry(ctx context.Context, entry *domain.AccountingEntry) error

	// ReplaceEntry rewrites a draft entry's header and lines atomically.
	// It fails with apperrors.ErrConflict when the entry is no longer a draft.
	ReplaceEntry(ctx context.Context, entry domain.AccountingEntry) error

	// UpdateEntryStatus persists a status transition only if the stored status is still from.
	// It fails with apperrors.ErrConflict when another writer changed the status first.
	UpdateEntryStatus(ctx context.Context, entry domain.AccountingEntry, from domain.EntryStatus) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
