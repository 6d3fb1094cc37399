package services

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// EntryReaderSvc defines read operations for accounting entries
type EntryReaderSvc interface {
	// GetEntry retrieves a specific entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error)

	// SearchEntries returns a page of entries matching the request filters.
	SearchEntries(ctx context.Context, req dto.SearchEntriesRequest) (*domain.EntryPage, error)
}

// EntryWriterSvc defines write operations for accounting entries
type EntryWriterSvc interface {
	// CheckEntry runs every check CreateEntry would, without persisting.
	CheckEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.AccountingEntry, error)

	// CreateEntry validates and persists a new draft entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.AccountingEntry, error)

	// UpdateEntry replaces the content of a draft entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.CreateEntryRequest, userID string) (*domain.AccountingEntry, error)
}

// EntryWorkflowSvc defines the lifecycle transitions of an entry
type EntryWorkflowSvc interface {
	// PostEntry moves a draft entry to posted.
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error)

	// ApproveEntry moves a posted entry to validated.
	ApproveEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error)

	// CancelEntry cancels a draft or posted entry.
	CancelEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntryWorkflowSvc
}
