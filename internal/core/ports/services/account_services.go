package services

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// AccountReaderSvc defines read operations on the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts lists accounts, optionally restricted to one class or to active accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)

	// ResolveAccounts loads the given accounts, keyed by ID. Unknown IDs are absent.
	ResolveAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
}

// AccountWriterSvc defines write operations on the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount adds an account to the chart.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount changes an account's label, description or active flag.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// SeedDefaultChart inserts the SYSCOHADA accounts that do not exist yet and returns how many were added.
	SeedDefaultChart(ctx context.Context, userID string) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
