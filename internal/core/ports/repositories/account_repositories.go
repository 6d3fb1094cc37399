package repositories

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its SYSCOHADA number.
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Unknown IDs are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts lists accounts ordered by number. A zero class lists every class.
	ListAccounts(ctx context.Context, class domain.AccountClass, activeOnly bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccountsIfMissing inserts accounts whose number is not taken yet and returns how many were inserted.
	SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) (int, error)

	// UpdateAccount updates an existing account's label, description and active flag.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
