package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, number, label, class, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	var class int
	err := row.Scan(
		&acc.AccountID,
		&acc.Number,
		&acc.Label,
		&class,
		&acc.Description,
		&acc.IsActive,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	acc.Class = domain.AccountClass(class)
	return acc, err
}

func accountArgs(a domain.Account) []any {
	return []any{
		a.AccountID,
		a.Number,
		a.Label,
		int(a.Class),
		a.Description,
		a.IsActive,
		a.CreatedAt,
		a.CreatedBy,
		a.LastUpdatedAt,
		a.LastUpdatedBy,
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	if _, err := r.Pool.Exec(ctx, query, accountArgs(account)...); err != nil {
		return mapPgError(err, fmt.Sprintf("account %s", account.Number))
	}
	return nil
}

// SaveAccountsIfMissing inserts the accounts in one batch, skipping numbers that already exist.
func (r *PgxAccountRepository) SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) (int, error) {
	if len(accounts) == 0 {
		return 0, nil
	}
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (number) DO NOTHING;`

	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(query, accountArgs(a)...)
	}

	inserted := 0
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for _, a := range accounts {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return mapPgError(err, fmt.Sprintf("failed to seed account %s", a.Number))
			}
			inserted += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// UpdateAccount updates an existing account's label, description and active flag.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET label = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Label,
		account.Description,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update account %s", account.AccountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("account %s", accountID))
	}
	return &acc, nil
}

// FindAccountByNumber retrieves an account by its SYSCOHADA number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("account number %s", number))
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts in one round trip.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1::uuid[]);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query accounts by IDs")
	}
	defer rows.Close()

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan account")
		}
		result[acc.AccountID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate accounts")
	}
	return result, nil
}

// ListAccounts lists accounts ordered by number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, class domain.AccountClass, activeOnly bool) ([]domain.Account, error) {
	var w whereBuilder
	if class != 0 {
		w.add("class = ?", int(class))
	}
	if activeOnly {
		w.add("is_active")
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts`+w.sql()+` ORDER BY number;`, w.args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan account")
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate accounts")
	}
	return accounts, nil
}
