package pgsql

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy)
	return u, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "user "+user.Username)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1;`, userID))
	if err != nil {
		return nil, mapPgError(err, "user "+userID)
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username))
	if err != nil {
		return nil, mapPgError(err, "user "+username)
	}
	return &u, nil
}
