package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// pingAttempts bounds how long startup waits for a database that is still booting.
const pingAttempts = 5

// NewPgxPool creates a new PostgreSQL connection pool.
// When ping is true the pool is checked before being returned.
func NewPgxPool(ctx context.Context, databaseURL string, ping bool) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	// pgxpool.ParseConfig also honours PGHOST, PGUSER, etc. for missing parts.
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	config.ConnConfig.ConnectTimeout = 5 * time.Second
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if ping {
		backoff := retry.WithMaxRetries(pingAttempts-1, retry.NewExponential(500*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "Database not reachable yet", slog.String("error", err.Error()))
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	slog.InfoContext(ctx, "Database connection pool established", slog.Int("max_conns", int(config.MaxConns)))
	return pool, nil
}
