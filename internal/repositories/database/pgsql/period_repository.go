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

const periodColumns = `period, start_date, end_date, closed_at, closed_by, notes`

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (domain.FiscalPeriod, error) {
	var p domain.FiscalPeriod
	err := row.Scan(&p.Period, &p.StartDate, &p.EndDate, &p.ClosedAt, &p.ClosedBy, &p.Notes)
	return p, err
}

func (r *PgxPeriodRepository) FindPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error) {
	p, err := scanPeriod(r.Pool.QueryRow(ctx, `SELECT `+periodColumns+` FROM fiscal_periods WHERE period = $1;`, period))
	if err != nil {
		return nil, mapPgError(err, "period "+period)
	}
	return &p, nil
}

func (r *PgxPeriodRepository) ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+periodColumns+` FROM fiscal_periods ORDER BY period DESC;`)
	if err != nil {
		return nil, mapPgError(err, "failed to list periods")
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan period")
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate periods")
	}
	return periods, nil
}

// SaveClosedPeriod inserts the closing row first so the entries trigger starts
// rejecting writes, then refuses the closing if drafts are still dated in the period.
func (r *PgxPeriodRepository) SaveClosedPeriod(ctx context.Context, period domain.FiscalPeriod) error {
	insert := `INSERT INTO fiscal_periods (` + periodColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insert,
			period.Period,
			period.StartDate,
			period.EndDate,
			period.ClosedAt,
			period.ClosedBy,
			period.Notes,
		); err != nil {
			return mapPgError(err, "period "+period.Period+" is already closed")
		}

		var drafts int
		err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM entries WHERE entry_date BETWEEN $1 AND $2 AND status = 'draft';`,
			period.StartDate, period.EndDate,
		).Scan(&drafts)
		if err != nil {
			return mapPgError(err, "failed to count draft entries")
		}
		if drafts > 0 {
			return fmt.Errorf("%w: period %s still has %d draft entries", apperrors.ErrConflict, period.Period, drafts)
		}
		return nil
	})
}
