package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ledgerRepository struct {
	pool *pgxpool.Pool
}

func newLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &ledgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

const ledgerFrom = `
	FROM entry_lines l
	JOIN entries e ON e.entry_id = l.entry_id
	JOIN accounts a ON a.account_id = l.account_id`

func ledgerWhere(f domain.LedgerFilter) whereBuilder {
	var w whereBuilder
	if len(f.Statuses) > 0 {
		w.add("e.status = ANY(?)", statusStrings(f.Statuses))
	}
	if f.AccountID != "" {
		w.add("l.account_id = ?", f.AccountID)
	}
	if f.Journal != nil {
		w.add("e.journal = ?", string(*f.Journal))
	}
	if f.StartDate != nil {
		w.add("e.entry_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		w.add("e.entry_date <= ?", *f.EndDate)
	}
	return w
}

// GetLedgerLines pages through matching lines. The running balance is computed
// per account in date order over the whole filtered set, before paging.
func (r *ledgerRepository) GetLedgerLines(ctx context.Context, filter domain.LedgerFilter) (*domain.Ledger, error) {
	w := ledgerWhere(filter)

	ledger := &domain.Ledger{Lines: []domain.LedgerLine{}, Page: filter.Page}
	totals := `SELECT COUNT(*), COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)` + ledgerFrom + w.sql() + `;`
	if err := r.pool.QueryRow(ctx, totals, w.args...).Scan(&ledger.Total, &ledger.TotalDebit, &ledger.TotalCredit); err != nil {
		return nil, mapPgError(err, "failed to total ledger lines")
	}
	if ledger.Total == 0 || filter.Page.Offset() >= ledger.Total {
		return ledger, nil
	}

	limit, offset := w.next(), "$"+strconv.Itoa(len(w.args)+2)
	query := `
		SELECT e.entry_id, e.entry_number, e.entry_date, e.journal, e.reference, e.status,
			l.line_no, l.account_id, a.number, a.label, l.label, l.debit, l.credit,
			SUM(l.debit - l.credit) OVER (
				PARTITION BY l.account_id
				ORDER BY e.entry_date, e.entry_number, l.line_no
			)` + ledgerFrom + w.sql() + ledgerOrderBy(filter.SortBy, filter.SortOrder) +
		` LIMIT ` + limit + ` OFFSET ` + offset + `;`
	args := append(w.args, filter.Page.Size, filter.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query ledger lines")
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.LedgerLine
		var journal, status string
		if err := rows.Scan(
			&line.EntryID,
			&line.EntryNumber,
			&line.Date,
			&journal,
			&line.Reference,
			&status,
			&line.LineNo,
			&line.AccountID,
			&line.AccountNumber,
			&line.AccountLabel,
			&line.Label,
			&line.Debit,
			&line.Credit,
			&line.RunningBalance,
		); err != nil {
			return nil, mapPgError(err, "failed to scan ledger line")
		}
		line.Journal = domain.JournalCode(journal)
		line.Status = domain.EntryStatus(status)
		ledger.Lines = append(ledger.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate ledger lines")
	}
	return ledger, nil
}

// GetOpeningBalance sums debit minus credit of an account strictly before a date.
func (r *ledgerRepository) GetOpeningBalance(ctx context.Context, accountID string, before time.Time, statuses []domain.EntryStatus) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit - l.credit), 0)
		FROM entry_lines l
		JOIN entries e ON e.entry_id = l.entry_id
		WHERE l.account_id = $1 AND e.entry_date < $2 AND e.status = ANY($3);
	`
	var balance decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, accountID, before, statusStrings(statuses)).Scan(&balance); err != nil {
		return decimal.Zero, mapPgError(err, "failed to compute opening balance of account "+accountID)
	}
	return balance, nil
}

// GetTrialBalanceRows aggregates debit and credit per account up to asOf inclusive.
// Accounts without movements are omitted.
func (r *ledgerRepository) GetTrialBalanceRows(ctx context.Context, asOf time.Time, statuses []domain.EntryStatus) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.number, a.label, a.class, SUM(l.debit), SUM(l.credit)
		FROM accounts a
		JOIN entry_lines l ON l.account_id = a.account_id
		JOIN entries e ON e.entry_id = l.entry_id
		WHERE e.entry_date <= $1 AND e.status = ANY($2)
		GROUP BY a.account_id, a.number, a.label, a.class
		ORDER BY a.number;
	`
	rows, err := r.pool.Query(ctx, query, asOf, statusStrings(statuses))
	if err != nil {
		return nil, mapPgError(err, "failed to query trial balance")
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var class int
		if err := rows.Scan(&row.AccountID, &row.AccountNumber, &row.AccountLabel, &class, &row.Debit, &row.Credit); err != nil {
			return nil, mapPgError(err, "failed to scan trial balance row")
		}
		row.Class = domain.AccountClass(class)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate trial balance rows")
	}
	return result, nil
}
