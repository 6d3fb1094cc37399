package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ohada_ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, entry_number, entry_date, journal, reference, description,
	related_document_type, related_document_id, attachments, status, total_debit, total_credit,
	posted_at, posted_by, validated_at, validated_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for accounting entries and their lines.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Journal,
		&m.Reference,
		&m.Description,
		&m.RelatedDocumentType,
		&m.RelatedDocumentID,
		&m.Attachments,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.PostedAt,
		&m.PostedBy,
		&m.ValidatedAt,
		&m.ValidatedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry inserts the entry header, lets the sequence assign its number, then
// inserts the lines in the same transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry *domain.AccountingEntry) error {
	m := models.FromDomainEntry(*entry)
	query := `
		INSERT INTO entries (
			entry_id, entry_date, journal, reference, description,
			related_document_type, related_document_id, attachments, status, total_debit, total_credit,
			posted_at, posted_by, validated_at, validated_by,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING entry_number;
	`
	var number int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			m.EntryID,
			m.EntryDate,
			m.Journal,
			m.Reference,
			m.Description,
			m.RelatedDocumentType,
			m.RelatedDocumentID,
			m.Attachments,
			m.Status,
			m.TotalDebit,
			m.TotalCredit,
			m.PostedAt,
			m.PostedBy,
			m.ValidatedAt,
			m.ValidatedBy,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		).Scan(&number)
		if err != nil {
			return mapPgError(err, "failed to insert entry "+m.EntryID)
		}
		return insertLines(ctx, tx, models.FromDomainLines(m.EntryID, entry.Lines))
	})
	if err != nil {
		return err
	}
	entry.Number = number
	return nil
}

func insertLines(ctx context.Context, q querier, lines []models.EntryLine) error {
	query := `
		INSERT INTO entry_lines (entry_id, line_no, account_id, label, debit, credit, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(query, l.EntryID, l.LineNo, l.AccountID, l.Label, l.Debit, l.Credit, l.Reference)
	}
	br := q.SendBatch(ctx, batch)
	for _, l := range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return mapPgError(err, "failed to insert line "+strconv.Itoa(l.LineNo)+" of entry "+l.EntryID)
		}
	}
	return br.Close()
}

// ReplaceEntry rewrites a draft entry's header and lines atomically.
func (r *PgxEntryRepository) ReplaceEntry(ctx context.Context, entry domain.AccountingEntry) error {
	m := models.FromDomainEntry(entry)
	query := `
		UPDATE entries
		SET entry_date = $2, journal = $3, reference = $4, description = $5,
			related_document_type = $6, related_document_id = $7, attachments = $8,
			total_debit = $9, total_credit = $10, last_updated_at = $11, last_updated_by = $12
		WHERE entry_id = $1 AND status = 'draft';
	`
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			m.EntryID,
			m.EntryDate,
			m.Journal,
			m.Reference,
			m.Description,
			m.RelatedDocumentType,
			m.RelatedDocumentID,
			m.Attachments,
			m.TotalDebit,
			m.TotalCredit,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "failed to update entry "+m.EntryID)
		}
		if tag.RowsAffected() == 0 {
			return r.missingOrConflict(ctx, tx, m.EntryID, "is no longer a draft")
		}
		if _, err := tx.Exec(ctx, `DELETE FROM entry_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
			return mapPgError(err, "failed to delete lines of entry "+m.EntryID)
		}
		return insertLines(ctx, tx, models.FromDomainLines(m.EntryID, entry.Lines))
	})
}

// UpdateEntryStatus persists a transition with a compare-and-set on the stored status.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, entry domain.AccountingEntry, from domain.EntryStatus) error {
	m := models.FromDomainEntry(entry)
	query := `
		UPDATE entries
		SET status = $2, posted_at = $3, posted_by = $4, validated_at = $5, validated_by = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE entry_id = $1 AND status = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Status,
		m.PostedAt,
		m.PostedBy,
		m.ValidatedAt,
		m.ValidatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		string(from),
	)
	if err != nil {
		return mapPgError(err, "failed to update status of entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, r.Pool, m.EntryID, "was changed concurrently")
	}
	return nil
}

// missingOrConflict tells a vanished entry apart from one whose status moved on.
func (r *PgxEntryRepository) missingOrConflict(ctx context.Context, q querier, entryID, reason string) error {
	var status string
	err := q.QueryRow(ctx, `SELECT status FROM entries WHERE entry_id = $1;`, entryID).Scan(&status)
	if err != nil {
		return mapPgError(err, "entry "+entryID)
	}
	return fmt.Errorf("%w: entry %s %s (status %s)", apperrors.ErrConflict, entryID, reason, status)
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE entry_id = $1;`, entryID))
	if err != nil {
		return nil, mapPgError(err, "entry "+entryID)
	}
	lines, err := loadLines(ctx, r.Pool, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry := m.ToDomain()
	entry.Lines = lines[entryID]
	return &entry, nil
}

func loadLines(ctx context.Context, q querier, entryIDs []string) (map[string][]domain.EntryLine, error) {
	result := make(map[string][]domain.EntryLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT entry_id, line_no, account_id, label, debit, credit, reference
		FROM entry_lines
		WHERE entry_id = ANY($1::uuid[])
		ORDER BY entry_id, line_no;
	`
	rows, err := q.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query entry lines")
	}
	defer rows.Close()

	for rows.Next() {
		var l models.EntryLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountID, &l.Label, &l.Debit, &l.Credit, &l.Reference); err != nil {
			return nil, mapPgError(err, "failed to scan entry line")
		}
		result[l.EntryID] = append(result[l.EntryID], l.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate entry lines")
	}
	return result, nil
}

func entryWhere(f domain.EntryFilter) whereBuilder {
	var w whereBuilder
	if f.Query != "" {
		p := likePattern(f.Query)
		w.add(`(reference ILIKE ? OR description ILIKE ?
			OR EXISTS (SELECT 1 FROM entry_lines l WHERE l.entry_id = entries.entry_id AND l.label ILIKE ?))`, p, p, p)
	}
	if f.Journal != nil {
		w.add("journal = ?", string(*f.Journal))
	}
	if f.Status != nil {
		w.add("status = ?", string(*f.Status))
	}
	if f.AccountID != "" {
		w.add("EXISTS (SELECT 1 FROM entry_lines l WHERE l.entry_id = entries.entry_id AND l.account_id = ?)", f.AccountID)
	}
	if f.StartDate != nil {
		w.add("entry_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		w.add("entry_date <= ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		w.add("total_debit >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		w.add("total_debit <= ?", *f.MaxAmount)
	}
	return w
}

// SearchEntries returns one page of entries matching the filter, lines included.
func (r *PgxEntryRepository) SearchEntries(ctx context.Context, filter domain.EntryFilter) (*domain.EntryPage, error) {
	w := entryWhere(filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries`+w.sql()+`;`, w.args...).Scan(&total); err != nil {
		return nil, mapPgError(err, "failed to count entries")
	}

	page := &domain.EntryPage{Entries: []domain.AccountingEntry{}, Total: total, Page: filter.Page}
	if total == 0 || filter.Page.Offset() >= total {
		return page, nil
	}

	limit, offset := w.next(), "$"+strconv.Itoa(len(w.args)+2)
	query := `SELECT ` + entryColumns + ` FROM entries` + w.sql() +
		entryOrderBy(filter.SortBy, filter.SortOrder) + ` LIMIT ` + limit + ` OFFSET ` + offset + `;`
	args := append(w.args, filter.Page.Size, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to search entries")
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan entry")
		}
		page.Entries = append(page.Entries, m.ToDomain())
		ids = append(ids, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to iterate entries")
	}
	rows.Close()

	lines, err := loadLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range page.Entries {
		page.Entries[i].Lines = lines[page.Entries[i].EntryID]
	}
	return page, nil
}
