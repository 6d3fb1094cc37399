// Package models holds the database row shapes that differ from the domain types.
package models

import (
	"database/sql"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Entry is a row of the entries table. Nullable columns use sql.Null types.
type Entry struct {
	EntryID             string
	EntryNumber         int64
	EntryDate           time.Time
	Journal             string
	Reference           string
	Description         string
	RelatedDocumentType sql.NullString
	RelatedDocumentID   sql.NullString
	Attachments         []string
	Status              string
	TotalDebit          decimal.Decimal
	TotalCredit         decimal.Decimal
	PostedAt            sql.NullTime
	PostedBy            sql.NullString
	ValidatedAt         sql.NullTime
	ValidatedBy         sql.NullString
	CreatedAt           time.Time
	CreatedBy           string
	LastUpdatedAt       time.Time
	LastUpdatedBy       string
}

// EntryLine is a row of the entry_lines table.
type EntryLine struct {
	EntryID   string
	LineNo    int
	AccountID string
	Label     string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Reference string
}

// FromDomainEntry converts an entry header for storage.
func FromDomainEntry(e domain.AccountingEntry) Entry {
	m := Entry{
		EntryID:       e.EntryID,
		EntryNumber:   e.Number,
		EntryDate:     e.Date,
		Journal:       string(e.Journal),
		Reference:     e.Reference,
		Description:   e.Description,
		Attachments:   e.Attachments,
		Status:        string(e.Status),
		TotalDebit:    e.TotalDebit,
		TotalCredit:   e.TotalCredit,
		PostedAt:      nullTime(e.PostedAt),
		PostedBy:      nullString(e.PostedBy),
		ValidatedAt:   nullTime(e.ValidatedAt),
		ValidatedBy:   nullString(e.ValidatedBy),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
	if m.Attachments == nil {
		m.Attachments = []string{}
	}
	if e.RelatedDocument != nil {
		m.RelatedDocumentType = nullString(string(e.RelatedDocument.Type))
		m.RelatedDocumentID = nullString(e.RelatedDocument.ID)
	}
	return m
}

// ToDomain converts the row back; lines are attached by the caller.
func (m Entry) ToDomain() domain.AccountingEntry {
	e := domain.AccountingEntry{
		EntryID:     m.EntryID,
		Number:      m.EntryNumber,
		Date:        m.EntryDate,
		Journal:     domain.JournalCode(m.Journal),
		Reference:   m.Reference,
		Description: m.Description,
		Status:      domain.EntryStatus(m.Status),
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		PostedBy:    m.PostedBy.String,
		ValidatedBy: m.ValidatedBy.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if len(m.Attachments) > 0 {
		e.Attachments = m.Attachments
	}
	if m.RelatedDocumentType.Valid {
		e.RelatedDocument = &domain.DocumentRef{
			Type: domain.DocumentType(m.RelatedDocumentType.String),
			ID:   m.RelatedDocumentID.String,
		}
	}
	if m.PostedAt.Valid {
		t := m.PostedAt.Time
		e.PostedAt = &t
	}
	if m.ValidatedAt.Valid {
		t := m.ValidatedAt.Time
		e.ValidatedAt = &t
	}
	return e
}

// FromDomainLines converts the lines of an entry for storage.
func FromDomainLines(entryID string, lines []domain.EntryLine) []EntryLine {
	out := make([]EntryLine, len(lines))
	for i, l := range lines {
		out[i] = EntryLine{
			EntryID:   entryID,
			LineNo:    l.LineNo,
			AccountID: l.AccountID,
			Label:     l.Label,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Reference: l.Reference,
		}
	}
	return out
}

// ToDomain converts a line row.
func (m EntryLine) ToDomain() domain.EntryLine {
	return domain.EntryLine{
		LineNo:    m.LineNo,
		AccountID: m.AccountID,
		Label:     m.Label,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Reference: m.Reference,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
