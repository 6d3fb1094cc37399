package dto

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one line of a proposed entry.
// Absent amounts decode to zero.
type EntryLineRequest struct {
	Account   string          `json:"account" validate:"required,uuid"`
	Label     string          `json:"label" validate:"required,max=200"`
	Debit     decimal.Decimal `json:"debit" validate:"gte=0"`
	Credit    decimal.Decimal `json:"credit" validate:"gte=0"`
	Reference string          `json:"reference,omitempty" validate:"max=100"`
}

// RelatedDocumentRequest links a proposed entry to its source document.
type RelatedDocumentRequest struct {
	Type string `json:"type" validate:"required,oneof=invoice payment receipt purchase_order other"`
	ID   string `json:"id" validate:"required,max=64"`
}

// CreateEntryRequest is the payload for creating, updating or checking an entry.
type CreateEntryRequest struct {
	Date            string                  `json:"date,omitempty" validate:"omitempty,entrydate"` // YYYY-MM-DD or RFC3339, defaults to today
	Journal         string                  `json:"journal" validate:"required,oneof=sales purchases cash bank operations miscellaneous"`
	Reference       string                  `json:"reference,omitempty" validate:"max=50"`
	Description     string                  `json:"description,omitempty" validate:"max=500"`
	Lines           []EntryLineRequest      `json:"lines" validate:"required,min=2"`
	RelatedDocument *RelatedDocumentRequest `json:"relatedDocument,omitempty"`
	Attachments     []string                `json:"attachments,omitempty" validate:"omitempty,max=5,dive,url"`
}

// SearchEntriesRequest holds the query parameters of GET /entries.
type SearchEntriesRequest struct {
	Q         string `form:"q" json:"q" validate:"max=100"`
	Journal   string `form:"journal" json:"journal" validate:"omitempty,oneof=sales purchases cash bank operations miscellaneous"`
	Status    string `form:"status" json:"status" validate:"omitempty,oneof=draft posted validated cancelled"`
	AccountID string `form:"accountId" json:"accountId" validate:"omitempty,uuid"`
	StartDate string `form:"startDate" json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	MinAmount string `form:"minAmount" json:"minAmount" validate:"omitempty,numeric"`
	MaxAmount string `form:"maxAmount" json:"maxAmount" validate:"omitempty,numeric"`
	SortBy    string `form:"sortBy" json:"sortBy" validate:"omitempty,oneof=date number reference createdAt"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit     int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// EntryLineResponse is an entry line as returned by the API.
type EntryLineResponse struct {
	LineNo    int             `json:"lineNo"`
	Account   string          `json:"account"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Reference string          `json:"reference,omitempty"`
}

// EntryResponse is an accounting entry as returned by the API.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	Number          string              `json:"number,omitempty"`
	Date            string              `json:"date"`
	Period          string              `json:"period"`
	Journal         domain.JournalCode  `json:"journal"`
	Reference       string              `json:"reference,omitempty"`
	Description     string              `json:"description,omitempty"`
	Lines           []EntryLineResponse `json:"lines"`
	RelatedDocument *domain.DocumentRef `json:"relatedDocument,omitempty"`
	Attachments     []string            `json:"attachments,omitempty"`
	Status          domain.EntryStatus  `json:"status"`
	TotalDebit      decimal.Decimal     `json:"totalDebit"`
	TotalCredit     decimal.Decimal     `json:"totalCredit"`
	PostedAt        *time.Time          `json:"postedAt,omitempty"`
	PostedBy        string              `json:"postedBy,omitempty"`
	ValidatedAt     *time.Time          `json:"validatedAt,omitempty"`
	ValidatedBy     string              `json:"validatedBy,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy   string              `json:"lastUpdatedBy"`
}

// CheckEntryResponse is returned by the dry-run endpoint when the entry is acceptable.
type CheckEntryResponse struct {
	Valid bool          `json:"valid"`
	Entry EntryResponse `json:"entry"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Pagination pagination.Meta `json:"pagination"`
}

// ToEntryResponse converts a domain.AccountingEntry to EntryResponse DTO
func ToEntryResponse(e *domain.AccountingEntry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{
			LineNo:    l.LineNo,
			Account:   l.AccountID,
			Label:     l.Label,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Reference: l.Reference,
		}
	}
	return EntryResponse{
		EntryID:         e.EntryID,
		Number:          e.DisplayNumber(),
		Date:            e.Date.Format(time.DateOnly),
		Period:          e.Period(),
		Journal:         e.Journal,
		Reference:       e.Reference,
		Description:     e.Description,
		Lines:           lines,
		RelatedDocument: e.RelatedDocument,
		Attachments:     e.Attachments,
		Status:          e.Status,
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		PostedAt:        e.PostedAt,
		PostedBy:        e.PostedBy,
		ValidatedAt:     e.ValidatedAt,
		ValidatedBy:     e.ValidatedBy,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToListEntriesResponse converts an entry page to its response DTO.
func ToListEntriesResponse(p *domain.EntryPage) ListEntriesResponse {
	entries := make([]EntryResponse, len(p.Entries))
	for i := range p.Entries {
		entries[i] = ToEntryResponse(&p.Entries[i])
	}
	return ListEntriesResponse{
		Entries:    entries,
		Pagination: pagination.NewMeta(p.Page, p.Total),
	}
}
