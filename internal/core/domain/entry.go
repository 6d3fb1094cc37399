package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JournalCode identifies the journal an entry is recorded in.
type JournalCode string

const (
	JournalSales         JournalCode = "sales"
	JournalPurchases     JournalCode = "purchases"
	JournalCash          JournalCode = "cash"
	JournalBank          JournalCode = "bank"
	JournalOperations    JournalCode = "operations"
	JournalMiscellaneous JournalCode = "miscellaneous"
)

// JournalCodes lists every journal in display order.
var JournalCodes = []JournalCode{
	JournalSales, JournalPurchases, JournalCash, JournalBank, JournalOperations, JournalMiscellaneous,
}

// Prefix is the short code used in entry numbers (VT-000042).
func (j JournalCode) Prefix() string {
	switch j {
	case JournalSales:
		return "VT"
	case JournalPurchases:
		return "AC"
	case JournalCash:
		return "CA"
	case JournalBank:
		return "BQ"
	case JournalOperations:
		return "OP"
	default:
		return "OD"
	}
}

// DocumentType is the kind of business document an entry originates from.
type DocumentType string

const (
	DocumentInvoice       DocumentType = "invoice"
	DocumentPayment       DocumentType = "payment"
	DocumentReceipt       DocumentType = "receipt"
	DocumentPurchaseOrder DocumentType = "purchase_order"
	DocumentOther         DocumentType = "other"
)

// DocumentRef links an entry to the document that produced it.
type DocumentRef struct {
	Type DocumentType `json:"type"`
	ID   string       `json:"id"`
}

// EntryStatus is the lifecycle state of an accounting entry.
type EntryStatus string

const (
	EntryDraft     EntryStatus = "draft"
	EntryPosted    EntryStatus = "posted"
	EntryValidated EntryStatus = "validated"
	EntryCancelled EntryStatus = "cancelled"
)

// EntryStatuses lists every status.
var EntryStatuses = []EntryStatus{EntryDraft, EntryPosted, EntryValidated, EntryCancelled}

var allowedTransitions = map[EntryStatus][]EntryStatus{
	EntryDraft:  {EntryPosted, EntryCancelled},
	EntryPosted: {EntryValidated, EntryCancelled},
}

// CanTransitionTo reports whether an entry in status s may move to next.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a lifecycle change is not allowed.
type InvalidTransitionError struct {
	EntryID string
	From    EntryStatus
	To      EntryStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s for entry %s", e.From, e.To, e.EntryID)
}

func (e *InvalidTransitionError) Unwrap() error {
	return apperrors.ErrConflict
}

// EntryLine is one debit or credit line of an accounting entry.
type EntryLine struct {
	LineNo    int             `json:"lineNo"`
	AccountID string          `json:"account"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Reference string          `json:"reference,omitempty"`
}

// IsDebit reports whether the line posts to the debit side.
func (l EntryLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// AccountingEntry is a double-entry journal entry (écriture comptable).
type AccountingEntry struct {
	EntryID         string          `json:"entryID"`
	Number          int64           `json:"number"` // Sequential, assigned on insert
	Date            time.Time       `json:"date"`
	Journal         JournalCode     `json:"journal"`
	Reference       string          `json:"reference,omitempty"`
	Description     string          `json:"description,omitempty"`
	Lines           []EntryLine     `json:"lines"`
	RelatedDocument *DocumentRef    `json:"relatedDocument,omitempty"`
	Attachments     []string        `json:"attachments,omitempty"`
	Status          EntryStatus     `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	PostedAt        *time.Time      `json:"postedAt,omitempty"`
	PostedBy        string          `json:"postedBy,omitempty"`
	ValidatedAt     *time.Time      `json:"validatedAt,omitempty"`
	ValidatedBy     string          `json:"validatedBy,omitempty"`
	AuditFields
}

// DisplayNumber renders the journal-prefixed entry number, e.g. "VT-000042".
func (e AccountingEntry) DisplayNumber() string {
	if e.Number == 0 {
		return ""
	}
	return fmt.Sprintf("%s-%06d", e.Journal.Prefix(), e.Number)
}

// Period returns the accounting period the entry date falls in.
func (e AccountingEntry) Period() string {
	return PeriodOf(e.Date)
}

// AccountIDs returns the distinct accounts referenced by the lines, in first-seen order.
func (e AccountingEntry) AccountIDs() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

// Totals sums the debit and credit sides of the lines.
func (e AccountingEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Transition moves the entry to next, stamping the posting or validation fields.
func (e *AccountingEntry) Transition(next EntryStatus, userID string, at time.Time) error {
	if !e.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{EntryID: e.EntryID, From: e.Status, To: next}
	}
	switch next {
	case EntryPosted:
		e.PostedAt = &at
		e.PostedBy = userID
	case EntryValidated:
		e.ValidatedAt = &at
		e.ValidatedBy = userID
	}
	e.Status = next
	e.LastUpdatedAt = at
	e.LastUpdatedBy = userID
	return nil
}

// EntryFilter is the normalized form of an entry search request.
type EntryFilter struct {
	Query     string
	Journal   *JournalCode
	Status    *EntryStatus
	AccountID string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	SortBy    string
	SortOrder SortOrder
	Page      Page
}

// EntryPage is one page of entry search results.
type EntryPage struct {
	Entries []AccountingEntry
	Total   int
	Page    Page
}
