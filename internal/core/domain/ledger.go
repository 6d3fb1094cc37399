package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerFilter is the normalized form of a ledger (grand livre) query.
type LedgerFilter struct {
	AccountID string
	Journal   *JournalCode
	Statuses  []EntryStatus // defaults to posted and validated
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder SortOrder
	Page      Page
}

// LedgerLine is an entry line enriched with its entry header and running balance.
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	EntryNumber    int64           `json:"entryNumber"`
	Date           time.Time       `json:"date"`
	Journal        JournalCode     `json:"journal"`
	Reference      string          `json:"reference,omitempty"`
	Status         EntryStatus     `json:"status"`
	LineNo         int             `json:"lineNo"`
	AccountID      string          `json:"accountID"`
	AccountNumber  string          `json:"accountNumber"`
	AccountLabel   string          `json:"accountLabel"`
	Label          string          `json:"label"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // debit minus credit, cumulative per account
}

// Ledger is a page of ledger lines with its totals.
type Ledger struct {
	Lines          []LedgerLine
	OpeningBalance decimal.Decimal
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	Total          int
	Page           Page
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountLabel  string          `json:"accountLabel"`
	Class         AccountClass    `json:"class"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// DebitBalance is the solde débiteur of the row, zero when the account is in credit.
func (r TrialBalanceRow) DebitBalance() decimal.Decimal {
	if diff := r.Debit.Sub(r.Credit); diff.IsPositive() {
		return diff
	}
	return decimal.Zero
}

// CreditBalance is the solde créditeur of the row, zero when the account is in debit.
func (r TrialBalanceRow) CreditBalance() decimal.Decimal {
	if diff := r.Credit.Sub(r.Debit); diff.IsPositive() {
		return diff
	}
	return decimal.Zero
}

// TrialBalance is the balance générale as of a date.
type TrialBalance struct {
	AsOf        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}
