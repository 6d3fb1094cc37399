package dto

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// LedgerQueryRequest holds the query parameters of GET /ledger.
type LedgerQueryRequest struct {
	AccountID string `form:"accountId" json:"accountId" validate:"omitempty,uuid"`
	Journal   string `form:"journal" json:"journal" validate:"omitempty,oneof=sales purchases cash bank operations miscellaneous"`
	Status    string `form:"status" json:"status" validate:"omitempty,oneof=draft posted validated cancelled"`
	StartDate string `form:"startDate" json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sortBy" json:"sortBy" validate:"omitempty,oneof=date number account"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit     int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// LedgerResponse is a page of the general ledger.
type LedgerResponse struct {
	Lines          []domain.LedgerLine `json:"lines"`
	OpeningBalance decimal.Decimal     `json:"openingBalance"`
	TotalDebit     decimal.Decimal     `json:"totalDebit"`
	TotalCredit    decimal.Decimal     `json:"totalCredit"`
	Pagination     pagination.Meta     `json:"pagination"`
}

// TrialBalanceParams defines query parameters for the trial balance.
type TrialBalanceParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse is one account of the trial balance.
type TrialBalanceRowResponse struct {
	AccountID     string              `json:"accountID"`
	AccountNumber string              `json:"accountNumber"`
	AccountLabel  string              `json:"accountLabel"`
	Class         domain.AccountClass `json:"class"`
	Debit         decimal.Decimal     `json:"debit"`
	Credit        decimal.Decimal     `json:"credit"`
	DebitBalance  decimal.Decimal     `json:"debitBalance"`
	CreditBalance decimal.Decimal     `json:"creditBalance"`
}

// TrialBalanceResponse is the balance générale.
type TrialBalanceResponse struct {
	AsOf        string                    `json:"asOf"`
	Currency    string                    `json:"currency"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	Balanced    bool                      `json:"balanced"`
}

func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	lines := l.Lines
	if lines == nil {
		lines = []domain.LedgerLine{}
	}
	return LedgerResponse{
		Lines:          lines,
		OpeningBalance: l.OpeningBalance,
		TotalDebit:     l.TotalDebit,
		TotalCredit:    l.TotalCredit,
		Pagination:     pagination.NewMeta(l.Page, l.Total),
	}
}

func ToTrialBalanceResponse(tb *domain.TrialBalance, currency string) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:     r.AccountID,
			AccountNumber: r.AccountNumber,
			AccountLabel:  r.AccountLabel,
			Class:         r.Class,
			Debit:         r.Debit,
			Credit:        r.Credit,
			DebitBalance:  r.DebitBalance(),
			CreditBalance: r.CreditBalance(),
		}
	}
	return TrialBalanceResponse{
		AsOf:        tb.AsOf.Format(time.DateOnly),
		Currency:    currency,
		Rows:        rows,
		TotalDebit:  tb.TotalDebit,
		TotalCredit: tb.TotalCredit,
		Balanced:    tb.Balanced,
	}
}
