package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepositoryFacade defines the read-side queries behind the ledger and trial balance.
type LedgerRepositoryFacade interface {
	// GetLedgerLines returns one page of ledger lines with running balances and the
	// totals over every matching line.
	GetLedgerLines(ctx context.Context, filter domain.LedgerFilter) (*domain.Ledger, error)

	// GetOpeningBalance sums debit minus credit of an account strictly before a date.
	GetOpeningBalance(ctx context.Context, accountID string, before time.Time, statuses []domain.EntryStatus) (decimal.Decimal, error)

	// GetTrialBalanceRows aggregates debit and credit per account up to asOf inclusive.
	GetTrialBalanceRows(ctx context.Context, asOf time.Time, statuses []domain.EntryStatus) ([]domain.TrialBalanceRow, error)
}
