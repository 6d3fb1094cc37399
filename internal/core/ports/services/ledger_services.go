package services

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// LedgerSvcFacade defines the reporting operations
type LedgerSvcFacade interface {
	// GetLedger returns a page of the general ledger (grand livre).
	GetLedger(ctx context.Context, req dto.LedgerQueryRequest) (*domain.Ledger, error)

	// GetTrialBalance returns the balance générale as of a date.
	GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)
}
