package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// reportedStatuses are the statuses that count in balances.
var reportedStatuses = []domain.EntryStatus{domain.EntryPosted, domain.EntryValidated}

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	validator  *validation.Validator
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, v *validation.Validator, opts ...Option) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(opts),
		ledgerRepo:  ledgerRepo,
		validator:   v,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetLedger loads a page of ledger lines. For a single account with a start
// date, the opening balance is fetched concurrently and carried into the
// running balances.
func (s *ledgerService) GetLedger(ctx context.Context, req dto.LedgerQueryRequest) (*domain.Ledger, error) {
	filter, err := s.validator.ValidateLedgerQuery(&req)
	if err != nil {
		return nil, err
	}

	var ledger *domain.Ledger
	opening := decimal.Zero

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ledger, err = s.ledgerRepo.GetLedgerLines(gctx, *filter)
		return err
	})
	if filter.AccountID != "" && filter.StartDate != nil {
		g.Go(func() error {
			var err error
			opening, err = s.ledgerRepo.GetOpeningBalance(gctx, filter.AccountID, *filter.StartDate, filter.Statuses)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load ledger")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	ledger.OpeningBalance = opening
	if !opening.IsZero() {
		for i := range ledger.Lines {
			ledger.Lines[i].RunningBalance = ledger.Lines[i].RunningBalance.Add(opening)
		}
	}
	return ledger, nil
}

// GetTrialBalance aggregates posted and validated lines up to asOf inclusive.
func (s *ledgerService) GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	y, m, d := asOf.Date()
	asOf = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	rows, err := s.ledgerRepo.GetTrialBalanceRows(ctx, asOf, reportedStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load trial balance: %w", err)
	}

	tb := &domain.TrialBalance{AsOf: asOf, Rows: rows, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, r := range rows {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	tb.Balanced = tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThanOrEqual(validation.BalanceTolerance())
	return tb, nil
}
