package repositories

import (
	"context"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// PeriodRepositoryFacade defines persistence of closed accounting periods.
type PeriodRepositoryFacade interface {
	// FindPeriod returns the stored period, or apperrors.ErrNotFound when it was never closed.
	FindPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error)

	// ListClosedPeriods lists closed periods, most recent first.
	ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// SaveClosedPeriod records the closing. It fails with apperrors.ErrDuplicate when
	// the period is already closed and with apperrors.ErrConflict when draft entries remain.
	SaveClosedPeriod(ctx context.Context, period domain.FiscalPeriod) error
}
