package services

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// PeriodSvcFacade defines operations on accounting periods
type PeriodSvcFacade interface {
	// ClosePeriod closes a month for posting.
	ClosePeriod(ctx context.Context, req dto.ClosePeriodRequest, userID string) (*domain.FiscalPeriod, error)

	// GetPeriod describes a month, closed or not.
	GetPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error)

	// ListClosedPeriods lists closed months, most recent first.
	ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// EnsureOpen fails with apperrors.ErrPeriodClosed when date falls in a closed period.
	EnsureOpen(ctx context.Context, date time.Time) error
}
