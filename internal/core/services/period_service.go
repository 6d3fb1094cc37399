package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
	validator  *validation.Validator
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, v *validation.Validator, opts ...Option) portssvc.PeriodSvcFacade {
	return &periodService{
		BaseService: newBaseService(opts),
		periodRepo:  periodRepo,
		validator:   v,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// ClosePeriod closes a month. closedBy defaults to the calling user.
func (s *periodService) ClosePeriod(ctx context.Context, req dto.ClosePeriodRequest, userID string) (*domain.FiscalPeriod, error) {
	period, err := s.validator.ValidateClosePeriod(&req)
	if err != nil {
		return nil, err
	}
	if period.ClosedBy == "" {
		period.ClosedBy = userID
	}
	now := s.Now()
	period.ClosedAt = &now

	if err := s.periodRepo.SaveClosedPeriod(ctx, *period); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to close period", slog.String("period", period.Period))
		}
		return nil, fmt.Errorf("failed to close period %s: %w", period.Period, err)
	}

	s.LogInfo(ctx, "Period closed",
		slog.String("period", period.Period),
		slog.String("closed_by", period.ClosedBy))
	return period, nil
}

// GetPeriod returns the stored period, or an open one when it was never closed.
func (s *periodService) GetPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error) {
	start, err := time.Parse(domain.PeriodLayout, period)
	if err != nil {
		return nil, validation.ValidationErrors{{
			Field:   "period",
			Code:    validation.CodeInvalidFormat,
			Message: "must be a period in YYYY-MM format",
		}}
	}

	stored, err := s.periodRepo.FindPeriod(ctx, period)
	if errors.Is(err, apperrors.ErrNotFound) {
		open := domain.NewFiscalPeriod(start)
		return &open, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get period %s: %w", period, err)
	}
	return stored, nil
}

func (s *periodService) ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	periods, err := s.periodRepo.ListClosedPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed periods: %w", err)
	}
	return periods, nil
}

func (s *periodService) EnsureOpen(ctx context.Context, date time.Time) error {
	period := domain.PeriodOf(date)
	_, err := s.periodRepo.FindPeriod(ctx, period)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check period %s: %w", period, err)
	}
	return fmt.Errorf("%w: %s", apperrors.ErrPeriodClosed, period)
}
