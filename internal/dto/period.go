package dto

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// ClosePeriodRequest is the payload of POST /periods/close.
type ClosePeriodRequest struct {
	Period   string `json:"period" validate:"required,datetime=2006-01"`
	ClosedBy string `json:"closedBy,omitempty" validate:"omitempty,uuid"` // defaults to the caller
	Notes    string `json:"notes,omitempty" validate:"max=500"`
}

// PeriodResponse describes an accounting period.
type PeriodResponse struct {
	Period    string     `json:"period"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Closed    bool       `json:"closed"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	ClosedBy  string     `json:"closedBy,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// ListPeriodsResponse wraps the closed periods.
type ListPeriodsResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

func ToPeriodResponse(p *domain.FiscalPeriod) PeriodResponse {
	return PeriodResponse{
		Period:    p.Period,
		StartDate: p.StartDate.Format(time.DateOnly),
		EndDate:   p.EndDate.Format(time.DateOnly),
		Closed:    p.IsClosed(),
		ClosedAt:  p.ClosedAt,
		ClosedBy:  p.ClosedBy,
		Notes:     p.Notes,
	}
}

func ToListPeriodsResponse(periods []domain.FiscalPeriod) ListPeriodsResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return ListPeriodsResponse{Periods: res}
}
