package validation

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// ValidateClosePeriod checks the shape of a close request.
// Whether the period can actually be closed is decided by the caller.
func (v *Validator) ValidateClosePeriod(req *dto.ClosePeriodRequest) (*domain.FiscalPeriod, error) {
	if req == nil {
		return nil, ErrNilInput
	}
	in := dto.ClosePeriodRequest{
		Period:   normalizeText(req.Period),
		ClosedBy: normalizeCode(req.ClosedBy),
		Notes:    normalizeText(req.Notes),
	}

	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return nil, err
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	start, err := time.Parse(domain.PeriodLayout, in.Period)
	if err != nil {
		// unreachable once the datetime tag passed
		return nil, ValidationErrors{{Field: "period", Code: CodeInvalidFormat, Message: "must be a period in YYYY-MM format"}}
	}
	period := domain.NewFiscalPeriod(start)
	period.ClosedBy = in.ClosedBy
	period.Notes = in.Notes
	return &period, nil
}
