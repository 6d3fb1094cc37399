package domain

import "time"

// PeriodLayout is the textual layout of an accounting period (calendar month).
const PeriodLayout = "2006-01"

// FiscalPeriod is a calendar month that may be closed for posting.
type FiscalPeriod struct {
	Period    string     `json:"period"` // YYYY-MM
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"` // last day of the month
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	ClosedBy  string     `json:"closedBy,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// IsClosed reports whether the period has been closed.
func (p FiscalPeriod) IsClosed() bool {
	return p.ClosedAt != nil
}

// NewFiscalPeriod builds the period containing the first day of month start.
func NewFiscalPeriod(start time.Time) FiscalPeriod {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	return FiscalPeriod{
		Period:    first.Format(PeriodLayout),
		StartDate: first,
		EndDate:   first.AddDate(0, 1, -1),
	}
}

// PeriodOf returns the YYYY-MM period a date falls in.
func PeriodOf(t time.Time) string {
	return t.Format(PeriodLayout)
}
