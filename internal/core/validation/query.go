package validation

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// ValidateLedgerQuery checks ledger filters and fills in paging and sort defaults.
// Without a status filter the ledger covers posted and validated entries.
func (v *Validator) ValidateLedgerQuery(req *dto.LedgerQueryRequest) (*domain.LedgerFilter, error) {
	if req == nil {
		return nil, ErrNilInput
	}
	in := *req
	in.AccountID = normalizeCode(in.AccountID)
	in.Journal = normalizeCode(in.Journal)
	in.Status = normalizeCode(in.Status)
	in.StartDate = normalizeText(in.StartDate)
	in.EndDate = normalizeText(in.EndDate)
	in.SortBy = normalizeText(in.SortBy)
	in.SortOrder = normalizeCode(in.SortOrder)

	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return nil, err
	}
	start, end := dateRange(in.StartDate, in.EndDate, &c)
	if err := c.err(); err != nil {
		return nil, err
	}

	filter := &domain.LedgerFilter{
		AccountID: in.AccountID,
		StartDate: start,
		EndDate:   end,
		SortBy:    orDefault(in.SortBy, "date"),
		SortOrder: domain.SortOrder(orDefault(in.SortOrder, string(domain.SortAsc))),
		Page:      page(in.Page, in.Limit),
		Statuses:  []domain.EntryStatus{domain.EntryPosted, domain.EntryValidated},
	}
	if in.Journal != "" {
		j := domain.JournalCode(in.Journal)
		filter.Journal = &j
	}
	if in.Status != "" {
		filter.Statuses = []domain.EntryStatus{domain.EntryStatus(in.Status)}
	}
	return filter, nil
}

// ValidateSearchEntry checks entry search filters and fills in paging and sort defaults.
func (v *Validator) ValidateSearchEntry(req *dto.SearchEntriesRequest) (*domain.EntryFilter, error) {
	if req == nil {
		return nil, ErrNilInput
	}
	in := *req
	in.Q = normalizeText(in.Q)
	in.Journal = normalizeCode(in.Journal)
	in.Status = normalizeCode(in.Status)
	in.AccountID = normalizeCode(in.AccountID)
	in.StartDate = normalizeText(in.StartDate)
	in.EndDate = normalizeText(in.EndDate)
	in.MinAmount = normalizeText(in.MinAmount)
	in.MaxAmount = normalizeText(in.MaxAmount)
	in.SortBy = normalizeText(in.SortBy)
	in.SortOrder = normalizeCode(in.SortOrder)

	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return nil, err
	}
	start, end := dateRange(in.StartDate, in.EndDate, &c)
	minAmount := amount("minAmount", in.MinAmount, &c)
	maxAmount := amount("maxAmount", in.MaxAmount, &c)
	if minAmount != nil && maxAmount != nil && maxAmount.LessThan(*minAmount) {
		c.add("maxAmount", CodeOutOfRange, "must not be lower than minAmount",
			map[string]any{"minAmount": *minAmount, "maxAmount": *maxAmount})
	}
	if err := c.err(); err != nil {
		return nil, err
	}

	filter := &domain.EntryFilter{
		Query:     in.Q,
		AccountID: in.AccountID,
		StartDate: start,
		EndDate:   end,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		SortBy:    orDefault(in.SortBy, "date"),
		SortOrder: domain.SortOrder(orDefault(in.SortOrder, string(domain.SortDesc))),
		Page:      page(in.Page, in.Limit),
	}
	if in.Journal != "" {
		j := domain.JournalCode(in.Journal)
		filter.Journal = &j
	}
	if in.Status != "" {
		s := domain.EntryStatus(in.Status)
		filter.Status = &s
	}
	return filter, nil
}

// dateRange parses the bounds that passed their format check and enforces end >= start.
func dateRange(startRaw, endRaw string, c *collector) (start, end *time.Time) {
	parse := func(field, raw string) *time.Time {
		if raw == "" || c.under(field) {
			return nil
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil
		}
		return &t
	}
	start = parse("startDate", startRaw)
	end = parse("endDate", endRaw)
	if start != nil && end != nil && end.Before(*start) {
		c.add("endDate", CodeOutOfRange, "must not be before startDate",
			map[string]any{"startDate": startRaw, "endDate": endRaw})
	}
	return start, end
}

func amount(field, raw string, c *collector) *decimal.Decimal {
	if raw == "" || c.under(field) {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.add(field, CodeInvalidFormat, "must be a number", nil)
		return nil
	}
	if d.IsNegative() {
		c.add(field, CodeOutOfRange, "must not be negative", map[string]any{"limit": "0"})
		return nil
	}
	return &d
}

func page(number, size int) domain.Page {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	return domain.Page{Number: number, Size: size}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
