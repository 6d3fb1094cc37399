package validation

import (
	"fmt"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// ValidateEntry checks a proposed entry and returns it normalized as a draft.
//
// Structural rules run first, then the per-line debit/credit rules, then the
// balance check. The balance check is skipped when any line failed.
func (v *Validator) ValidateEntry(req *dto.CreateEntryRequest) (*domain.AccountingEntry, error) {
	if req == nil {
		return nil, ErrNilInput
	}
	in := normalizeEntry(req)

	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return nil, err
	}

	date := v.today()
	if in.Date != "" && !c.under("date") {
		parsed, err := v.entryDate(in.Date)
		if err == nil {
			if parsed.After(date) {
				c.add("date", CodeOutOfRange, "must not be in the future", map[string]any{"today": date.Format("2006-01-02")})
			}
			date = parsed
		}
	}

	lines := make([]domain.EntryLine, 0, len(in.Lines))
	for i := range in.Lines {
		line, err := v.checkLine(&in.Lines[i], fmt.Sprintf("lines[%d]", i), &c)
		if err != nil {
			return nil, err
		}
		line.LineNo = i + 1
		lines = append(lines, line)
	}

	entry := &domain.AccountingEntry{
		Date:        date,
		Journal:     domain.JournalCode(in.Journal),
		Reference:   in.Reference,
		Description: in.Description,
		Lines:       lines,
		Attachments: in.Attachments,
		Status:      domain.EntryDraft,
	}
	entry.TotalDebit, entry.TotalCredit = entry.Totals()
	if in.RelatedDocument != nil {
		entry.RelatedDocument = &domain.DocumentRef{
			Type: domain.DocumentType(in.RelatedDocument.Type),
			ID:   in.RelatedDocument.ID,
		}
	}

	if !c.under("lines") && decimal.Max(entry.TotalDebit, entry.TotalCredit).GreaterThanOrEqual(maxAmount) {
		c.add("lines", CodeOutOfRange, "entry total must be less than "+maxAmount.String(),
			map[string]any{"limit": maxAmount.String(), "totalDebit": entry.TotalDebit, "totalCredit": entry.TotalCredit})
	}

	if !c.under("lines") {
		diff := entry.TotalDebit.Sub(entry.TotalCredit).Abs()
		if diff.GreaterThan(balanceTolerance) {
			c.add("lines", CodeUnbalanced,
				fmt.Sprintf("entry is unbalanced: total debit %s, total credit %s", entry.TotalDebit, entry.TotalCredit),
				map[string]any{
					"totalDebit":  entry.TotalDebit,
					"totalCredit": entry.TotalCredit,
					"difference":  diff,
				})
		}
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return entry, nil
}

// ValidateLine checks a single line. Field paths are relative to the line,
// and the debit/credit rules are reported with an empty field.
func (v *Validator) ValidateLine(req *dto.EntryLineRequest) (domain.EntryLine, error) {
	if req == nil {
		return domain.EntryLine{}, ErrNilInput
	}
	in := normalizeLine(*req)

	var c collector
	line, err := v.checkLine(&in, "", &c)
	if err != nil {
		return domain.EntryLine{}, err
	}
	if err := c.err(); err != nil {
		return domain.EntryLine{}, err
	}
	return line, nil
}

// checkLine records the failures of one already normalized line under prefix.
// The debit/credit rules only run when the line is structurally sound.
func (v *Validator) checkLine(in *dto.EntryLineRequest, prefix string, c *collector) (domain.EntryLine, error) {
	before := c.len()
	if err := v.check(in, prefix, c); err != nil {
		return domain.EntryLine{}, err
	}
	if c.len() == before {
		checkAmount(in.Debit, joinPath(prefix, "debit"), c)
		checkAmount(in.Credit, joinPath(prefix, "credit"), c)
	}
	if c.len() == before {
		switch {
		case in.Debit.IsPositive() && in.Credit.IsPositive():
			c.add(prefix, CodeDebitAndCredit, "a line cannot carry both a debit and a credit",
				map[string]any{"debit": in.Debit, "credit": in.Credit})
		case in.Debit.IsZero() && in.Credit.IsZero():
			c.add(prefix, CodeNoAmount, "a line must carry either a debit or a credit", nil)
		}
	}
	return domain.EntryLine{
		AccountID: in.Account,
		Label:     in.Label,
		Debit:     in.Debit,
		Credit:    in.Credit,
		Reference: in.Reference,
	}, nil
}

// checkAmount enforces what the ledger can store: at most MaxAmountScale
// decimals and a value below maxAmount.
func checkAmount(amount decimal.Decimal, field string, c *collector) {
	if !amount.Truncate(MaxAmountScale).Equal(amount) {
		c.add(field, CodeInvalidFormat, fmt.Sprintf("must have at most %d decimal places", MaxAmountScale),
			map[string]any{"scale": MaxAmountScale})
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		c.add(field, CodeOutOfRange, "must be less than "+maxAmount.String(),
			map[string]any{"limit": maxAmount.String()})
	}
}

// normalizeEntry returns a trimmed, NFC-normalized copy; req is left untouched.
func normalizeEntry(req *dto.CreateEntryRequest) dto.CreateEntryRequest {
	out := dto.CreateEntryRequest{
		Date:        normalizeText(req.Date),
		Journal:     normalizeCode(req.Journal),
		Reference:   normalizeText(req.Reference),
		Description: normalizeText(req.Description),
	}
	if req.Lines != nil {
		out.Lines = make([]dto.EntryLineRequest, len(req.Lines))
		for i, l := range req.Lines {
			out.Lines[i] = normalizeLine(l)
		}
	}
	if req.RelatedDocument != nil {
		out.RelatedDocument = &dto.RelatedDocumentRequest{
			Type: normalizeCode(req.RelatedDocument.Type),
			ID:   normalizeText(req.RelatedDocument.ID),
		}
	}
	if len(req.Attachments) > 0 {
		out.Attachments = make([]string, len(req.Attachments))
		for i, a := range req.Attachments {
			out.Attachments[i] = normalizeText(a)
		}
	}
	return out
}

func normalizeLine(l dto.EntryLineRequest) dto.EntryLineRequest {
	return dto.EntryLineRequest{
		Account:   normalizeCode(l.Account),
		Label:     normalizeText(l.Label),
		Debit:     l.Debit,
		Credit:    l.Credit,
		Reference: normalizeText(l.Reference),
	}
}
