package validation_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	accountA = "0b9d6a4e-6f0c-4d51-9a55-3f7e8b0c2d11"
	accountB = "5c2f8e1a-3b4d-4e6f-8a9b-0c1d2e3f4a5b"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return fixedNow }))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debitLine(account, amount string) dto.EntryLineRequest {
	return dto.EntryLineRequest{Account: account, Label: "Debit line", Debit: dec(amount)}
}

func creditLine(account, amount string) dto.EntryLineRequest {
	return dto.EntryLineRequest{Account: account, Label: "Credit line", Credit: dec(amount)}
}

func requireValidationErrors(t *testing.T, err error) validation.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	verrs, ok := validation.AsValidationErrors(err)
	require.True(t, ok, "expected ValidationErrors, got %T", err)
	require.NotEmpty(t, verrs)
	return verrs
}

func TestValidateEntry_BalancedSalesEntry(t *testing.T) {
	v := newValidator()
	req := &dto.CreateEntryRequest{
		Journal: "sales",
		Lines: []dto.EntryLineRequest{
			debitLine(accountA, "1000"),
			creditLine(accountB, "1000"),
		},
	}

	entry, err := v.ValidateEntry(req)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, domain.JournalSales, entry.Journal)
	assert.Equal(t, domain.EntryDraft, entry.Status)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entry.Date, "absent date defaults to today")
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, 1, entry.Lines[0].LineNo)
	assert.Equal(t, 2, entry.Lines[1].LineNo)
	assert.Equal(t, accountA, entry.Lines[0].AccountID)
	assert.True(t, entry.TotalDebit.Equal(dec("1000")))
	assert.True(t, entry.TotalCredit.Equal(dec("1000")))
	assert.Empty(t, req.Lines[0].Reference, "input must not be modified")
}

func TestValidateEntry_Unbalanced(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal: "purchases",
		Lines: []dto.EntryLineRequest{
			debitLine(accountA, "500"),
			creditLine(accountB, "400"),
		},
	})

	verrs := requireValidationErrors(t, err)
	require.Len(t, verrs, 1)
	fe, ok := verrs.Find("lines", validation.CodeUnbalanced)
	require.True(t, ok)
	assert.True(t, fe.Params["totalDebit"].(decimal.Decimal).Equal(dec("500")))
	assert.True(t, fe.Params["totalCredit"].(decimal.Decimal).Equal(dec("400")))
	assert.True(t, fe.Params["difference"].(decimal.Decimal).Equal(dec("100")))
	assert.Contains(t, fe.Message, "500")
	assert.Contains(t, fe.Message, "400")
}

func TestValidateEntry_SingleLineWithBothAmounts(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal: "cash",
		Lines: []dto.EntryLineRequest{
			{Account: accountA, Label: "Both sides", Debit: dec("100"), Credit: dec("100")},
		},
	})

	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("lines[0]", validation.CodeDebitAndCredit))
	assert.True(t, verrs.Has("lines", validation.CodeTooFewLines))
	assert.False(t, verrs.Has("lines", validation.CodeUnbalanced))
}

func TestValidateEntry_FutureDate(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Date:    "2024-03-16",
		Journal: "bank",
		Lines: []dto.EntryLineRequest{
			debitLine(accountA, "10"),
			creditLine(accountB, "10"),
		},
	})

	verrs := requireValidationErrors(t, err)
	require.Len(t, verrs, 1)
	assert.True(t, verrs.Has("date", validation.CodeOutOfRange))
}

func TestValidateEntry_Dates(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr validation.ErrorCode
	}{
		{name: "today", date: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "past", date: "2023-12-31", want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 same day in UTC", date: "2024-03-01T23:30:00+01:00", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding space", date: " 2024-03-10 ", want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "day first", date: "15/03/2024", wantErr: validation.CodeInvalidFormat},
		{name: "impossible day", date: "2024-02-30", wantErr: validation.CodeInvalidFormat},
		{name: "next year", date: "2025-01-01", wantErr: validation.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := v.ValidateEntry(&dto.CreateEntryRequest{
				Date:    tt.date,
				Journal: "operations",
				Lines:   []dto.EntryLineRequest{debitLine(accountA, "1"), creditLine(accountB, "1")},
			})
			if tt.wantErr != "" {
				verrs := requireValidationErrors(t, err)
				assert.True(t, verrs.Has("date", tt.wantErr), "got %v", verrs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Date)
		})
	}
}

func TestValidateEntry_LineAmountRules(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name string
		line dto.EntryLineRequest
		code validation.ErrorCode
	}{
		{name: "both positive", line: dto.EntryLineRequest{Account: accountA, Label: "x", Debit: dec("5"), Credit: dec("5")}, code: validation.CodeDebitAndCredit},
		{name: "both zero", line: dto.EntryLineRequest{Account: accountA, Label: "x"}, code: validation.CodeNoAmount},
		{name: "explicit zeros", line: dto.EntryLineRequest{Account: accountA, Label: "x", Debit: dec("0"), Credit: dec("0.00")}, code: validation.CodeNoAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateEntry(&dto.CreateEntryRequest{
				Journal: "miscellaneous",
				Lines:   []dto.EntryLineRequest{debitLine(accountA, "10"), creditLine(accountB, "10"), tt.line},
			})
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has("lines[2]", tt.code), "got %v", verrs)
			assert.False(t, verrs.Has("lines", validation.CodeUnbalanced), "balance is not checked when a line fails")
		})
	}
}

func TestValidateEntry_AmountStorageLimits(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name   string
		amount string
		code   validation.ErrorCode
	}{
		{name: "below the smallest stored unit", amount: "0.00001", code: validation.CodeInvalidFormat},
		{name: "too many decimals", amount: "1.123456789", code: validation.CodeInvalidFormat},
		{name: "overflows the column", amount: "100000000000000000000", code: validation.CodeOutOfRange},
		{name: "first value out of range", amount: "10000000000000000", code: validation.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateEntry(&dto.CreateEntryRequest{
				Journal: "bank",
				Lines:   []dto.EntryLineRequest{debitLine(accountA, tt.amount), creditLine(accountB, tt.amount)},
			})
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has("lines[0].debit", tt.code), "got %v", verrs)
			assert.True(t, verrs.Has("lines[1].credit", tt.code), "got %v", verrs)
			assert.False(t, verrs.Has("lines[0]", validation.CodeNoAmount))
		})
	}

	for _, amount := range []string{"1.1235", "1.10000", "9999999999999999.9999"} {
		_, err := v.ValidateEntry(&dto.CreateEntryRequest{
			Journal: "bank",
			Lines:   []dto.EntryLineRequest{debitLine(accountA, amount), creditLine(accountB, amount)},
		})
		assert.NoError(t, err, amount)
	}
}

func TestValidateEntry_TotalOutOfRange(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal: "operations",
		Lines: []dto.EntryLineRequest{
			debitLine(accountA, "6000000000000000"),
			debitLine(accountA, "6000000000000000"),
			creditLine(accountB, "6000000000000000"),
			creditLine(accountB, "6000000000000000"),
		},
	})
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("lines", validation.CodeOutOfRange), "got %v", verrs)
	assert.False(t, verrs.Has("lines", validation.CodeUnbalanced))
}

func TestValidateEntry_TimestampUsesClockLocation(t *testing.T) {
	lateEvening := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	v := validation.New(validation.WithClock(func() time.Time { return lateEvening }))
	build := func(date string) *dto.CreateEntryRequest {
		return &dto.CreateEntryRequest{
			Date:    date,
			Journal: "cash",
			Lines:   []dto.EntryLineRequest{debitLine(accountA, "1"), creditLine(accountB, "1")},
		}
	}

	// 20:00Z on the 15th, already the 16th in the writer's offset.
	entry, err := v.ValidateEntry(build("2024-03-16T01:00:00+05:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entry.Date)

	// 04:00Z on the 16th.
	_, err = v.ValidateEntry(build("2024-03-16T09:00:00+05:00"))
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("date", validation.CodeOutOfRange))
}

func TestBalanceTolerance(t *testing.T) {
	assert.True(t, validation.BalanceTolerance().Equal(dec("0.01")))
}

func TestValidateEntry_ToleranceBoundary(t *testing.T) {
	v := newValidator()
	build := func(debit string) *dto.CreateEntryRequest {
		return &dto.CreateEntryRequest{
			Journal: "sales",
			Lines:   []dto.EntryLineRequest{debitLine(accountA, debit), creditLine(accountB, "100")},
		}
	}

	_, err := v.ValidateEntry(build("100.01"))
	assert.NoError(t, err)

	_, err = v.ValidateEntry(build("99.99"))
	assert.NoError(t, err)

	_, err = v.ValidateEntry(build("100.011"))
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("lines", validation.CodeUnbalanced))
}

func TestValidateEntry_ManyLinesBalanced(t *testing.T) {
	v := newValidator()
	lines := []dto.EntryLineRequest{
		debitLine(accountA, "1180"),
		creditLine(accountB, "1000"),
		creditLine(accountB, "180"),
	}
	entry, err := v.ValidateEntry(&dto.CreateEntryRequest{Journal: "sales", Lines: lines})
	require.NoError(t, err)
	assert.True(t, entry.TotalCredit.Equal(dec("1180")))
	assert.Equal(t, []string{accountA, accountB}, entry.AccountIDs())
}

func TestValidateEntry_CollectsEveryError(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal:   "payroll",
		Reference: strings.Repeat("r", 51),
		Lines: []dto.EntryLineRequest{
			{Label: "no account", Debit: dec("10")},
			{Account: accountB, Label: strings.Repeat("é", 201), Credit: dec("10")},
			{Account: "1234", Label: "bad", Debit: dec("-5")},
		},
		Attachments: []string{
			"https://files.example.com/1.pdf", "https://files.example.com/2.pdf",
			"https://files.example.com/3.pdf", "https://files.example.com/4.pdf",
			"https://files.example.com/5.pdf", "https://files.example.com/6.pdf",
		},
	})

	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("journal", validation.CodeInvalidEnumValue))
	assert.True(t, verrs.Has("reference", validation.CodeOutOfRange))
	assert.True(t, verrs.Has("lines[0].account", validation.CodeMissingRequiredField))
	assert.True(t, verrs.Has("lines[1].label", validation.CodeOutOfRange))
	assert.True(t, verrs.Has("lines[2].account", validation.CodeInvalidFormat))
	assert.True(t, verrs.Has("lines[2].debit", validation.CodeOutOfRange))
	assert.True(t, verrs.Has("attachments", validation.CodeOutOfRange))
	assert.False(t, verrs.Has("lines", validation.CodeUnbalanced))
	assert.Len(t, verrs, 7)
}

func TestValidateEntry_MissingFields(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{})

	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("journal", validation.CodeMissingRequiredField))
	assert.True(t, verrs.Has("lines", validation.CodeMissingRequiredField))

	_, err = v.ValidateEntry(&dto.CreateEntryRequest{Journal: "sales", Lines: []dto.EntryLineRequest{}})
	verrs = requireValidationErrors(t, err)
	assert.True(t, verrs.Has("lines", validation.CodeTooFewLines))
}

func TestValidateEntry_BlankLabel(t *testing.T) {
	v := newValidator()
	line := creditLine(accountB, "10")
	line.Label = "   "
	_, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal: "sales",
		Lines:   []dto.EntryLineRequest{debitLine(accountA, "10"), line},
	})

	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("lines[1].label", validation.CodeMissingRequiredField))
}

func TestValidateEntry_RelatedDocumentAndAttachments(t *testing.T) {
	v := newValidator()
	base := func() *dto.CreateEntryRequest {
		return &dto.CreateEntryRequest{
			Journal: "sales",
			Lines:   []dto.EntryLineRequest{debitLine(accountA, "10"), creditLine(accountB, "10")},
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := base()
		req.RelatedDocument = &dto.RelatedDocumentRequest{Type: "Invoice", ID: " FAC-2024-001 "}
		req.Attachments = []string{"https://files.example.com/fac-2024-001.pdf"}

		entry, err := v.ValidateEntry(req)
		require.NoError(t, err)
		require.NotNil(t, entry.RelatedDocument)
		assert.Equal(t, domain.DocumentInvoice, entry.RelatedDocument.Type)
		assert.Equal(t, "FAC-2024-001", entry.RelatedDocument.ID)
		assert.Equal(t, []string{"https://files.example.com/fac-2024-001.pdf"}, entry.Attachments)
	})

	t.Run("bad document", func(t *testing.T) {
		req := base()
		req.RelatedDocument = &dto.RelatedDocumentRequest{Type: "contract"}

		_, err := v.ValidateEntry(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("relatedDocument.type", validation.CodeInvalidEnumValue))
		assert.True(t, verrs.Has("relatedDocument.id", validation.CodeMissingRequiredField))
	})

	t.Run("bad attachment", func(t *testing.T) {
		req := base()
		req.Attachments = []string{"https://files.example.com/ok.pdf", "not a url"}

		_, err := v.ValidateEntry(req)
		verrs := requireValidationErrors(t, err)
		assert.True(t, verrs.Has("attachments[1]", validation.CodeInvalidFormat), "got %v", verrs)
	})
}

func TestValidateEntry_Normalizes(t *testing.T) {
	v := newValidator()
	line := debitLine(strings.ToUpper(accountA), "25000")
	line.Label = "  Café et thé  "
	entry, err := v.ValidateEntry(&dto.CreateEntryRequest{
		Journal:     " Sales ",
		Description: "  Facture client  ",
		Lines:       []dto.EntryLineRequest{line, creditLine(accountB, "25000")},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.JournalSales, entry.Journal)
	assert.Equal(t, "Facture client", entry.Description)
	assert.Equal(t, accountA, entry.Lines[0].AccountID)
	assert.Equal(t, "Café et thé", entry.Lines[0].Label)
}

func TestValidateEntry_Idempotent(t *testing.T) {
	v := newValidator()
	good := &dto.CreateEntryRequest{
		Journal: "bank",
		Lines:   []dto.EntryLineRequest{debitLine(accountA, "75.50"), creditLine(accountB, "75.50")},
	}
	bad := &dto.CreateEntryRequest{
		Journal: "bank",
		Lines:   []dto.EntryLineRequest{debitLine(accountA, "75.50"), creditLine(accountB, "70")},
	}

	first, err1 := v.ValidateEntry(good)
	second, err2 := v.ValidateEntry(good)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, err1 = v.ValidateEntry(bad)
	_, err2 = v.ValidateEntry(bad)
	assert.Equal(t, err1, err2)
}

func TestValidateEntry_Concurrent(t *testing.T) {
	v := newValidator()
	req := &dto.CreateEntryRequest{
		Journal: "cash",
		Lines:   []dto.EntryLineRequest{debitLine(accountA, "3"), creditLine(accountB, "3")},
	}

	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = v.ValidateEntry(req)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestValidateEntry_NilInput(t *testing.T) {
	_, err := newValidator().ValidateEntry(nil)
	assert.ErrorIs(t, err, validation.ErrNilInput)
	assert.False(t, errors.Is(err, apperrors.ErrValidation))
}

func TestValidateLine(t *testing.T) {
	v := newValidator()

	line, err := v.ValidateLine(&dto.EntryLineRequest{Account: accountA, Label: " Loyer mars ", Debit: dec("150000"), Reference: "QUIT-03"})
	require.NoError(t, err)
	assert.Equal(t, "Loyer mars", line.Label)
	assert.True(t, line.IsDebit())
	assert.True(t, line.Credit.IsZero())

	_, err = v.ValidateLine(&dto.EntryLineRequest{Account: accountA, Label: "none"})
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("", validation.CodeNoAmount))

	_, err = v.ValidateLine(&dto.EntryLineRequest{Label: "x", Debit: dec("1"), Reference: strings.Repeat("r", 101)})
	verrs = requireValidationErrors(t, err)
	assert.True(t, verrs.Has("account", validation.CodeMissingRequiredField))
	assert.True(t, verrs.Has("reference", validation.CodeOutOfRange))

	_, err = v.ValidateLine(nil)
	assert.ErrorIs(t, err, validation.ErrNilInput)
}
