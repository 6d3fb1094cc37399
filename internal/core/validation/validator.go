// Package validation checks proposed accounting writes and read-side filters.
//
// Every operation is pure: it never logs or performs I/O, and it reports all
// failures of a call at once as ValidationErrors keyed by field path.
// A Validator is safe for concurrent use.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var balanceTolerance = decimal.New(1, -2)

// BalanceTolerance is the largest accepted gap between total debit and total credit.
// It is fixed at 0.01.
func BalanceTolerance() decimal.Decimal {
	return balanceTolerance
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxAmountScale is the number of decimal places amounts are stored with.
	MaxAmountScale = 4
)

// maxAmount is the first value amounts and entry totals cannot reach (NUMERIC(20,4)).
var maxAmount = decimal.New(1, 16)

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used for date defaults and future-date checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// Validator holds the compiled rule set.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds a Validator with the accounting tags registered.
func New(opts ...Option) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := validate.RegisterValidation("entrydate", isEntryDate); err != nil {
		panic(err)
	}
	validate.RegisterAlias("syscohada_account", "number,min=2,max=12,startsnotwith=0")

	v := &Validator{validate: validate, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// today is the current calendar date as a UTC midnight.
func (v *Validator) today() time.Time {
	y, m, d := v.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// check runs the struct tags of s and records failures under prefix.
// Only a misuse of the underlying validator is returned as an error.
func (v *Validator) check(s any, prefix string, c *collector) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	for _, fe := range verrs {
		code := codeFor(fe)
		c.add(joinPath(prefix, stripRoot(fe.Namespace())), code, messageFor(fe, code), paramsFor(fe))
	}
	return nil
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func isEntryDate(fl validator.FieldLevel) bool {
	_, _, err := parseEntryTime(fl.Field().String())
	return err == nil
}

// parseEntryTime accepts YYYY-MM-DD or RFC3339. dateOnly reports the first form.
func parseEntryTime(s string) (t time.Time, dateOnly bool, err error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}

// entryDate returns the calendar date of s as a UTC midnight. A timestamp is
// first moved to the clock's location so it compares with today.
func (v *Validator) entryDate(s string) (time.Time, error) {
	t, dateOnly, err := parseEntryTime(s)
	if err != nil || dateOnly {
		return t, err
	}
	y, m, d := t.In(v.now().Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// stripRoot drops the struct type name from a validator namespace.
func stripRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func joinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

func codeFor(fe validator.FieldError) ErrorCode {
	switch fe.Tag() {
	case "required":
		return CodeMissingRequiredField
	case "oneof":
		return CodeInvalidEnumValue
	case "min":
		if fe.Field() == "lines" {
			return CodeTooFewLines
		}
		return CodeOutOfRange
	case "max", "gte", "lte", "gt", "lt":
		return CodeOutOfRange
	default:
		return CodeInvalidFormat
	}
}

func messageFor(fe validator.FieldError, code ErrorCode) string {
	switch code {
	case CodeMissingRequiredField:
		return "is required"
	case CodeInvalidEnumValue:
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case CodeTooFewLines:
		return fmt.Sprintf("an entry needs at least %s lines", fe.Param())
	case CodeOutOfRange:
		return rangeMessage(fe)
	}

	switch fe.Tag() {
	case "uuid":
		return "must be a valid identifier"
	case "url":
		return "must be a valid URL"
	case "entrydate":
		return "must be a date in YYYY-MM-DD or RFC3339 format"
	case "datetime":
		if fe.Param() == "2006-01" {
			return "must be a period in YYYY-MM format"
		}
		return "must be a date in YYYY-MM-DD format"
	case "syscohada_account":
		return "must be a SYSCOHADA account number of 2 to 12 digits not starting with 0"
	case "numeric", "number":
		return "must be a number"
	}
	return "is invalid"
}

func rangeMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		if fe.Tag() == "min" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain at most %s items", fe.Param())
	}
	switch fe.Tag() {
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "must be at most " + fe.Param()
	}
}

func paramsFor(fe validator.FieldError) map[string]any {
	switch fe.Tag() {
	case "oneof":
		return map[string]any{"allowed": strings.Fields(fe.Param())}
	case "min", "max", "gte", "lte", "gt", "lt":
		return map[string]any{"limit": fe.Param()}
	case "datetime":
		return map[string]any{"layout": fe.Param()}
	}
	return nil
}

// normalizeText trims surrounding space and applies Unicode NFC.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// normalizeCode trims and lower-cases an enumeration value.
func normalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
