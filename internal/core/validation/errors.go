package validation

import (
	"errors"
	"strings"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
)

// ErrorCode classifies a field-level validation failure.
type ErrorCode string

const (
	CodeMissingRequiredField ErrorCode = "MissingRequiredField"
	CodeInvalidEnumValue     ErrorCode = "InvalidEnumValue"
	CodeInvalidFormat        ErrorCode = "InvalidFormat"
	CodeOutOfRange           ErrorCode = "OutOfRange"
	CodeDebitAndCredit       ErrorCode = "DebitAndCredit"
	CodeNoAmount             ErrorCode = "NoAmount"
	CodeUnbalanced           ErrorCode = "Unbalanced"
	CodeTooFewLines          ErrorCode = "TooFewLines"

	// Reported by the entry workflow once account existence has been checked.
	CodeUnknownAccount  ErrorCode = "UnknownAccount"
	CodeInactiveAccount ErrorCode = "InactiveAccount"
)

// ErrNilInput is returned when a nil request is passed to a validator.
// It signals a programming error and is not a validation failure.
var ErrNilInput = errors.New("validation: nil input")

// FieldError describes one failed rule.
type FieldError struct {
	Field   string         `json:"field"` // e.g. lines[2].debit
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is the complete list of failures for one call.
// It is never returned empty.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets callers match any validation failure with errors.Is(err, apperrors.ErrValidation).
func (v ValidationErrors) Unwrap() error {
	return apperrors.ErrValidation
}

// Has reports whether the list contains code for field.
func (v ValidationErrors) Has(field string, code ErrorCode) bool {
	_, ok := v.Find(field, code)
	return ok
}

// Find returns the first error with the given field and code.
func (v ValidationErrors) Find(field string, code ErrorCode) (FieldError, bool) {
	for _, e := range v {
		if e.Field == field && e.Code == code {
			return e, true
		}
	}
	return FieldError{}, false
}

// AsValidationErrors extracts the failure list from err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// collector accumulates failures across every rule of a call.
type collector struct {
	errs ValidationErrors
}

func (c *collector) add(field string, code ErrorCode, message string, params map[string]any) {
	c.errs = append(c.errs, FieldError{Field: field, Code: code, Message: message, Params: params})
}

func (c *collector) len() int {
	return len(c.errs)
}

// under reports whether any failure was recorded at path or below it.
func (c *collector) under(path string) bool {
	for _, e := range c.errs {
		if e.Field == path || strings.HasPrefix(e.Field, path+".") || strings.HasPrefix(e.Field, path+"[") {
			return true
		}
	}
	return false
}

// err returns nil when nothing failed, so callers never see a typed nil.
func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
