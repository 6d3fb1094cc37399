package validation_test

import (
	"testing"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateAccount(t *testing.T) {
	v := newValidator()

	acc, err := v.ValidateCreateAccount(&dto.CreateAccountRequest{Number: " 4111 ", Label: "Clients - ventes locales"})
	require.NoError(t, err)
	assert.Equal(t, "4111", acc.Number)
	assert.Equal(t, domain.ClassThirdParties, acc.Class)
	assert.True(t, acc.IsActive)

	for _, number := range []string{"0123", "4", "41a", "1234567890123", "-411"} {
		t.Run(number, func(t *testing.T) {
			_, err := v.ValidateCreateAccount(&dto.CreateAccountRequest{Number: number, Label: "x"})
			verrs := requireValidationErrors(t, err)
			assert.True(t, verrs.Has("number", validation.CodeInvalidFormat), "got %v", verrs)
		})
	}
}

func TestValidateUpdateAccount(t *testing.T) {
	v := newValidator()
	label := "  Banques locales "
	active := false

	upd, err := v.ValidateUpdateAccount(&dto.UpdateAccountRequest{Label: &label, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, "Banques locales", *upd.Label)
	assert.Nil(t, upd.Description)

	blank := "   "
	_, err = v.ValidateUpdateAccount(&dto.UpdateAccountRequest{Label: &blank})
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("label", validation.CodeMissingRequiredField))
}
