package validation

import (
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// ValidateCreateAccount checks a new chart account. The class is derived from the number.
func (v *Validator) ValidateCreateAccount(req *dto.CreateAccountRequest) (*domain.Account, error) {
	if req == nil {
		return nil, ErrNilInput
	}
	in := dto.CreateAccountRequest{
		Number:      normalizeText(req.Number),
		Label:       normalizeText(req.Label),
		Description: normalizeText(req.Description),
	}
	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return nil, err
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return &domain.Account{
		Number:      in.Number,
		Label:       in.Label,
		Class:       domain.ClassOfNumber(in.Number),
		Description: in.Description,
		IsActive:    true,
	}, nil
}

// ValidateUpdateAccount checks a partial account update and returns it normalized.
func (v *Validator) ValidateUpdateAccount(req *dto.UpdateAccountRequest) (dto.UpdateAccountRequest, error) {
	if req == nil {
		return dto.UpdateAccountRequest{}, ErrNilInput
	}
	in := dto.UpdateAccountRequest{IsActive: req.IsActive}
	if req.Label != nil {
		label := normalizeText(*req.Label)
		in.Label = &label
	}
	if req.Description != nil {
		desc := normalizeText(*req.Description)
		in.Description = &desc
	}
	var c collector
	if err := v.check(&in, "", &c); err != nil {
		return dto.UpdateAccountRequest{}, err
	}
	if in.Label != nil && *in.Label == "" {
		c.add("label", CodeMissingRequiredField, "is required", nil)
	}
	if err := c.err(); err != nil {
		return dto.UpdateAccountRequest{}, err
	}
	return in, nil
}
