package dto

import (
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Number      string `json:"number" validate:"required,syscohada_account"`
	Label       string `json:"label" validate:"required,max=150"`
	Description string `json:"description" validate:"max=500"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Label       *string `json:"label" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Class      int  `form:"class" binding:"omitempty,min=1,max=9"`
	ActiveOnly bool `form:"activeOnly"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string              `json:"accountID"`
	Number        string              `json:"number"`
	Label         string              `json:"label"`
	Class         domain.AccountClass `json:"class"`
	ClassName     string              `json:"className"`
	Description   string              `json:"description"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
// className is resolved by the caller from the chart.
func ToAccountResponse(acc *domain.Account, className string) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Number:        acc.Number,
		Label:         acc.Label,
		Class:         acc.Class,
		ClassName:     className,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}
