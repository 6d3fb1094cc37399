package services

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// UserSvcFacade defines user management operations
type UserSvcFacade interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate checks credentials and returns the user.
	// Unknown users and wrong passwords both yield apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade issues access tokens
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
