package services

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/platform/config"
	"github.com/SscSPs/ohada_ledger/internal/utils"
)

// tokenService issues JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...Option) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: newBaseService(opts), cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
}
