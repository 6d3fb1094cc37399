package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SscSPs/ohada_ledger/internal/chart"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

const (
	accountCacheSize = 2048
	accountCacheTTL  = time.Minute
)

// accountService manages the chart of accounts. Lookups done while checking
// entries go through a small expiring cache.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	validator   *validation.Validator
	cache       *expirable.LRU[string, domain.Account]
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, v *validation.Validator, opts ...Option) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts),
		accountRepo: accountRepo,
		validator:   v,
		cache:       expirable.NewLRU[string, domain.Account](accountCacheSize, nil, accountCacheTTL),
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	account, err := s.validator.ValidateCreateAccount(&req)
	if err != nil {
		return nil, err
	}
	account.AccountID = uuid.NewString()
	account.AuditFields = domain.NewAuditFields(creatorUserID, s.Now())

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("number", account.Number))
		return nil, fmt.Errorf("failed to create account %s: %w", account.Number, err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("number", account.Number))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	s.cache.Add(account.AccountID, *account)
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.AccountClass(params.Class), params.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ResolveAccounts serves what it can from the cache and loads the rest in one query.
func (s *accountService) ResolveAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	var missing []string
	for _, id := range accountIDs {
		if acc, ok := s.cache.Get(id); ok {
			result[id] = acc
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := s.accountRepo.FindAccountsByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}
	for id, acc := range loaded {
		s.cache.Add(id, acc)
		result[id] = acc
	}
	return result, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	changes, err := s.validator.ValidateUpdateAccount(&req)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	if changes.Label != nil {
		account.Label = *changes.Label
	}
	if changes.Description != nil {
		account.Description = *changes.Description
	}
	if changes.IsActive != nil {
		account.IsActive = *changes.IsActive
	}
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.cache.Remove(accountID)
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	s.cache.Add(accountID, *account)

	s.LogInfo(ctx, "Account updated",
		slog.String("account_id", accountID),
		slog.Bool("is_active", account.IsActive))
	return account, nil
}

// SeedDefaultChart inserts the SYSCOHADA accounts whose number is not taken yet.
func (s *accountService) SeedDefaultChart(ctx context.Context, userID string) (int, error) {
	c, err := chart.Default()
	if err != nil {
		return 0, fmt.Errorf("failed to load default chart: %w", err)
	}

	now := s.Now()
	accounts := c.Accounts()
	for i := range accounts {
		accounts[i].AccountID = uuid.NewString()
		accounts[i].AuditFields = domain.NewAuditFields(userID, now)
	}

	inserted, err := s.accountRepo.SaveAccountsIfMissing(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts")
		return 0, fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	s.LogInfo(ctx, "Chart of accounts seeded",
		slog.String("chart", c.Name),
		slog.Int("inserted", inserted),
		slog.Int("total", len(accounts)))
	return inserted, nil
}
