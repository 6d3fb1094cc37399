package services

import (
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	v := validation.New()

	container := &portssvc.ServiceContainer{}
	container.Account = NewAccountService(repos.AccountRepo, v)
	container.Period = NewPeriodService(repos.PeriodRepo, v)
	container.Entry = NewEntryService(repos.EntryRepo, container.Account, container.Period, v)
	container.Ledger = NewLedgerService(repos.LedgerRepo, v)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	return container
}
