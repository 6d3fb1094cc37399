package pgsql

import (
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		EntryRepo:   newPgxEntryRepository(dbPool),
		PeriodRepo:  newPgxPeriodRepository(dbPool),
		LedgerRepo:  newLedgerRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
