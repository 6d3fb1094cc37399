package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, class domain.AccountClass, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, class, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingEntry), args.Error(1)
}

func (m *MockEntryRepository) SearchEntries(ctx context.Context, filter domain.EntryFilter) (*domain.EntryPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryPage), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry *domain.AccountingEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepository) ReplaceEntry(ctx context.Context, entry domain.AccountingEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepository) UpdateEntryStatus(ctx context.Context, entry domain.AccountingEntry, from domain.EntryStatus) error {
	return m.Called(ctx, entry, from).Error(0)
}

// MockPeriodRepository is a mock type for the PeriodRepositoryFacade interface
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockPeriodRepository) SaveClosedPeriod(ctx context.Context, period domain.FiscalPeriod) error {
	return m.Called(ctx, period).Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) GetLedgerLines(ctx context.Context, filter domain.LedgerFilter) (*domain.Ledger, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) GetOpeningBalance(ctx context.Context, accountID string, before time.Time, statuses []domain.EntryStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, before, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) GetTrialBalanceRows(ctx context.Context, asOf time.Time, statuses []domain.EntryStatus) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

var (
	_ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)
	_ portsrepo.EntryRepositoryFacade   = (*MockEntryRepository)(nil)
	_ portsrepo.PeriodRepositoryFacade  = (*MockPeriodRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*MockLedgerRepository)(nil)
	_ portsrepo.UserRepositoryFacade    = (*MockUserRepository)(nil)
)
