package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ResolveAccounts(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) SeedDefaultChart(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) entry(args mock.Arguments) (*domain.AccountingEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingEntry), args.Error(1)
}
func (m *MockEntryService) GetEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, entryID))
}
func (m *MockEntryService) SearchEntries(ctx context.Context, req dto.SearchEntriesRequest) (*domain.EntryPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryPage), args.Error(1)
}
func (m *MockEntryService) CheckEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, req))
}
func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, req, creatorUserID))
}
func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.CreateEntryRequest, userID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, entryID, req, userID))
}
func (m *MockEntryService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, entryID, userID))
}
func (m *MockEntryService) ApproveEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, entryID, userID))
}
func (m *MockEntryService) CancelEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return m.entry(m.Called(ctx, entryID, userID))
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) ClosePeriod(ctx context.Context, req dto.ClosePeriodRequest, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}
func (m *MockPeriodService) GetPeriod(ctx context.Context, period string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}
func (m *MockPeriodService) ListClosedPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}
func (m *MockPeriodService) EnsureOpen(ctx context.Context, date time.Time) error {
	return m.Called(ctx, date).Error(0)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, req dto.LedgerQueryRequest) (*domain.Ledger, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock UserService and TokenService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
