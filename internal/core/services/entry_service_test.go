package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	clientsAccount = "0b9d6a4e-6f0c-4d51-9a55-3f7e8b0c2d11"
	salesAccount   = "5c2f8e1a-3b4d-4e6f-8a9b-0c1d2e3f4a5b"
	testUserID     = "9e107d9d-372b-4a5e-8f1c-2d3e4f5a6b7c"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		clientsAccount: {AccountID: clientsAccount, Number: "411", Label: "Clients", Class: 4, IsActive: true},
		salesAccount:   {AccountID: salesAccount, Number: "701", Label: "Ventes de marchandises", Class: 7, IsActive: true},
	}
}

func saleRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date:    "2024-03-10",
		Journal: "sales",
		Lines: []dto.EntryLineRequest{
			{Account: clientsAccount, Label: "Facture F-001", Debit: decimal.NewFromInt(118000)},
			{Account: salesAccount, Label: "Facture F-001", Credit: decimal.NewFromInt(118000)},
		},
	}
}

type EntryServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	entryRepo   *MockEntryRepository
	accountRepo *MockAccountRepository
	periodRepo  *MockPeriodRepository
	service     portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.entryRepo = new(MockEntryRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.periodRepo = new(MockPeriodRepository)

	v := validation.New(validation.WithClock(fixedClock))
	accountSvc := services.NewAccountService(suite.accountRepo, v, services.WithClock(fixedClock))
	periodSvc := services.NewPeriodService(suite.periodRepo, v, services.WithClock(fixedClock))
	suite.service = services.NewEntryService(suite.entryRepo, accountSvc, periodSvc, v, services.WithClock(fixedClock))
}

func (suite *EntryServiceTestSuite) expectOpenPeriod(period string) {
	suite.periodRepo.On("FindPeriod", suite.ctx, period).Return(nil, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(activeAccounts(), nil).Once()
	suite.expectOpenPeriod("2024-03")
	suite.entryRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("*domain.AccountingEntry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.AccountingEntry).Number = 42
		}).
		Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, saleRequest(), testUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(int64(42), entry.Number)
	suite.Equal("VT-000042", entry.DisplayNumber())
	suite.Equal(domain.EntryDraft, entry.Status)
	suite.Equal(testUserID, entry.CreatedBy)
	suite.Equal(fixedNow, entry.CreatedAt)
	suite.True(entry.TotalDebit.Equal(decimal.NewFromInt(118000)))
	suite.entryRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UnknownAndInactiveAccounts() {
	inactive := map[string]domain.Account{
		clientsAccount: {AccountID: clientsAccount, Number: "411", IsActive: false},
	}
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(inactive, nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, saleRequest(), testUserID)

	suite.Nil(entry)
	verrs, ok := validation.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Len(verrs, 2)
	suite.True(verrs.Has("lines[0].account", validation.CodeInactiveAccount))
	suite.True(verrs.Has("lines[1].account", validation.CodeUnknownAccount))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_InvalidPayloadSkipsStorage() {
	req := saleRequest()
	req.Lines[1].Credit = decimal.NewFromInt(100000)

	entry, err := suite.service.CreateEntry(suite.ctx, req, testUserID)

	suite.Nil(entry)
	verrs, ok := validation.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.True(verrs.Has("lines", validation.CodeUnbalanced))
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
	suite.periodRepo.AssertNotCalled(suite.T(), "FindPeriod", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_ClosedPeriod() {
	closedAt := fixedNow
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(activeAccounts(), nil).Once()
	suite.periodRepo.On("FindPeriod", suite.ctx, "2024-03").Return(&domain.FiscalPeriod{Period: "2024-03", ClosedAt: &closedAt}, nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, saleRequest(), testUserID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCheckEntry_DoesNotPersist() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(activeAccounts(), nil).Once()
	suite.expectOpenPeriod("2024-03")

	entry, err := suite.service.CheckEntry(suite.ctx, saleRequest())

	suite.Require().NoError(err)
	suite.Empty(entry.EntryID)
	suite.Len(entry.Lines, 2)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCheckEntry_UsesAccountCache() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(activeAccounts(), nil).Once()
	suite.expectOpenPeriod("2024-03")

	_, err := suite.service.CheckEntry(suite.ctx, saleRequest())
	suite.Require().NoError(err)
	_, err = suite.service.CheckEntry(suite.ctx, saleRequest())
	suite.Require().NoError(err)

	suite.accountRepo.AssertNumberOfCalls(suite.T(), "FindAccountsByIDs", 1)
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_Success() {
	entryID := "3f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b"
	existing := &domain.AccountingEntry{
		EntryID:     entryID,
		Number:      7,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Journal:     domain.JournalSales,
		Status:      domain.EntryDraft,
		AuditFields: domain.NewAuditFields("creator", fixedNow.Add(-time.Hour)),
	}
	suite.entryRepo.On("FindEntryByID", suite.ctx, entryID).Return(existing, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, []string{clientsAccount, salesAccount}).Return(activeAccounts(), nil).Once()
	suite.expectOpenPeriod("2024-03")
	suite.entryRepo.On("ReplaceEntry", suite.ctx, mock.MatchedBy(func(e domain.AccountingEntry) bool {
		return e.EntryID == entryID && e.Number == 7 && e.CreatedBy == "creator" && e.LastUpdatedBy == testUserID
	})).Return(nil).Once()

	entry, err := suite.service.UpdateEntry(suite.ctx, entryID, saleRequest(), testUserID)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), entry.Date)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_OnlyDrafts() {
	entryID := "3f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b"
	suite.entryRepo.On("FindEntryByID", suite.ctx, entryID).
		Return(&domain.AccountingEntry{EntryID: entryID, Status: domain.EntryPosted}, nil).Once()

	entry, err := suite.service.UpdateEntry(suite.ctx, entryID, saleRequest(), testUserID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestGetEntry_NotFound() {
	suite.entryRepo.On("FindEntryByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(suite.ctx, "missing")

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestPostEntry_Success() {
	entryID := "3f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b"
	suite.entryRepo.On("FindEntryByID", suite.ctx, entryID).Return(&domain.AccountingEntry{
		EntryID: entryID,
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.EntryDraft,
	}, nil).Once()
	suite.expectOpenPeriod("2024-03")
	suite.entryRepo.On("UpdateEntryStatus", suite.ctx, mock.MatchedBy(func(e domain.AccountingEntry) bool {
		return e.Status == domain.EntryPosted && e.PostedBy == testUserID
	}), domain.EntryDraft).Return(nil).Once()

	entry, err := suite.service.PostEntry(suite.ctx, entryID, testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryPosted, entry.Status)
	suite.Require().NotNil(entry.PostedAt)
	suite.Equal(fixedNow, *entry.PostedAt)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestApproveEntry_FromDraftIsRejected() {
	entryID := "3f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b"
	suite.entryRepo.On("FindEntryByID", suite.ctx, entryID).
		Return(&domain.AccountingEntry{EntryID: entryID, Status: domain.EntryDraft}, nil).Once()

	entry, err := suite.service.ApproveEntry(suite.ctx, entryID, testUserID)

	suite.Nil(entry)
	var transitionErr *domain.InvalidTransitionError
	suite.Require().True(errors.As(err, &transitionErr))
	suite.Equal(domain.EntryValidated, transitionErr.To)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCancelEntry_LostRace() {
	entryID := "3f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b"
	suite.entryRepo.On("FindEntryByID", suite.ctx, entryID).Return(&domain.AccountingEntry{
		EntryID: entryID,
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.EntryPosted,
	}, nil).Once()
	suite.expectOpenPeriod("2024-03")
	suite.entryRepo.On("UpdateEntryStatus", suite.ctx, mock.Anything, domain.EntryPosted).Return(apperrors.ErrConflict).Once()

	entry, err := suite.service.CancelEntry(suite.ctx, entryID, testUserID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *EntryServiceTestSuite) TestSearchEntries_Defaults() {
	page := &domain.EntryPage{Entries: []domain.AccountingEntry{}, Total: 0, Page: domain.Page{Number: 1, Size: 20}}
	suite.entryRepo.On("SearchEntries", suite.ctx, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.SortBy == "date" && f.SortOrder == domain.SortDesc && f.Page == domain.Page{Number: 1, Size: 20} && f.Query == "loyer"
	})).Return(page, nil).Once()

	got, err := suite.service.SearchEntries(suite.ctx, dto.SearchEntriesRequest{Q: "  loyer "})

	suite.Require().NoError(err)
	suite.Equal(page, got)
}

func (suite *EntryServiceTestSuite) TestSearchEntries_InvalidFilters() {
	got, err := suite.service.SearchEntries(suite.ctx, dto.SearchEntriesRequest{Status: "archived", Limit: 500})

	suite.Nil(got)
	verrs, ok := validation.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.True(verrs.Has("status", validation.CodeInvalidEnumValue))
	suite.True(verrs.Has("limit", validation.CodeOutOfRange))
	suite.entryRepo.AssertNotCalled(suite.T(), "SearchEntries", mock.Anything, mock.Anything)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
