package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/ohada_ledger/internal/apperrors"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ohada_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
)

// entryService owns the lifecycle of accounting entries: it validates proposals,
// checks the referenced accounts and the period, and persists drafts and transitions.
type entryService struct {
	BaseService
	entryRepo  portsrepo.EntryRepositoryFacade
	accountSvc portssvc.AccountReaderSvc
	periodSvc  portssvc.PeriodSvcFacade
	validator  *validation.Validator
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, accountSvc portssvc.AccountReaderSvc, periodSvc portssvc.PeriodSvcFacade, v *validation.Validator, opts ...Option) portssvc.EntrySvcFacade {
	return &entryService{
		BaseService: newBaseService(opts),
		entryRepo:   entryRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		validator:   v,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// prepare runs the pure validation, then the checks that need storage.
func (s *entryService) prepare(ctx context.Context, req dto.CreateEntryRequest) (*domain.AccountingEntry, error) {
	entry, err := s.validator.ValidateEntry(&req)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.periodSvc.EnsureOpen(ctx, entry.Date); err != nil {
		return nil, err
	}
	return entry, nil
}

// checkAccounts reports every line whose account is unknown or inactive.
func (s *entryService) checkAccounts(ctx context.Context, entry *domain.AccountingEntry) error {
	accounts, err := s.accountSvc.ResolveAccounts(ctx, entry.AccountIDs())
	if err != nil {
		return err
	}

	var errs validation.ValidationErrors
	for i, line := range entry.Lines {
		field := fmt.Sprintf("lines[%d].account", i)
		acc, ok := accounts[line.AccountID]
		switch {
		case !ok:
			errs = append(errs, validation.FieldError{
				Field:   field,
				Code:    validation.CodeUnknownAccount,
				Message: "account does not exist",
				Params:  map[string]any{"account": line.AccountID},
			})
		case !acc.IsActive:
			errs = append(errs, validation.FieldError{
				Field:   field,
				Code:    validation.CodeInactiveAccount,
				Message: fmt.Sprintf("account %s is inactive", acc.Number),
				Params:  map[string]any{"account": line.AccountID, "number": acc.Number},
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *entryService) CheckEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.AccountingEntry, error) {
	return s.prepare(ctx, req)
}

func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.AccountingEntry, error) {
	entry, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = uuid.NewString()
	entry.AuditFields = domain.NewAuditFields(creatorUserID, s.Now())

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("number", entry.DisplayNumber()),
		slog.String("total", entry.TotalDebit.String()))
	return entry, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.CreateEntryRequest, userID string) (*domain.AccountingEntry, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	if existing.Status != domain.EntryDraft {
		return nil, fmt.Errorf("%w: entry %s is %s, only drafts can be edited", apperrors.ErrConflict, entryID, existing.Status)
	}
	if err := s.periodSvc.EnsureOpen(ctx, existing.Date); err != nil {
		return nil, err
	}

	entry, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = existing.EntryID
	entry.Number = existing.Number
	entry.AuditFields = existing.AuditFields
	entry.LastUpdatedAt = s.Now()
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.ReplaceEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to replace entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, entryID string) (*domain.AccountingEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *entryService) SearchEntries(ctx context.Context, req dto.SearchEntriesRequest) (*domain.EntryPage, error) {
	filter, err := s.validator.ValidateSearchEntry(&req)
	if err != nil {
		return nil, err
	}
	page, err := s.entryRepo.SearchEntries(ctx, *filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return page, nil
}

func (s *entryService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return s.transition(ctx, entryID, userID, domain.EntryPosted)
}

func (s *entryService) ApproveEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return s.transition(ctx, entryID, userID, domain.EntryValidated)
}

func (s *entryService) CancelEntry(ctx context.Context, entryID string, userID string) (*domain.AccountingEntry, error) {
	return s.transition(ctx, entryID, userID, domain.EntryCancelled)
}

// transition applies a lifecycle change in memory, then persists it only if no
// other writer moved the entry in between.
func (s *entryService) transition(ctx context.Context, entryID, userID string, next domain.EntryStatus) (*domain.AccountingEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	from := entry.Status
	if err := entry.Transition(next, userID, s.Now()); err != nil {
		return nil, err
	}
	if err := s.periodSvc.EnsureOpen(ctx, entry.Date); err != nil {
		return nil, err
	}

	if err := s.entryRepo.UpdateEntryStatus(ctx, *entry, from); err != nil {
		s.LogError(ctx, err, "Failed to update entry status",
			slog.String("entry_id", entryID),
			slog.String("from", string(from)),
			slog.String("to", string(next)))
		return nil, fmt.Errorf("failed to move entry %s to %s: %w", entryID, next, err)
	}

	s.LogInfo(ctx, "Entry status changed",
		slog.String("entry_id", entryID),
		slog.String("from", string(from)),
		slog.String("to", string(next)))
	return entry, nil
}
