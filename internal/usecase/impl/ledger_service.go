package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxLedgerEntries caps the entries returned by a ledger listing.
const MaxLedgerEntries = 200

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(txManager repository.TransactionManager, logger *slog.Logger) usecase.LedgerUsecase {
	return &ledgerService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the newest entries of the period with the totals of the whole period.
func (srv *ledgerService) List(ctx context.Context, filter entity.PeriodFilter) (*usecase.LedgerListResult, error) {
	result := &usecase.LedgerListResult{Filter: filter}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.NewLedgerRepository()

		var err error
		if result.Entries, err = ledgerRepo.List(ctx, filter, MaxLedgerEntries); err != nil {
			return errors.Wrap(err, "failed to list ledger entries")
		}
		if result.Totals, err = ledgerRepo.Totals(ctx, filter); err != nil {
			return errors.Wrap(err, "failed to total ledger entries")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list ledger", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list ledger")
	}
	if result.Entries == nil {
		result.Entries = []*entity.LedgerEntry{}
	}

	return result, nil
}

// Create records a manual entry.
func (srv *ledgerService) Create(ctx context.Context, input *usecase.LedgerEntryInput) (*entity.LedgerEntry, error) {
	if err := validateLedgerInput(input); err != nil {
		return nil, err
	}

	entry := &entity.LedgerEntry{}
	applyLedgerInput(entry, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewLedgerRepository().Create(ctx, entry), "failed to create ledger entry")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create ledger entry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create ledger entry")
	}
	srv.log(ctx).Info("Ledger entry created", slog.Any("entry_id", entry.ID), slog.String("type", string(entry.Type)))

	return entry, nil
}

// Update changes a manual entry. Entries posted by dues payments are locked.
func (srv *ledgerService) Update(ctx context.Context, id uuid.UUID, input *usecase.LedgerEntryInput) (*entity.LedgerEntry, error) {
	if err := validateLedgerInput(input); err != nil {
		return nil, err
	}

	var updated *entity.LedgerEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.NewLedgerRepository()

		entry, err := ledgerRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find ledger entry")
		}
		if entry.IsDuesPosting() {
			return domainerrors.ErrLedgerEntryLocked
		}

		applyLedgerInput(entry, input)
		if err := ledgerRepo.Update(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to update ledger entry")
		}
		updated = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update ledger entry", slog.Any("error", err), slog.Any("entry_id", id))

		return nil, errors.Wrap(err, "failed to update ledger entry")
	}
	srv.log(ctx).Info("Ledger entry updated", slog.Any("entry_id", id))

	return updated, nil
}

// Delete removes a manual entry. Entries posted by dues payments are locked.
func (srv *ledgerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.NewLedgerRepository()

		entry, err := ledgerRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find ledger entry")
		}
		if entry.IsDuesPosting() {
			return domainerrors.ErrLedgerEntryLocked
		}

		return errors.Wrap(ledgerRepo.Delete(ctx, id), "failed to delete ledger entry")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete ledger entry", slog.Any("error", err), slog.Any("entry_id", id))

		return errors.Wrap(err, "failed to delete ledger entry")
	}
	srv.log(ctx).Info("Ledger entry deleted", slog.Any("entry_id", id))

	return nil
}

func validateLedgerInput(input *usecase.LedgerEntryInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("entry is required")
	case !input.Type.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("type must be income or expense")
	case strings.TrimSpace(input.Category) == "":
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	case !input.Amount.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	case input.Date.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("date is required")
	}

	return nil
}

func applyLedgerInput(entry *entity.LedgerEntry, input *usecase.LedgerEntryInput) {
	entry.Type = input.Type
	entry.Category = strings.TrimSpace(input.Category)
	entry.Description = strings.TrimSpace(input.Description)
	entry.Amount = input.Amount.Round(2)
	entry.Date = dateOnly(input.Date)
}
