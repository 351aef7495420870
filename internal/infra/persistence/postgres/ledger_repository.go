package postgres

import (
	"context"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ledgerRepository implements the domain.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (repo *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := fromLedgerDomain(entry)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("dues record already posted to the ledger")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDuesNotFound.WrapMessage("create ledger entry")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryM model.LedgerEntryModel
	if err := repo.db.WithContext(ctx).First(&entryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find ledger entry by ID")
	}

	return toLedgerDomain(&entryM), nil
}

func (repo *ledgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{ID: entry.ID}).
		Select("type", "category", "description", "amount", "date").
		Omit(clause.Associations).
		Updates(fromLedgerDomain(entry))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ledger entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLedgerEntryNotFound
	}

	return nil
}

func (repo *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ledger entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLedgerEntryNotFound
	}

	return nil
}

// List returns entries dated in the period, newest first.
func (repo *ledgerRepository) List(ctx context.Context, filter entity.PeriodFilter, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []*model.LedgerEntryModel
	err := repo.db.WithContext(ctx).
		Scopes(inPeriod("date", filter)).
		Order("date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLedgerDomain(entryM))
	}

	return entries, nil
}

// Totals sums income and expense of the period in one pass.
func (repo *ledgerRepository) Totals(ctx context.Context, filter entity.PeriodFilter) (entity.LedgerTotals, error) {
	var income, expense decimal.Decimal
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0), "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0)",
			string(entity.LedgerEntryIncome), string(entity.LedgerEntryExpense),
		).
		Scopes(inPeriod("date", filter)).
		Row().
		Scan(&income, &expense)
	if err != nil {
		return entity.LedgerTotals{}, errors.Wrap(err, "failed to sum ledger entries")
	}

	return entity.NewLedgerTotals(income, expense), nil
}
