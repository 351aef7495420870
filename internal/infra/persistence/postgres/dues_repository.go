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

var duesUpdatableColumns = []string{
	"amount", "status", "payment_date", "payment_method", "note", "receipt_number", "receipt_token",
}

// duesRepository implements the domain.DuesRepository interface.
type duesRepository struct {
	db *gorm.DB
}

// NewDuesRepository is the constructor for duesRepository.
func NewDuesRepository(db *gorm.DB) repository.DuesRepository {
	return &duesRepository{db: db}
}

func (repo *duesRepository) insertIgnoringDuplicates(ctx context.Context, duesModels []*model.DuesRecordModel) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "member_id"}, {Name: "competency"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(&duesModels)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrMemberNotFound.WrapMessage("create dues")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create dues records")
	}

	return result.RowsAffected, nil
}

// CreateIfAbsent inserts the record unless the member already has one for the competency.
func (repo *duesRepository) CreateIfAbsent(ctx context.Context, record *entity.DuesRecord) (bool, error) {
	duesM := fromDuesDomain(record)

	created, err := repo.insertIgnoringDuplicates(ctx, []*model.DuesRecordModel{duesM})
	if err != nil {
		return false, err
	}
	if created == 0 {
		return false, nil
	}

	record.ID = duesM.ID
	record.CreatedAt = duesM.CreatedAt
	record.UpdatedAt = duesM.UpdatedAt

	return true, nil
}

// CreateManyIfAbsent inserts all records in one statement, skipping taken competencies.
func (repo *duesRepository) CreateManyIfAbsent(ctx context.Context, records []*entity.DuesRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	duesModels := make([]*model.DuesRecordModel, 0, len(records))
	for _, record := range records {
		duesModels = append(duesModels, fromDuesDomain(record))
	}

	return repo.insertIgnoringDuplicates(ctx, duesModels)
}

func (repo *duesRepository) find(db *gorm.DB, conds ...any) (*entity.DuesRecord, error) {
	var duesM model.DuesRecordModel
	if err := db.Preload("Member").First(&duesM, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDuesNotFound
		}

		return nil, errors.Wrap(err, "failed to find dues record")
	}

	return toDuesDomain(&duesM), nil
}

func (repo *duesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error) {
	return repo.find(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate locks the row with SELECT ... FOR UPDATE.
func (repo *duesRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error) {
	db := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.find(db, "id = ?", id)
}

func (repo *duesRepository) FindByReceiptNumber(ctx context.Context, number int64) (*entity.DuesRecord, error) {
	return repo.find(repo.db.WithContext(ctx), "receipt_number = ?", number)
}

// ListByMember returns the member dues, newest competency first.
func (repo *duesRepository) ListByMember(ctx context.Context, memberID uuid.UUID, year *int) ([]*entity.DuesRecord, error) {
	var duesModels []*model.DuesRecordModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Scopes(inPeriod("competency", entity.PeriodFilter{Year: year})).
		Order("competency DESC").
		Find(&duesModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list member dues")
	}

	records := make([]*entity.DuesRecord, 0, len(duesModels))
	for _, duesM := range duesModels {
		records = append(records, toDuesDomain(duesM))
	}

	return records, nil
}

// Update saves the payment fields of a record.
func (repo *duesRepository) Update(ctx context.Context, record *entity.DuesRecord) error {
	duesM := fromDuesDomain(record)

	result := repo.db.WithContext(ctx).
		Model(&model.DuesRecordModel{ID: record.ID}).
		Select(duesUpdatableColumns).
		Omit(clause.Associations).
		Updates(duesM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("receipt number already assigned")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dues record")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDuesNotFound
	}

	return nil
}

func (repo *duesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DuesRecordModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDuesAlreadyPaid.WrapMessage("dues record has a ledger posting")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dues record")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDuesNotFound
	}

	return nil
}

// NextReceiptNumber increments the counter row in place; the row lock taken by
// the UPDATE serializes concurrent payments until the transaction ends.
func (repo *duesRepository) NextReceiptNumber(ctx context.Context) (int64, error) {
	db := repo.db.WithContext(ctx)

	increment := func() (int64, error) {
		result := db.Model(&model.ReceiptSequenceModel{}).
			Where("name = ?", model.ReceiptSequenceName).
			UpdateColumn("value", gorm.Expr("value + 1"))

		return result.RowsAffected, result.Error
	}

	affected, err := increment()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance receipt sequence")
	}
	if affected == 0 {
		if err := seedReceiptSequence(db); err != nil {
			return 0, err
		}
		if _, err := increment(); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance receipt sequence")
		}
	}

	var seq model.ReceiptSequenceModel
	if err := db.Where("name = ?", model.ReceiptSequenceName).First(&seq).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to read receipt sequence")
	}

	return seq.Value, nil
}

func (repo *duesRepository) CountByStatus(ctx context.Context, status entity.DuesStatus, filter entity.PeriodFilter) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.DuesRecordModel{}).
		Where("status = ?", status.String()).
		Scopes(inPeriod("competency", filter)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s dues", status)
	}

	return count, nil
}

func (repo *duesRepository) SumAmountByStatus(ctx context.Context, status entity.DuesStatus, filter entity.PeriodFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := repo.db.WithContext(ctx).
		Model(&model.DuesRecordModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status.String()).
		Scopes(inPeriod("competency", filter)).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "failed to sum %s dues", status)
	}

	return total, nil
}

func (repo *duesRepository) CountPaidInYear(ctx context.Context, memberID uuid.UUID, year int) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.DuesRecordModel{}).
		Where("member_id = ? AND status = ?", memberID, entity.DuesStatusPaid.String()).
		Scopes(inPeriod("competency", entity.PeriodFilter{Year: &year})).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count paid dues")
	}

	return count, nil
}

type debtorRow struct {
	ID                 uuid.UUID
	Name               string
	NationalID         string
	RegistrationNumber string
}

// ListDebtors returns members with a pending record in the period, ordered by name.
func (repo *duesRepository) ListDebtors(ctx context.Context, filter entity.PeriodFilter, limit int) ([]*entity.Debtor, error) {
	db := repo.db.WithContext(ctx)

	subquery := "SELECT 1 FROM dues_records d WHERE d.member_id = members.id AND d.status = ?"
	args := []any{entity.DuesStatusPending.String()}
	if cond, condArgs := periodCondition(db, "d.competency", filter); cond != "" {
		subquery += " AND " + cond
		args = append(args, condArgs...)
	}

	var rows []debtorRow
	err := db.Model(&model.MemberModel{}).
		Select("members.id, members.name, members.national_id, members.registration_number").
		Where("EXISTS ("+subquery+")", args...).
		Order("members.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list debtors")
	}

	debtors := make([]*entity.Debtor, 0, len(rows))
	for _, row := range rows {
		debtors = append(debtors, &entity.Debtor{
			MemberID:           row.ID,
			Name:               row.Name,
			NationalID:         row.NationalID,
			RegistrationNumber: row.RegistrationNumber,
		})
	}

	return debtors, nil
}

func seedReceiptSequence(db *gorm.DB) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ReceiptSequenceModel{Name: model.ReceiptSequenceName}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed receipt sequence")
	}

	return nil
}
