package postgres

import (
	"context"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var associationUpdatableColumns = []string{
	"name", "president", "logo_key", "signature_key", "tax_id", "phone", "email",
	"street", "city", "state", "postal_code", "default_dues_amount",
}

// associationRepository implements the domain.AssociationRepository interface.
type associationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository is the constructor for associationRepository.
func NewAssociationRepository(db *gorm.DB) repository.AssociationRepository {
	return &associationRepository{db: db}
}

func (repo *associationRepository) first(db *gorm.DB) (*entity.AssociationProfile, error) {
	var profileM model.AssociationProfileModel
	if err := db.Where("singleton = ?", true).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("association profile not initialized")
		}

		return nil, errors.Wrap(err, "failed to find association profile")
	}

	return toAssociationDomain(&profileM), nil
}

func (repo *associationRepository) Get(ctx context.Context) (*entity.AssociationProfile, error) {
	return repo.first(repo.db.WithContext(ctx))
}

func (repo *associationRepository) GetForUpdate(ctx context.Context) (*entity.AssociationProfile, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

// CreateIfAbsent relies on the unique singleton column to drop the losing insert.
func (repo *associationRepository) CreateIfAbsent(ctx context.Context, profile *entity.AssociationProfile) error {
	profileM := fromAssociationDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton"}},
			DoNothing: true,
		}).
		Create(profileM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to initialize association profile")
	}

	return nil
}

func (repo *associationRepository) Update(ctx context.Context, profile *entity.AssociationProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssociationProfileModel{}).
		Where("id = ?", profile.ID).
		Select(associationUpdatableColumns).
		Updates(fromAssociationDomain(profile))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update association profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WithDetails("association profile not initialized")
	}

	return nil
}
