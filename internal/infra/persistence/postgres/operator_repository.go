package postgres

import (
	"context"
	"strings"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

func (repo *operatorRepository) find(ctx context.Context, query string, arg any) (*entity.Operator, error) {
	var operatorM model.OperatorModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&operatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("operator not found")
		}

		return nil, errors.Wrap(err, "failed to find operator")
	}

	return toOperatorDomain(&operatorM), nil
}

func (repo *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	return repo.find(ctx, "id = ?", id)
}

func (repo *operatorRepository) FindByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	return repo.find(ctx, "username = ?", strings.ToLower(strings.TrimSpace(username)))
}

// Create stores usernames lower-cased so lookups stay index friendly.
func (repo *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	operator.Username = strings.ToLower(strings.TrimSpace(operator.Username))
	operatorM := fromOperatorDomain(operator)

	if err := repo.db.WithContext(ctx).Create(operatorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOperatorAlreadyExists.WrapMessage("create operator")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operator")
	}

	operator.ID = operatorM.ID
	operator.CreatedAt = operatorM.CreatedAt
	operator.UpdatedAt = operatorM.UpdatedAt

	return nil
}
