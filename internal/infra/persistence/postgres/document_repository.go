package postgres

import (
	"context"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentM := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMemberNotFound.WrapMessage("create document")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}
	document.ID = documentM.ID

	return nil
}

func (repo *documentRepository) FindByID(ctx context.Context, memberID, id uuid.UUID) (*entity.Document, error) {
	var documentM model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND member_id = ?", id, memberID).
		First(&documentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by ID")
	}

	return toDocumentDomain(&documentM), nil
}

func (repo *documentRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Document, error) {
	var documentModels []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("uploaded_at DESC").
		Find(&documentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list member documents")
	}

	documents := make([]*entity.Document, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toDocumentDomain(documentM))
	}

	return documents, nil
}

// LatestUploads reduces in memory: aggregated timestamps come back untyped from some drivers.
func (repo *documentRepository) LatestUploads(ctx context.Context, memberID uuid.UUID, types []entity.DocumentType) (map[entity.DocumentType]time.Time, error) {
	latest := make(map[entity.DocumentType]time.Time, len(types))
	if len(types) == 0 {
		return latest, nil
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}

	var documentModels []*model.DocumentModel
	err := repo.db.WithContext(ctx).
		Select("type", "uploaded_at").
		Where("member_id = ? AND type IN ?", memberID, names).
		Find(&documentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest document uploads")
	}

	for _, documentM := range documentModels {
		docType := entity.DocumentType(documentM.Type)
		if current, ok := latest[docType]; !ok || documentM.UploadedAt.After(current) {
			latest[docType] = documentM.UploadedAt
		}
	}

	return latest, nil
}
