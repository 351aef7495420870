package repository

import (
	"context"
	"time"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentRepository defines the persistence operations for member documents.
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error

	// FindByID retrieves a document that belongs to the given member.
	FindByID(ctx context.Context, memberID, id uuid.UUID) (*entity.Document, error)

	// ListByMember returns the member documents, newest upload first.
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Document, error)

	// LatestUploads returns, for each requested type the member has uploaded,
	// the timestamp of the most recent upload.
	LatestUploads(ctx context.Context, memberID uuid.UUID, types []entity.DocumentType) (map[entity.DocumentType]time.Time, error)
}
