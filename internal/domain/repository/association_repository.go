package repository

import (
	"context"

	"fishers/internal/domain/entity"
)

// AssociationRepository persists the single association profile row.
type AssociationRepository interface {
	// Get returns the profile or ErrNotFound when it was never initialized.
	Get(ctx context.Context) (*entity.AssociationProfile, error)

	// GetForUpdate returns the profile and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context) (*entity.AssociationProfile, error)

	// CreateIfAbsent inserts the profile unless one exists. Concurrent callers
	// race on a unique key and at most one row is ever stored.
	CreateIfAbsent(ctx context.Context, profile *entity.AssociationProfile) error

	Update(ctx context.Context, profile *entity.AssociationProfile) error
}
