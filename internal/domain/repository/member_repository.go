// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// MemberRepository defines the persistence operations for members and their address.
type MemberRepository interface {
	// Create persists a new member together with its address, when present.
	// Duplicate national id or registration number yields ErrMemberAlreadyExists.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies the member and upserts its address.
	Update(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member with its address.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// List returns members ordered by name. A non-empty query matches
	// name, national id or registration number case-insensitively.
	List(ctx context.Context, query string) ([]*entity.Member, error)

	// Count returns the total number of members.
	Count(ctx context.Context) (int64, error)
}
