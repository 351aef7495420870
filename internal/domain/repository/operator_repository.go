package repository

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// OperatorRepository defines the persistence operations for operator accounts.
type OperatorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// FindByUsername looks an operator up by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.Operator, error)

	Create(ctx context.Context, operator *entity.Operator) error
}
