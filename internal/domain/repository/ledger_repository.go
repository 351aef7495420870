package repository

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerRepository defines the persistence operations for cash ledger entries.
type LedgerRepository interface {
	// Create persists an entry. An entry referencing a dues record that
	// already posted one yields ErrConflict.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	Update(ctx context.Context, entry *entity.LedgerEntry) error

	Delete(ctx context.Context, id uuid.UUID) error

	// List returns entries dated in the period, newest first.
	List(ctx context.Context, filter entity.PeriodFilter, limit int) ([]*entity.LedgerEntry, error)

	// Totals sums income and expense of the entries dated in the period.
	Totals(ctx context.Context, filter entity.PeriodFilter) (entity.LedgerTotals, error)
}
