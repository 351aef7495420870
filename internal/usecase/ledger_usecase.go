package usecase

import (
	"context"
	"time"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerUsecase defines the cash ledger operations.
// Entries posted by dues payments are read-only.
type LedgerUsecase interface {
	List(ctx context.Context, filter entity.PeriodFilter) (*LedgerListResult, error)
	Create(ctx context.Context, input *LedgerEntryInput) (*entity.LedgerEntry, error)
	Update(ctx context.Context, id uuid.UUID, input *LedgerEntryInput) (*entity.LedgerEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerEntryInput defines the data of a manual ledger entry.
type LedgerEntryInput struct {
	Type        entity.LedgerEntryType `json:"type" validate:"required,oneof=income expense"`
	Category    string                 `json:"category" validate:"required,max=80"`
	Description string                 `json:"description" validate:"max=255"`
	Amount      decimal.Decimal        `json:"amount"`
	Date        time.Time              `json:"date" validate:"required"`
}

// LedgerListResult holds the entries of a period and their totals.
type LedgerListResult struct {
	Filter  entity.PeriodFilter   `json:"filter"`
	Entries []*entity.LedgerEntry `json:"entries"`
	Totals  entity.LedgerTotals   `json:"totals"`
}
