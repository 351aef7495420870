// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DuesUsecase defines the dues lifecycle and generation operations.
type DuesUsecase interface {
	// Pay settles a pending record, assigns its receipt and posts the income to the ledger.
	// Paying a record that is already paid returns it unchanged.
	Pay(ctx context.Context, id uuid.UUID, input *PayDuesInput) (*entity.DuesRecord, error)
	// Exempt waives a pending record.
	Exempt(ctx context.Context, id uuid.UUID, note string) (*entity.DuesRecord, error)
	// Delete removes a record that has not been paid.
	Delete(ctx context.Context, id uuid.UUID) error
	// GenerateYear creates the missing pending records of every month of year.
	GenerateYear(ctx context.Context, memberID uuid.UUID, year int) (*GenerateYearResult, error)
	// AddSingle creates the pending record of one competency when absent.
	AddSingle(ctx context.Context, memberID uuid.UUID, competency string) (*AddSingleResult, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error)
}

// --- Input DTOs ---

// PayDuesInput defines the optional payment details. Nil fields keep the record values.
type PayDuesInput struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentDate   *time.Time       `json:"payment_date,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Note          string           `json:"note,omitempty"`
}

// --- Output DTOs ---

// GenerateYearResult reports how many records were created.
type GenerateYearResult struct {
	Year       int   `json:"year"`
	Created    int64 `json:"created"`
	AllExisted bool  `json:"all_existed"`
}

// AddSingleResult reports the competency handled and whether it was new.
type AddSingleResult struct {
	Competency time.Time `json:"competency"`
	Created    bool      `json:"created"`
}
