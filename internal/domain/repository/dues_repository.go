package repository

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DuesRepository defines the persistence operations for dues records.
type DuesRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// same member and competency. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, record *entity.DuesRecord) (bool, error)

	// CreateManyIfAbsent inserts every record whose (member, competency) is free
	// and returns how many rows were inserted.
	CreateManyIfAbsent(ctx context.Context, records []*entity.DuesRecord) (int64, error)

	// FindByID retrieves a dues record with its member name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error)

	// FindByIDForUpdate retrieves a dues record and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error)

	// FindByReceiptNumber retrieves a paid record by its receipt number.
	FindByReceiptNumber(ctx context.Context, number int64) (*entity.DuesRecord, error)

	// ListByMember returns the member dues, newest competency first.
	// A non-nil year restricts the result to that calendar year.
	ListByMember(ctx context.Context, memberID uuid.UUID, year *int) ([]*entity.DuesRecord, error)

	// Update saves the mutable fields of a record.
	Update(ctx context.Context, record *entity.DuesRecord) error

	Delete(ctx context.Context, id uuid.UUID) error

	// NextReceiptNumber advances the receipt counter and returns the new value.
	// It must run inside a transaction.
	NextReceiptNumber(ctx context.Context) (int64, error)

	// CountByStatus counts records with the given status whose competency falls in the period.
	CountByStatus(ctx context.Context, status entity.DuesStatus, filter entity.PeriodFilter) (int64, error)

	// SumAmountByStatus sums the amounts of matching records, zero when none match.
	SumAmountByStatus(ctx context.Context, status entity.DuesStatus, filter entity.PeriodFilter) (decimal.Decimal, error)

	// CountPaidInYear counts the member paid records whose competency is in year.
	CountPaidInYear(ctx context.Context, memberID uuid.UUID, year int) (int64, error)

	// ListDebtors returns distinct members with a pending record in the period, ordered by name.
	ListDebtors(ctx context.Context, filter entity.PeriodFilter, limit int) ([]*entity.Debtor, error)
}
