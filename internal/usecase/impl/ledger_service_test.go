package impl

import (
	"context"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	mockRepo "fishers/internal/mocks/repository"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service   usecase.LedgerUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return ledgerServiceFixtures{
		service:   NewLedgerService(txManager, newTestLogger()),
		txManager: txManager,
	}
}

func validLedgerInput() *usecase.LedgerEntryInput {
	return &usecase.LedgerEntryInput{
		Type:        entity.LedgerEntryExpense,
		Category:    " Combustível ",
		Description: "Barco de apoio",
		Amount:      decimal.RequireFromString("120.499"),
		Date:        time.Date(2024, time.May, 3, 16, 0, 0, 0, time.UTC),
	}
}

func TestLedgerService_List(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	filter := entity.ParsePeriodFilter("2024", "5")
	entries := []*entity.LedgerEntry{{ID: uuid.New()}, {ID: uuid.New()}}
	totals := entity.NewLedgerTotals(decimal.NewFromInt(100), decimal.NewFromInt(40))

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
		ledgerRepo.EXPECT().List(ctx, filter, MaxLedgerEntries).Return(entries, nil)
		ledgerRepo.EXPECT().Totals(ctx, filter).Return(totals, nil)
	})

	result, err := fx.service.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)
	assert.Equal(t, "60", result.Totals.Balance.String())
}

func TestLedgerService_Create(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
		ledgerRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
				return e.Category == "Combustível" &&
					e.Amount.Equal(decimal.RequireFromString("120.50")) &&
					e.Date.Equal(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)) &&
					e.DuesRecordID == nil
			})).
			Return(nil)
	})

	entry, err := fx.service.Create(ctx, validLedgerInput())

	require.NoError(t, err)
	assert.Equal(t, entity.LedgerEntryExpense, entry.Type)
}

func TestLedgerService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.LedgerEntryInput)
	}{
		{name: "bad type", mutate: func(in *usecase.LedgerEntryInput) { in.Type = "transfer" }},
		{name: "blank category", mutate: func(in *usecase.LedgerEntryInput) { in.Category = " " }},
		{name: "zero amount", mutate: func(in *usecase.LedgerEntryInput) { in.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(in *usecase.LedgerEntryInput) { in.Amount = decimal.NewFromInt(-5) }},
		{name: "missing date", mutate: func(in *usecase.LedgerEntryInput) { in.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLedgerService(t)
			input := validLedgerInput()
			tt.mutate(input)

			_, err := fx.service.Create(context.Background(), input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestLedgerService_Update(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	existing := &entity.LedgerEntry{ID: uuid.New(), Type: entity.LedgerEntryIncome, Category: "Doação"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
		ledgerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		ledgerRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	updated, err := fx.service.Update(ctx, existing.ID, validLedgerInput())

	require.NoError(t, err)
	assert.Equal(t, entity.LedgerEntryExpense, updated.Type)
	assert.Equal(t, "Combustível", updated.Category)
}

func TestLedgerService_DuesPostingsAreLocked(t *testing.T) {
	duesID := uuid.New()
	posting := &entity.LedgerEntry{ID: uuid.New(), Type: entity.LedgerEntryIncome, DuesRecordID: &duesID}

	t.Run("update", func(t *testing.T) {
		fx := createTestLedgerService(t)
		ctx := context.Background()
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			ledgerRepo := mockRepo.NewMockLedgerRepository(t)
			factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
			ledgerRepo.EXPECT().FindByID(ctx, posting.ID).Return(posting, nil)
		})

		_, err := fx.service.Update(ctx, posting.ID, validLedgerInput())

		assert.True(t, errors.Is(err, domainerrors.ErrLedgerEntryLocked))
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestLedgerService(t)
		ctx := context.Background()
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			ledgerRepo := mockRepo.NewMockLedgerRepository(t)
			factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
			ledgerRepo.EXPECT().FindByID(ctx, posting.ID).Return(posting, nil)
		})

		err := fx.service.Delete(ctx, posting.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrLedgerEntryLocked))
	})
}

func TestLedgerService_Delete(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	entry := &entity.LedgerEntry{ID: uuid.New(), Type: entity.LedgerEntryExpense}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)
		ledgerRepo.EXPECT().FindByID(ctx, entry.ID).Return(entry, nil)
		ledgerRepo.EXPECT().Delete(ctx, entry.ID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, entry.ID))
}
