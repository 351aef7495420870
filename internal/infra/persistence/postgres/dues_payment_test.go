package postgres

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"fishers/config"
	"fishers/internal/domain/entity"
	"fishers/internal/usecase"
	"fishers/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoreDuesService(db *gorm.DB) usecase.DuesUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := NewTransactionManager(db)
	cfg := &config.Config{Association: &config.AssociationConfig{
		Name:              "Colônia de Pescadores Z-14",
		DefaultDuesAmount: "25.00",
	}}
	association := impl.NewAssociationService(txManager, nil, nil, cfg, logger)

	return impl.NewDuesService(txManager, association, logger)
}

func TestDuesService_ConcurrentPaymentsKeepReceiptsSequential(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dues := newStoreDuesService(db)
	member := createTestMember(t, db, "Sebastião Cardoso", "555.555.555-55")

	generated, err := dues.GenerateYear(ctx, member.ID, 2024)
	require.NoError(t, err)
	require.Equal(t, int64(12), generated.Created)

	year := 2024
	records, err := NewDuesRepository(db).ListByMember(ctx, member.ID, &year)
	require.NoError(t, err)
	require.Len(t, records, 12)

	custom := decimal.RequireFromString("30.00")
	paid := make([]*entity.DuesRecord, len(records))
	errs := make([]error, len(records))

	var wg sync.WaitGroup
	for i, record := range records {
		wg.Add(1)
		go func() {
			defer wg.Done()
			input := &usecase.PayDuesInput{PaymentMethod: "pix"}
			if i == 0 {
				input.Amount = &custom
			}
			paid[i], errs[i] = dues.Pay(ctx, record.ID, input)
		}()
	}
	wg.Wait()

	numbers := make([]int64, 0, len(paid))
	for i := range paid {
		require.NoError(t, errs[i])
		require.NotNil(t, paid[i].ReceiptNumber)
		assert.Len(t, paid[i].ReceiptToken, 16)
		numbers = append(numbers, *paid[i].ReceiptNumber)
	}
	slices.Sort(numbers)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, numbers)

	var postings, postedRecords int64
	require.NoError(t, db.Table("ledger_entries").Where("dues_record_id IS NOT NULL").Count(&postings).Error)
	require.NoError(t, db.Table("ledger_entries").Distinct("dues_record_id").Count(&postedRecords).Error)
	assert.Equal(t, int64(12), postings)
	assert.Equal(t, int64(12), postedRecords)

	first := paid[0]

	regenerated, err := dues.GenerateYear(ctx, member.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(0), regenerated.Created)
	assert.True(t, regenerated.AllExisted)

	stored, err := dues.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DuesStatusPaid, stored.Status)
	assert.True(t, custom.Equal(stored.Amount))
	require.NotNil(t, stored.ReceiptNumber)
	assert.Equal(t, *first.ReceiptNumber, *stored.ReceiptNumber)
	assert.Equal(t, first.ReceiptToken, stored.ReceiptToken)

	repaid, err := dues.Pay(ctx, first.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, *first.ReceiptNumber, *repaid.ReceiptNumber)
	assert.Equal(t, first.ReceiptToken, repaid.ReceiptToken)

	require.NoError(t, db.Table("ledger_entries").Where("dues_record_id IS NOT NULL").Count(&postings).Error)
	assert.Equal(t, int64(12), postings)
}
