package impl

import (
	"context"
	"testing"

	"fishers/internal/domain/entity"
	mockRepo "fishers/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_ComputePeriodReport(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReportService(txManager, newTestLogger())

	ctx := context.Background()
	filter := entity.ParsePeriodFilter("2024", "abc")
	debtors := []*entity.Debtor{{MemberID: uuid.New(), Name: "Ana"}, {MemberID: uuid.New(), Name: "Bruno"}}

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		duesRepo := mockRepo.NewMockDuesRepository(t)
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)

		memberRepo.EXPECT().Count(ctx).Return(int64(40), nil)
		duesRepo.EXPECT().CountByStatus(ctx, entity.DuesStatusPaid, filter).Return(int64(30), nil)
		duesRepo.EXPECT().CountByStatus(ctx, entity.DuesStatusPending, filter).Return(int64(6), nil)
		duesRepo.EXPECT().SumAmountByStatus(ctx, entity.DuesStatusPaid, filter).Return(decimal.RequireFromString("750.00"), nil)
		ledgerRepo.EXPECT().Totals(ctx, filter).Return(entity.NewLedgerTotals(decimal.NewFromInt(900), decimal.NewFromInt(350)), nil)
		duesRepo.EXPECT().ListDebtors(ctx, filter, entity.MaxReportDebtors).Return(debtors, nil)
	})

	report, err := service.ComputePeriodReport(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 2024, *report.Filter.Year)
	assert.Nil(t, report.Filter.Month)
	assert.Equal(t, int64(40), report.TotalMembers)
	assert.Equal(t, int64(30), report.PaidDuesCount)
	assert.Equal(t, int64(6), report.PendingDuesCount)
	assert.Equal(t, "750.00", report.PaidDuesAmount.StringFixed(2))
	assert.Equal(t, "550", report.Ledger.Balance.String())
	assert.Len(t, report.Debtors, 2)
}

func TestReportService_ComputePeriodReport_EmptyDebtors(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReportService(txManager, newTestLogger())
	ctx := context.Background()
	filter := entity.PeriodFilter{}

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		duesRepo := mockRepo.NewMockDuesRepository(t)
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)

		memberRepo.EXPECT().Count(ctx).Return(int64(0), nil)
		duesRepo.EXPECT().CountByStatus(ctx, entity.DuesStatusPaid, filter).Return(int64(0), nil)
		duesRepo.EXPECT().CountByStatus(ctx, entity.DuesStatusPending, filter).Return(int64(0), nil)
		duesRepo.EXPECT().SumAmountByStatus(ctx, entity.DuesStatusPaid, filter).Return(decimal.Zero, nil)
		ledgerRepo.EXPECT().Totals(ctx, filter).Return(entity.NewLedgerTotals(decimal.Zero, decimal.Zero), nil)
		duesRepo.EXPECT().ListDebtors(ctx, filter, entity.MaxReportDebtors).Return(nil, nil)
	})

	report, err := service.ComputePeriodReport(ctx, filter)

	require.NoError(t, err)
	assert.True(t, report.PaidDuesAmount.IsZero())
	assert.NotNil(t, report.Debtors)
	assert.Empty(t, report.Debtors)
}

func TestReportService_ComputePeriodReport_Error(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReportService(txManager, newTestLogger())
	ctx := context.Background()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDuesRepository().Return(mockRepo.NewMockDuesRepository(t))
		memberRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("connection reset"))
	})

	report, err := service.ComputePeriodReport(ctx, entity.PeriodFilter{})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to count members")
}
