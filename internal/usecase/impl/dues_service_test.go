package impl

import (
	"context"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	mockRepo "fishers/internal/mocks/repository"
	mockUsecase "fishers/internal/mocks/usecase"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// duesServiceFixtures holds all test dependencies for dues service tests.
type duesServiceFixtures struct {
	service     *duesService
	txManager   *mockRepo.MockTransactionManager
	association *mockUsecase.MockAssociationUsecase
}

func createTestDuesService(t *testing.T) duesServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	association := mockUsecase.NewMockAssociationUsecase(t)

	srv := NewDuesService(txManager, association, newTestLogger()).(*duesService)
	srv.now = fixedClock

	return duesServiceFixtures{
		service:     srv,
		txManager:   txManager,
		association: association,
	}
}

func pendingDues(memberName string) *entity.DuesRecord {
	return &entity.DuesRecord{
		ID:         uuid.New(),
		MemberID:   uuid.New(),
		MemberName: memberName,
		Competency: entity.NewCompetency(2024, time.March),
		Amount:     decimal.RequireFromString("25.00"),
		Status:     entity.DuesStatusPending,
	}
}

func TestDuesService_Pay_Pending(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("João da Silva")
	amount := decimal.RequireFromString("30.5")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)

		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
		duesRepo.EXPECT().NextReceiptNumber(ctx).Return(int64(7), nil)
		duesRepo.EXPECT().Update(ctx, record).Return(nil)
		ledgerRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(entry *entity.LedgerEntry) bool {
				return entry.Type == entity.LedgerEntryIncome &&
					entry.Category == entity.LedgerCategoryDues &&
					entry.Description == "Dues 03/2024 - João da Silva" &&
					entry.Amount.Equal(decimal.RequireFromString("30.50")) &&
					entry.Date.Equal(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)) &&
					entry.DuesRecordID != nil && *entry.DuesRecordID == record.ID
			})).
			Return(nil)
	})

	paid, err := fx.service.Pay(ctx, record.ID, &usecase.PayDuesInput{Amount: &amount, PaymentMethod: "PIX"})

	require.NoError(t, err)
	assert.Equal(t, entity.DuesStatusPaid, paid.Status)
	require.NotNil(t, paid.ReceiptNumber)
	assert.Equal(t, int64(7), *paid.ReceiptNumber)
	assert.Len(t, paid.ReceiptToken, 16)
	assert.Equal(t, "PIX", paid.PaymentMethod)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), *paid.PaymentDate)
}

func TestDuesService_Pay_ExplicitDateKeepsAmount(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")
	paymentDate := time.Date(2024, time.April, 2, 18, 45, 0, 0, time.UTC)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)

		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
		duesRepo.EXPECT().NextReceiptNumber(ctx).Return(int64(1), nil)
		duesRepo.EXPECT().Update(ctx, record).Return(nil)
		ledgerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).Return(nil)
	})

	paid, err := fx.service.Pay(ctx, record.ID, &usecase.PayDuesInput{PaymentDate: &paymentDate})

	require.NoError(t, err)
	assert.True(t, paid.Amount.Equal(decimal.RequireFromString("25")))
	assert.Equal(t, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), *paid.PaymentDate)
}

func TestDuesService_Pay_AlreadyPaidIsNoop(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")
	number := int64(3)
	paidOn := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	record.Status = entity.DuesStatusPaid
	record.ReceiptNumber = &number
	record.ReceiptToken = "0123456789abcdef"
	record.PaymentDate = &paidOn

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
	})

	amount := decimal.RequireFromString("99")
	paid, err := fx.service.Pay(ctx, record.ID, &usecase.PayDuesInput{Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, int64(3), *paid.ReceiptNumber)
	assert.Equal(t, "0123456789abcdef", paid.ReceiptToken)
	assert.True(t, paid.Amount.Equal(decimal.RequireFromString("25")))
	assert.Equal(t, paidOn, *paid.PaymentDate)
}

func TestDuesService_Pay_ExemptNotPayable(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")
	record.Status = entity.DuesStatusExempt

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
	})

	_, err := fx.service.Pay(ctx, record.ID, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuesNotPayable))
}

func TestDuesService_Pay_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestDuesService(t)

	for _, raw := range []string{"0", "-10"} {
		amount := decimal.RequireFromString(raw)
		_, err := fx.service.Pay(context.Background(), uuid.New(), &usecase.PayDuesInput{Amount: &amount})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), raw)
	}
}

func TestDuesService_Pay_LedgerFailureAbortsPayment(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		ledgerRepo := mockRepo.NewMockLedgerRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewLedgerRepository().Return(ledgerRepo)

		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
		duesRepo.EXPECT().NextReceiptNumber(ctx).Return(int64(12), nil)
		duesRepo.EXPECT().Update(ctx, record).Return(nil)
		ledgerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).Return(errors.New("disk full"))
	})

	paid, err := fx.service.Pay(ctx, record.ID, nil)

	require.Error(t, err)
	assert.Nil(t, paid)
	assert.Contains(t, err.Error(), "failed to post dues payment to the ledger")
}

func TestDuesService_Pay_NotFound(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, domainerrors.ErrDuesNotFound)
	})

	_, err := fx.service.Pay(ctx, id, nil)

	assert.True(t, errors.Is(err, domainerrors.ErrDuesNotFound))
}

func TestDuesService_Exempt(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
		duesRepo.EXPECT().Update(ctx, record).Return(nil)
	})

	exempted, err := fx.service.Exempt(ctx, record.ID, "doença")

	require.NoError(t, err)
	assert.Equal(t, entity.DuesStatusExempt, exempted.Status)
	assert.Equal(t, "doença", exempted.Note)
}

func TestDuesService_Exempt_InvalidStates(t *testing.T) {
	tests := []struct {
		name   string
		status entity.DuesStatus
		want   error
	}{
		{name: "paid", status: entity.DuesStatusPaid, want: domainerrors.ErrDuesAlreadyPaid},
		{name: "exempt", status: entity.DuesStatusExempt, want: domainerrors.ErrDuesNotPayable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDuesService(t)
			ctx := context.Background()
			record := pendingDues("Maria")
			record.Status = tt.status

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				duesRepo := mockRepo.NewMockDuesRepository(t)
				factory.EXPECT().NewDuesRepository().Return(duesRepo)
				duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
			})

			_, err := fx.service.Exempt(ctx, record.ID, "")

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestDuesService_Delete(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
		duesRepo.EXPECT().Delete(ctx, record.ID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, record.ID))
}

func TestDuesService_Delete_PaidRefused(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	record := pendingDues("Maria")
	record.Status = entity.DuesStatusPaid

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByIDForUpdate(ctx, record.ID).Return(record, nil)
	})

	err := fx.service.Delete(ctx, record.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDuesAlreadyPaid))
}

func TestDuesService_GenerateYear(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	memberID := uuid.New()
	amount := decimal.RequireFromString("30.00")

	fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{DefaultDuesAmount: amount}, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)

		memberRepo.EXPECT().FindByID(ctx, memberID).Return(&entity.Member{ID: memberID}, nil)
		duesRepo.EXPECT().
			CreateManyIfAbsent(ctx, mock.MatchedBy(func(records []*entity.DuesRecord) bool {
				if len(records) != 12 {
					return false
				}
				for i, r := range records {
					if r.MemberID != memberID || !r.IsPending() || !r.Amount.Equal(amount) ||
						!r.Competency.Equal(entity.NewCompetency(2025, time.Month(i+1))) {
						return false
					}
				}

				return true
			})).
			Return(int64(9), nil)
	})

	result, err := fx.service.GenerateYear(ctx, memberID, 2025)

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Created)
	assert.False(t, result.AllExisted)
}

func TestDuesService_GenerateYear_AllExisting(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	memberID := uuid.New()

	fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{DefaultDuesAmount: decimal.NewFromInt(25)}, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)

		memberRepo.EXPECT().FindByID(ctx, memberID).Return(&entity.Member{ID: memberID}, nil)
		duesRepo.EXPECT().CreateManyIfAbsent(ctx, mock.Anything).Return(int64(0), nil)
	})

	result, err := fx.service.GenerateYear(ctx, memberID, 2024)

	require.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.True(t, result.AllExisted)
}

func TestDuesService_GenerateYear_YearOutOfRange(t *testing.T) {
	fx := createTestDuesService(t)

	for _, year := range []int{0, 1899, 2101} {
		_, err := fx.service.GenerateYear(context.Background(), uuid.New(), year)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "year %d", year)
	}
}

func TestDuesService_GenerateYear_MemberNotFound(t *testing.T) {
	fx := createTestDuesService(t)
	ctx := context.Background()
	memberID := uuid.New()

	fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{DefaultDuesAmount: decimal.NewFromInt(25)}, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().FindByID(ctx, memberID).Return(nil, domainerrors.ErrMemberNotFound)
	})

	_, err := fx.service.GenerateYear(ctx, memberID, 2024)

	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestDuesService_AddSingle(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		created bool
	}{
		{name: "new competency", text: "2024-05", created: true},
		{name: "existing competency", text: " 05 / 2024 ", created: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDuesService(t)
			ctx := context.Background()
			memberID := uuid.New()

			fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{DefaultDuesAmount: decimal.NewFromInt(25)}, nil)
			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				memberRepo := mockRepo.NewMockMemberRepository(t)
				duesRepo := mockRepo.NewMockDuesRepository(t)
				factory.EXPECT().NewMemberRepository().Return(memberRepo)
				factory.EXPECT().NewDuesRepository().Return(duesRepo)

				memberRepo.EXPECT().FindByID(ctx, memberID).Return(&entity.Member{ID: memberID}, nil)
				duesRepo.EXPECT().
					CreateIfAbsent(ctx, mock.MatchedBy(func(r *entity.DuesRecord) bool {
						return r.IsPending() && r.Competency.Equal(entity.NewCompetency(2024, time.May))
					})).
					Return(tt.created, nil)
			})

			result, err := fx.service.AddSingle(ctx, memberID, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.created, result.Created)
			assert.Equal(t, entity.NewCompetency(2024, time.May), result.Competency)
		})
	}
}

func TestDuesService_AddSingle_Malformed(t *testing.T) {
	fx := createTestDuesService(t)

	for _, text := range []string{"", "2024", "13/2024", "2024-00", "mar/2024", "2024-05-01", "01-0001", "12/2101"} {
		_, err := fx.service.AddSingle(context.Background(), uuid.New(), text)

		assert.True(t, errors.Is(err, domainerrors.ErrMalformedCompetency), "input %q", text)
	}
}
