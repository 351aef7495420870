package impl

import (
	"context"
	"testing"
	"time"

	"fishers/config"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/service"
	mockRepo "fishers/internal/mocks/repository"
	mockSvc "fishers/internal/mocks/service"
	mockUsecase "fishers/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// receiptServiceFixtures holds all test dependencies for receipt service tests.
type receiptServiceFixtures struct {
	service     *receiptService
	txManager   *mockRepo.MockTransactionManager
	association *mockUsecase.MockAssociationUsecase
	renderer    *mockSvc.MockDocumentRenderer
	qrcode      *mockSvc.MockQRCodeService
}

func createTestReceiptService(t *testing.T) receiptServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	association := mockUsecase.NewMockAssociationUsecase(t)
	renderer := mockSvc.NewMockDocumentRenderer(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://colonia.example.org/"}}

	srv := NewReceiptService(txManager, association, renderer, qrcode, cfg, newTestLogger()).(*receiptService)
	srv.now = fixedClock

	return receiptServiceFixtures{
		service:     srv,
		txManager:   txManager,
		association: association,
		renderer:    renderer,
		qrcode:      qrcode,
	}
}

func paidDues() *entity.DuesRecord {
	number := int64(42)
	paidOn := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	return &entity.DuesRecord{
		ID:            uuid.New(),
		MemberID:      uuid.New(),
		MemberName:    "João da Silva",
		Competency:    entity.NewCompetency(2024, time.March),
		Amount:        decimal.RequireFromString("25.00"),
		Status:        entity.DuesStatusPaid,
		PaymentDate:   &paidOn,
		ReceiptNumber: &number,
		ReceiptToken:  "a1b2c3d4e5f60718",
	}
}

func TestReceiptService_RenderReceipt(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()
	record := paidDues()
	member := &entity.Member{ID: record.MemberID, Name: record.MemberName}
	verifyURL := "https://colonia.example.org/receipts/42/verify?t=a1b2c3d4e5f60718"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		duesRepo.EXPECT().FindByID(ctx, record.ID).Return(record, nil)
		memberRepo.EXPECT().FindByID(ctx, record.MemberID).Return(member, nil)
	})
	fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{Name: "Colônia Z-10"}, nil)
	fx.association.EXPECT().Logo(ctx).Return([]byte("logo"), nil)
	fx.association.EXPECT().Signature(ctx).Return(nil, domainerrors.ErrNotFound)
	fx.qrcode.EXPECT().Encode(verifyURL).Return([]byte("qr"), nil)
	fx.renderer.EXPECT().
		RenderReceipt(mock.MatchedBy(func(data *service.ReceiptData) bool {
			return data.Dues == record && data.Member == member &&
				string(data.Logo) == "logo" && data.Signature == nil &&
				data.VerifyURL == verifyURL && string(data.QRCode) == "qr" &&
				data.IssuedAt.Equal(fixedNow)
		})).
		Return([]byte("%PDF"), nil)

	receipt, err := fx.service.RenderReceipt(ctx, record.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), receipt.Number)
	assert.Equal(t, []byte("%PDF"), receipt.PDF)
}

func TestReceiptService_RenderReceipt_PendingRefused(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()
	record := pendingDues("Maria")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByID(ctx, record.ID).Return(record, nil)
	})

	_, err := fx.service.RenderReceipt(ctx, record.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDuesNotPaid))
}

func TestReceiptService_VerifyReceipt(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()
	record := paidDues()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByReceiptNumber(ctx, int64(42)).Return(record, nil)
	})
	fx.association.EXPECT().Current(ctx).Return(&entity.AssociationProfile{Name: "Colônia Z-10"}, nil)

	verification, err := fx.service.VerifyReceipt(ctx, 42, "a1b2c3d4e5f60718")

	require.NoError(t, err)
	assert.Equal(t, "João da Silva", verification.MemberName)
	assert.Equal(t, "03/2024", verification.Competency)
	assert.Equal(t, "Colônia Z-10", verification.Association)
	assert.Equal(t, record.ID, verification.DuesID)
}

func TestReceiptService_VerifyReceipt_WrongToken(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByReceiptNumber(ctx, int64(42)).Return(paidDues(), nil)
	})

	_, err := fx.service.VerifyReceipt(ctx, 42, "ffffffffffffffff")

	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
}

func TestReceiptService_VerifyReceipt_UnknownNumber(t *testing.T) {
	fx := createTestReceiptService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)
		duesRepo.EXPECT().FindByReceiptNumber(ctx, int64(7)).Return(nil, domainerrors.ErrDuesNotFound)
	})

	_, err := fx.service.VerifyReceipt(ctx, 7, "a1b2c3d4e5f60718")

	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
}

func TestReceiptService_VerifyReceipt_MissingInput(t *testing.T) {
	fx := createTestReceiptService(t)

	_, err := fx.service.VerifyReceipt(context.Background(), 0, "a1b2c3d4e5f60718")
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))

	_, err = fx.service.VerifyReceipt(context.Background(), 42, "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
}
