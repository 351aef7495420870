package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	mockRepo "fishers/internal/mocks/repository"
	mockSvc "fishers/internal/mocks/service"
	mockUsecase "fishers/internal/mocks/usecase"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memberServiceFixtures holds all test dependencies for member service tests.
type memberServiceFixtures struct {
	service     *memberService
	txManager   *mockRepo.MockTransactionManager
	storage     *mockSvc.MockFileStorage
	eligibility *mockUsecase.MockEligibilityUsecase
}

func createTestMemberService(t *testing.T) memberServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storage := mockSvc.NewMockFileStorage(t)
	eligibility := mockUsecase.NewMockEligibilityUsecase(t)

	srv := NewMemberService(txManager, storage, eligibility, newTestLogger()).(*memberService)
	srv.now = fixedClock

	return memberServiceFixtures{
		service:     srv,
		txManager:   txManager,
		storage:     storage,
		eligibility: eligibility,
	}
}

func validMemberInput() *usecase.MemberInput {
	return &usecase.MemberInput{
		Name:               "  João da Silva ",
		NationalID:         "52998224725",
		RegistrationNumber: "SC-000123",
		BirthDate:          time.Date(1970, time.May, 20, 0, 0, 0, 0, time.UTC),
		Address: &usecase.AddressInput{
			Street: "Rua das Redes",
			Number: "10",
			City:   "Florianópolis",
			State:  "sc",
		},
	}
}

func TestMemberService_Register(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).
			Run(func(_ context.Context, member *entity.Member) { member.ID = uuid.New() }).
			Return(nil)
	})

	member, err := fx.service.Register(ctx, validMemberInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, member.ID)
	assert.Equal(t, "João da Silva", member.Name)
	assert.Equal(t, "529.982.247-25", member.NationalID)
	assert.Equal(t, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), member.AssociatedAt)
	require.NotNil(t, member.Address)
	assert.Equal(t, "SC", member.Address.State)
}

func TestMemberService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.MemberInput)
	}{
		{name: "blank name", mutate: func(in *usecase.MemberInput) { in.Name = "  " }},
		{name: "bad cpf", mutate: func(in *usecase.MemberInput) { in.NationalID = "529.982.247-26" }},
		{name: "repeated cpf digits", mutate: func(in *usecase.MemberInput) { in.NationalID = "111.111.111-11" }},
		{name: "missing registration", mutate: func(in *usecase.MemberInput) { in.RegistrationNumber = "" }},
		{name: "future birth date", mutate: func(in *usecase.MemberInput) { in.BirthDate = fixedNow.AddDate(0, 0, 1) }},
		{name: "bad state", mutate: func(in *usecase.MemberInput) { in.Address.State = "ZZ" }},
		{name: "address without city", mutate: func(in *usecase.MemberInput) { in.Address.City = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMemberService(t)
			input := validMemberInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMemberService_Register_Duplicate(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrMemberAlreadyExists.WrapMessage("national_id"))
	})

	_, err := fx.service.Register(ctx, validMemberInput())

	assert.True(t, errors.Is(err, domainerrors.ErrMemberAlreadyExists))
}

func TestMemberService_Update_KeepsAddressIdentity(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()
	addressID := uuid.New()
	existing := &entity.Member{
		ID:           uuid.New(),
		Name:         "Old",
		AssociatedAt: time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC),
		Address:      &entity.Address{ID: addressID, Street: "Old street", City: "Laguna", State: "SC"},
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		memberRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	updated, err := fx.service.Update(ctx, existing.ID, validMemberInput())

	require.NoError(t, err)
	assert.Equal(t, "João da Silva", updated.Name)
	assert.Equal(t, addressID, updated.Address.ID)
	assert.Equal(t, "Rua das Redes", updated.Address.Street)
	assert.Equal(t, 2010, updated.AssociatedAt.Year())
}

func TestMemberService_Get(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()
	member := &entity.Member{ID: uuid.New(), Name: "Maria"}
	benefit := &entity.BenefitEvaluation{MemberID: member.ID, Year: 2024}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		documentRepo := mockRepo.NewMockDocumentRepository(t)
		duesRepo := mockRepo.NewMockDuesRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDocumentRepository().Return(documentRepo)
		factory.EXPECT().NewDuesRepository().Return(duesRepo)

		memberRepo.EXPECT().FindByID(ctx, member.ID).Return(member, nil)
		documentRepo.EXPECT().ListByMember(ctx, member.ID).Return([]*entity.Document{{ID: uuid.New()}}, nil)
		duesRepo.EXPECT().ListByMember(ctx, member.ID, (*int)(nil)).Return([]*entity.DuesRecord{{ID: uuid.New()}}, nil)
	})
	fx.eligibility.EXPECT().EvaluateSeasonalBenefit(ctx, member.ID, 0).Return(benefit, nil)

	detail, err := fx.service.Get(ctx, member.ID)

	require.NoError(t, err)
	assert.Equal(t, member, detail.Member)
	assert.Len(t, detail.Documents, 1)
	assert.Len(t, detail.Dues, 1)
	assert.Equal(t, benefit, detail.Benefit)
}

func TestMemberService_List_TrimsQuery(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().List(ctx, "silva").Return(nil, nil)
	})

	members, err := fx.service.List(ctx, "  silva ")

	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestMemberService_UploadDocument(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()
	memberID := uuid.New()
	data := []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), data, "application/pdf").
		Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
		Return(nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		documentRepo := mockRepo.NewMockDocumentRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		factory.EXPECT().NewDocumentRepository().Return(documentRepo)
		memberRepo.EXPECT().FindByID(ctx, memberID).Return(&entity.Member{ID: memberID}, nil)
		documentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Document")).Return(nil)
	})

	document, err := fx.service.UploadDocument(ctx, memberID, &usecase.UploadDocumentInput{
		Type:     entity.DocumentTypeNationalID,
		FileName: "../../cpf.PDF",
		Data:     data,
		Note:     " frente e verso ",
	})

	require.NoError(t, err)
	assert.Equal(t, "cpf.PDF", document.FileName)
	assert.Equal(t, "application/pdf", document.ContentType)
	assert.Equal(t, int64(len(data)), document.Size)
	assert.Equal(t, "frente e verso", document.Note)
	assert.Equal(t, storedKey, document.FileKey)
	assert.True(t, strings.HasPrefix(storedKey, "members/"+memberID.String()+"/documents/"))
	assert.True(t, strings.HasSuffix(storedKey, ".pdf"))
}

func TestMemberService_UploadDocument_RemovesFileWhenRecordFails(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()
	memberID := uuid.New()

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
		Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
		Return(nil)
	fx.storage.EXPECT().Delete(ctx, mock.MatchedBy(func(key string) bool { return key == storedKey })).Return(nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		memberRepo := mockRepo.NewMockMemberRepository(t)
		factory.EXPECT().NewMemberRepository().Return(memberRepo)
		memberRepo.EXPECT().FindByID(ctx, memberID).Return(nil, domainerrors.ErrMemberNotFound)
	})

	_, err := fx.service.UploadDocument(ctx, memberID, &usecase.UploadDocumentInput{
		Type:        entity.DocumentTypePhoto,
		FileName:    "foto.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8, 0xff, 0xe0},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestMemberService_UploadDocument_Validation(t *testing.T) {
	fx := createTestMemberService(t)

	_, err := fx.service.UploadDocument(context.Background(), uuid.New(), &usecase.UploadDocumentInput{Type: entity.DocumentTypeNationalID})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.UploadDocument(context.Background(), uuid.New(), &usecase.UploadDocumentInput{Type: "PASSPORT", Data: []byte("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMemberService_DownloadDocument(t *testing.T) {
	fx := createTestMemberService(t)
	ctx := context.Background()
	memberID := uuid.New()
	document := &entity.Document{ID: uuid.New(), MemberID: memberID, FileKey: "members/x/documents/y.pdf"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		documentRepo := mockRepo.NewMockDocumentRepository(t)
		factory.EXPECT().NewDocumentRepository().Return(documentRepo)
		documentRepo.EXPECT().FindByID(ctx, memberID, document.ID).Return(document, nil)
	})
	fx.storage.EXPECT().Get(ctx, document.FileKey).Return([]byte("content"), nil)

	file, err := fx.service.DownloadDocument(ctx, memberID, document.ID)

	require.NoError(t, err)
	assert.Equal(t, document, file.Document)
	assert.Equal(t, []byte("content"), file.Data)
}
