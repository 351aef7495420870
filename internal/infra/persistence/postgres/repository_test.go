package postgres

import (
	"context"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func createTestMember(t *testing.T, db *gorm.DB, name, nationalID string) *entity.Member {
	t.Helper()

	member := &entity.Member{
		Name:               name,
		NationalID:         nationalID,
		RegistrationNumber: "RGP-" + nationalID,
		BirthDate:          time.Date(1980, time.May, 10, 0, 0, 0, 0, time.UTC),
		AssociatedAt:       time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewMemberRepository(db).Create(context.Background(), member))

	return member
}

func newDues(memberID uuid.UUID, year int, month time.Month, status entity.DuesStatus) *entity.DuesRecord {
	return &entity.DuesRecord{
		MemberID:   memberID,
		Competency: entity.NewCompetency(year, month),
		Amount:     decimal.RequireFromString("25.00"),
		Status:     status,
	}
}

func TestMemberRepository_CreateFindAndConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMemberRepository(db)

	member := &entity.Member{
		Name:               "João da Silva",
		NationalID:         "529.982.247-25",
		RegistrationNumber: "SC-0001",
		BirthDate:          time.Date(1975, time.March, 3, 0, 0, 0, 0, time.UTC),
		AssociatedAt:       time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
		Address: &entity.Address{
			Street: "Rua do Porto",
			Number: "12",
			City:   "Laguna",
			State:  "SC",
		},
	}
	require.NoError(t, repo.Create(ctx, member))
	assert.NotEqual(t, uuid.Nil, member.ID)
	assert.NotEqual(t, uuid.Nil, member.Address.ID)

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", found.Name)
	require.NotNil(t, found.Address)
	assert.Equal(t, "Laguna", found.Address.City)

	duplicate := &entity.Member{
		Name:               "Outro",
		NationalID:         "529.982.247-25",
		RegistrationNumber: "SC-0002",
		BirthDate:          time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		AssociatedAt:       time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	err = repo.Create(ctx, duplicate)
	assert.True(t, errors.Is(err, domainerrors.ErrMemberAlreadyExists))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
}

func TestMemberRepository_UpdateUpsertsAddressAndSearch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMemberRepository(db)

	member := createTestMember(t, db, "Maria Pereira", "111.444.777-35")
	createTestMember(t, db, "Antônio Souza", "987.654.321-00")

	member.Phone = "(48) 99999-0000"
	member.Address = &entity.Address{Street: "Av. Beira Mar", Number: "100", City: "Imbituba", State: "SC"}
	require.NoError(t, repo.Update(ctx, member))

	member.Address = &entity.Address{Street: "Av. Beira Mar", Number: "200", City: "Imbituba", State: "SC"}
	require.NoError(t, repo.Update(ctx, member))

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "(48) 99999-0000", found.Phone)
	require.NotNil(t, found.Address)
	assert.Equal(t, "200", found.Address.Number)

	var addressCount int64
	require.NoError(t, db.Table("addresses").Where("member_id = ?", member.ID).Count(&addressCount).Error)
	assert.Equal(t, int64(1), addressCount)

	results, err := repo.List(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, member.ID, results[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Antônio Souza", all[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDuesRepository_CreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDuesRepository(db)
	member := createTestMember(t, db, "Pedro", "111.111.111-11")

	created, err := repo.CreateIfAbsent(ctx, newDues(member.ID, 2024, time.March, entity.DuesStatusPending))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, newDues(member.ID, 2024, time.March, entity.DuesStatusPending))
	require.NoError(t, err)
	assert.False(t, created)

	records := make([]*entity.DuesRecord, 0, 12)
	for month := time.January; month <= time.December; month++ {
		records = append(records, newDues(member.ID, 2024, month, entity.DuesStatusPending))
	}
	inserted, err := repo.CreateManyIfAbsent(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, int64(11), inserted)

	inserted, err = repo.CreateManyIfAbsent(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	year := 2024
	listed, err := repo.ListByMember(ctx, member.ID, &year)
	require.NoError(t, err)
	require.Len(t, listed, 12)
	assert.Equal(t, time.December, listed[0].Competency.Month())
}

func TestDuesRepository_NextReceiptNumberIsSequential(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	var numbers []int64
	for range 3 {
		err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			n, err := f.NewDuesRepository().NextReceiptNumber(ctx)
			numbers = append(numbers, n)

			return err
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{1, 2, 3}, numbers)
}

func TestDuesRepository_UpdateFindAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDuesRepository(db)
	member := createTestMember(t, db, "Carlos", "222.222.222-22")

	record := newDues(member.ID, 2023, time.July, entity.DuesStatusPending)
	_, err := repo.CreateIfAbsent(ctx, record)
	require.NoError(t, err)

	locked, err := repo.FindByIDForUpdate(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", locked.MemberName)

	number := int64(7)
	paidAt := time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)
	locked.Status = entity.DuesStatusPaid
	locked.PaymentDate = &paidAt
	locked.ReceiptNumber = &number
	locked.ReceiptToken = "0123456789abcdef"
	require.NoError(t, repo.Update(ctx, locked))

	byReceipt, err := repo.FindByReceiptNumber(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, entity.DuesStatusPaid, byReceipt.Status)
	assert.Equal(t, "0123456789abcdef", byReceipt.ReceiptToken)
	require.NotNil(t, byReceipt.PaymentDate)
	assert.True(t, paidAt.Equal(*byReceipt.PaymentDate))

	pending := newDues(member.ID, 2023, time.August, entity.DuesStatusPending)
	_, err = repo.CreateIfAbsent(ctx, pending)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, pending.ID))

	_, err = repo.FindByID(ctx, pending.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDuesNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, pending.ID), domainerrors.ErrDuesNotFound))
}

func TestDuesRepository_PeriodAggregates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDuesRepository(db)

	zeca := createTestMember(t, db, "Zeca", "333.333.333-33")
	ana := createTestMember(t, db, "Ana", "444.444.444-44")

	fixtures := []*entity.DuesRecord{
		newDues(zeca.ID, 2024, time.March, entity.DuesStatusPaid),
		newDues(zeca.ID, 2023, time.March, entity.DuesStatusPending),
		newDues(zeca.ID, 2024, time.April, entity.DuesStatusPending),
		newDues(ana.ID, 2024, time.March, entity.DuesStatusPending),
		newDues(ana.ID, 2024, time.May, entity.DuesStatusPending),
	}
	fixtures[0].Amount = decimal.RequireFromString("30.50")
	_, err := repo.CreateManyIfAbsent(ctx, fixtures)
	require.NoError(t, err)

	year, march := 2024, 3

	paid, err := repo.CountByStatus(ctx, entity.DuesStatusPaid, entity.PeriodFilter{Year: &year})
	require.NoError(t, err)
	assert.Equal(t, int64(1), paid)

	pendingMarchAnyYear, err := repo.CountByStatus(ctx, entity.DuesStatusPending, entity.PeriodFilter{Month: &march})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pendingMarchAnyYear)

	sum, err := repo.SumAmountByStatus(ctx, entity.DuesStatusPaid, entity.PeriodFilter{Year: &year, Month: &march})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("30.50").Equal(sum), sum.String())

	none := 1999
	sum, err = repo.SumAmountByStatus(ctx, entity.DuesStatusPaid, entity.PeriodFilter{Year: &none})
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	debtors, err := repo.ListDebtors(ctx, entity.PeriodFilter{Year: &year}, 50)
	require.NoError(t, err)
	require.Len(t, debtors, 2)
	assert.Equal(t, "Ana", debtors[0].Name)
	assert.Equal(t, "Zeca", debtors[1].Name)

	limited, err := repo.ListDebtors(ctx, entity.PeriodFilter{}, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	paidInYear, err := repo.CountPaidInYear(ctx, zeca.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(1), paidInYear)
}

func TestLedgerRepository_PostingUniquenessAndTotals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	duesRepo := NewDuesRepository(db)
	ledgerRepo := NewLedgerRepository(db)
	member := createTestMember(t, db, "Rita", "555.555.555-55")

	record := newDues(member.ID, 2024, time.June, entity.DuesStatusPaid)
	_, err := duesRepo.CreateIfAbsent(ctx, record)
	require.NoError(t, err)

	posting := &entity.LedgerEntry{
		Type:         entity.LedgerEntryIncome,
		Category:     entity.LedgerCategoryDues,
		Amount:       decimal.RequireFromString("25.00"),
		Date:         time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		DuesRecordID: &record.ID,
	}
	require.NoError(t, ledgerRepo.Create(ctx, posting))

	second := *posting
	second.ID = uuid.Nil
	err = ledgerRepo.Create(ctx, &second)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	expense := &entity.LedgerEntry{
		Type:     entity.LedgerEntryExpense,
		Category: "Manutenção",
		Amount:   decimal.RequireFromString("10.25"),
		Date:     time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ledgerRepo.Create(ctx, expense))

	oldIncome := &entity.LedgerEntry{
		Type:     entity.LedgerEntryIncome,
		Category: "Doação",
		Amount:   decimal.RequireFromString("100.00"),
		Date:     time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ledgerRepo.Create(ctx, oldIncome))

	year := 2024
	totals, err := ledgerRepo.Totals(ctx, entity.PeriodFilter{Year: &year})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.00").Equal(totals.Income), totals.Income.String())
	assert.True(t, decimal.RequireFromString("10.25").Equal(totals.Expense), totals.Expense.String())
	assert.True(t, decimal.RequireFromString("14.75").Equal(totals.Balance), totals.Balance.String())

	entries, err := ledgerRepo.List(ctx, entity.PeriodFilter{}, 200)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, expense.ID, entries[0].ID)

	expense.Amount = decimal.RequireFromString("12.00")
	require.NoError(t, ledgerRepo.Update(ctx, expense))
	require.NoError(t, ledgerRepo.Delete(ctx, oldIncome.ID))
	_, err = ledgerRepo.FindByID(ctx, oldIncome.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLedgerEntryNotFound))
}

func TestAssociationRepository_SingleRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAssociationRepository(db)

	_, err := repo.Get(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	for _, name := range []string{"Primeira", "Segunda"} {
		require.NoError(t, repo.CreateIfAbsent(ctx, &entity.AssociationProfile{
			Name:              name,
			DefaultDuesAmount: decimal.RequireFromString("25.00"),
		}))
	}

	var count int64
	require.NoError(t, db.Table("association_profiles").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	profile, err := repo.GetForUpdate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Primeira", profile.Name)

	profile.President = "José"
	profile.DefaultDuesAmount = decimal.RequireFromString("30.00")
	require.NoError(t, repo.Update(ctx, profile))

	updated, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "José", updated.President)
	assert.True(t, decimal.RequireFromString("30.00").Equal(updated.DefaultDuesAmount))
}

func TestDocumentRepository_LatestUploads(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDocumentRepository(db)
	member := createTestMember(t, db, "Luiz", "666.666.666-66")

	older := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)
	for _, doc := range []*entity.Document{
		{MemberID: member.ID, Type: entity.DocumentTypeIdentityCard, FileKey: "a", FileName: "rg.pdf", UploadedAt: older},
		{MemberID: member.ID, Type: entity.DocumentTypeIdentityCard, FileKey: "b", FileName: "rg2.pdf", UploadedAt: newer},
		{MemberID: member.ID, Type: entity.DocumentTypePhoto, FileKey: "c", FileName: "foto.jpg", UploadedAt: newer},
	} {
		require.NoError(t, repo.Create(ctx, doc))
	}

	latest, err := repo.LatestUploads(ctx, member.ID, entity.BenefitRequiredDocuments)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.True(t, newer.Equal(latest[entity.DocumentTypeIdentityCard]))

	docs, err := repo.ListByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	_, err = repo.FindByID(ctx, uuid.New(), docs[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentNotFound))
}

func TestOperatorRepository_UsernameIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOperatorRepository(db)

	operator := &entity.Operator{
		Username:     "Admin",
		Name:         "Administrador",
		PasswordHash: "hash",
		Roles:        entity.Roles{entity.RoleAdmin, entity.RoleOperator},
	}
	require.NoError(t, repo.Create(ctx, operator))

	found, err := repo.FindByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, operator.ID, found.ID)
	assert.True(t, found.Roles.Contains(entity.RoleAdmin))

	err = repo.Create(ctx, &entity.Operator{Username: "admin", PasswordHash: "x", Roles: entity.Roles{entity.RoleOperator}})
	assert.True(t, errors.Is(err, domainerrors.ErrOperatorAlreadyExists))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	member := createTestMember(t, db, "Bruno", "777.777.777-77")
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewDuesRepository().CreateIfAbsent(ctx, newDues(member.ID, 2024, time.January, entity.DuesStatusPending)); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	year := 2024
	records, err := NewDuesRepository(db).ListByMember(ctx, member.ID, &year)
	require.NoError(t, err)
	assert.Empty(t, records)
}
