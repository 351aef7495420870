// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const receiptTokenBytes = 8

// duesService implements the DuesUsecase interface.
type duesService struct {
	txManager   repository.TransactionManager
	association usecase.AssociationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewDuesService is the constructor for duesService.
func NewDuesService(
	txManager repository.TransactionManager,
	association usecase.AssociationUsecase,
	logger *slog.Logger,
) usecase.DuesUsecase {
	return &duesService{
		txManager:   txManager,
		association: association,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *duesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Pay settles a pending record. The record row stays locked until the receipt
// number is taken and the ledger posting is written, so a failed posting rolls
// the whole payment back.
func (srv *duesService) Pay(ctx context.Context, id uuid.UUID, input *usecase.PayDuesInput) (*entity.DuesRecord, error) {
	if input == nil {
		input = &usecase.PayDuesInput{}
	}
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	var paid *entity.DuesRecord
	var alreadyPaid bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		duesRepo := repoFactory.NewDuesRepository()

		record, err := duesRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find dues record")
		}

		switch record.Status {
		case entity.DuesStatusPaid:
			paid, alreadyPaid = record, true

			return nil
		case entity.DuesStatusExempt:
			return domainerrors.ErrDuesNotPayable.WithDetails("dues record is exempt")
		}

		paymentDate := dateOnly(srv.now())
		if input.PaymentDate != nil {
			paymentDate = dateOnly(*input.PaymentDate)
		}
		if input.Amount != nil {
			record.Amount = input.Amount.Round(2)
		}
		record.Status = entity.DuesStatusPaid
		record.PaymentDate = &paymentDate
		if input.PaymentMethod != "" {
			record.PaymentMethod = input.PaymentMethod
		}
		if input.Note != "" {
			record.Note = input.Note
		}

		if record.ReceiptNumber == nil {
			number, err := duesRepo.NextReceiptNumber(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to assign receipt number")
			}
			record.ReceiptNumber = &number
		}
		if record.ReceiptToken == "" {
			token, err := newReceiptToken()
			if err != nil {
				return errors.Wrap(err, "failed to generate receipt token")
			}
			record.ReceiptToken = token
		}

		if err := duesRepo.Update(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update dues record")
		}

		recordID := record.ID
		entry := &entity.LedgerEntry{
			Type:         entity.LedgerEntryIncome,
			Category:     entity.LedgerCategoryDues,
			Description:  duesPostingDescription(record),
			Amount:       record.Amount,
			Date:         paymentDate,
			DuesRecordID: &recordID,
		}
		if err := repoFactory.NewLedgerRepository().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to post dues payment to the ledger")
		}

		paid = record

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to pay dues", slog.Any("error", err), slog.Any("dues_id", id))

		return nil, errors.Wrap(err, "failed to pay dues")
	}

	if alreadyPaid {
		srv.log(ctx).Info("Dues record already paid", slog.Any("dues_id", id))
	} else {
		srv.log(ctx).Info("Dues paid",
			slog.Any("dues_id", id),
			slog.Int64("receipt_number", *paid.ReceiptNumber),
			slog.String("amount", paid.Amount.StringFixed(2)),
		)
	}

	return paid, nil
}

// Exempt waives a pending record.
func (srv *duesService) Exempt(ctx context.Context, id uuid.UUID, note string) (*entity.DuesRecord, error) {
	var exempted *entity.DuesRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		duesRepo := repoFactory.NewDuesRepository()

		record, err := duesRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find dues record")
		}

		switch record.Status {
		case entity.DuesStatusPaid:
			return domainerrors.ErrDuesAlreadyPaid
		case entity.DuesStatusExempt:
			return domainerrors.ErrDuesNotPayable.WithDetails("dues record is already exempt")
		}

		record.Status = entity.DuesStatusExempt
		record.Note = note
		if err := duesRepo.Update(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update dues record")
		}
		exempted = record

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to exempt dues", slog.Any("error", err), slog.Any("dues_id", id))

		return nil, errors.Wrap(err, "failed to exempt dues")
	}
	srv.log(ctx).Info("Dues exempted", slog.Any("dues_id", id))

	return exempted, nil
}

// Delete removes a record that has not been paid.
func (srv *duesService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		duesRepo := repoFactory.NewDuesRepository()

		record, err := duesRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find dues record")
		}
		if record.IsPaid() {
			return domainerrors.ErrDuesAlreadyPaid.WithDetails("paid dues cannot be deleted")
		}

		return errors.Wrap(duesRepo.Delete(ctx, id), "failed to delete dues record")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete dues", slog.Any("error", err), slog.Any("dues_id", id))

		return errors.Wrap(err, "failed to delete dues")
	}
	srv.log(ctx).Info("Dues deleted", slog.Any("dues_id", id))

	return nil
}

// GenerateYear inserts the twelve monthly records of year, skipping the ones
// that already exist. Existing records are never touched.
func (srv *duesService) GenerateYear(ctx context.Context, memberID uuid.UUID, year int) (*usecase.GenerateYearResult, error) {
	if !entity.IsValidDuesYear(year) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("year must be between %d and %d", entity.MinDuesYear, entity.MaxDuesYear))
	}

	profile, err := srv.association.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load association profile")
	}

	records := make([]*entity.DuesRecord, 0, 12)
	for month := time.January; month <= time.December; month++ {
		records = append(records, &entity.DuesRecord{
			MemberID:   memberID,
			Competency: entity.NewCompetency(year, month),
			Amount:     profile.DefaultDuesAmount,
			Status:     entity.DuesStatusPending,
		})
	}

	var created int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		var err error
		created, err = repoFactory.NewDuesRepository().CreateManyIfAbsent(ctx, records)

		return errors.Wrap(err, "failed to create dues records")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to generate dues year", slog.Any("error", err), slog.Any("member_id", memberID), slog.Int("year", year))

		return nil, errors.Wrap(err, "failed to generate dues year")
	}
	srv.log(ctx).Info("Dues year generated", slog.Any("member_id", memberID), slog.Int("year", year), slog.Int64("created", created))

	return &usecase.GenerateYearResult{
		Year:       year,
		Created:    created,
		AllExisted: created == 0,
	}, nil
}

// AddSingle creates the record of one competency when absent.
func (srv *duesService) AddSingle(ctx context.Context, memberID uuid.UUID, competencyText string) (*usecase.AddSingleResult, error) {
	competency, err := entity.ParseCompetency(competencyText)
	if err != nil {
		return nil, domainerrors.ErrMalformedCompetency.WithDetails(competencyText)
	}

	profile, err := srv.association.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load association profile")
	}

	record := &entity.DuesRecord{
		MemberID:   memberID,
		Competency: competency,
		Amount:     profile.DefaultDuesAmount,
		Status:     entity.DuesStatusPending,
	}

	var created bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		var err error
		created, err = repoFactory.NewDuesRepository().CreateIfAbsent(ctx, record)

		return errors.Wrap(err, "failed to create dues record")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add dues", slog.Any("error", err), slog.Any("member_id", memberID))

		return nil, errors.Wrap(err, "failed to add dues")
	}
	srv.log(ctx).Info("Dues added",
		slog.Any("member_id", memberID),
		slog.String("competency", entity.FormatCompetency(competency)),
		slog.Bool("created", created),
	)

	return &usecase.AddSingleResult{Competency: competency, Created: created}, nil
}

// Get retrieves a dues record by ID.
func (srv *duesService) Get(ctx context.Context, id uuid.UUID) (*entity.DuesRecord, error) {
	var record *entity.DuesRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		record, err = repoFactory.NewDuesRepository().FindByID(ctx, id)

		return errors.Wrap(err, "failed to find dues record")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dues")
	}

	return record, nil
}

func duesPostingDescription(record *entity.DuesRecord) string {
	return fmt.Sprintf("Dues %s - %s", record.CompetencyLabel(), record.MemberName)
}

func newReceiptToken() (string, error) {
	buf := make([]byte, receiptTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}

// dateOnly truncates t to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
