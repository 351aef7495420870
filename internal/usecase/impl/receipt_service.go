package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"fishers/config"
	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/domain/service"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	txManager   repository.TransactionManager
	association usecase.AssociationUsecase
	renderer    service.DocumentRenderer
	qrcode      service.QRCodeService
	baseURL     string
	logger      *slog.Logger
	now         func() time.Time
}

// NewReceiptService is the constructor for receiptService.
func NewReceiptService(
	txManager repository.TransactionManager,
	association usecase.AssociationUsecase,
	renderer service.DocumentRenderer,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReceiptUsecase {
	var baseURL string
	if cfg.QRCode != nil {
		baseURL = cfg.QRCode.BaseURL
	}

	return &receiptService{
		txManager:   txManager,
		association: association,
		renderer:    renderer,
		qrcode:      qrcode,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *receiptService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// verifyURL is the public address that confirms a receipt.
func (srv *receiptService) verifyURL(number int64, token string) string {
	return fmt.Sprintf("%s/receipts/%d/verify?t=%s", srv.baseURL, number, url.QueryEscape(token))
}

// RenderReceipt prints the receipt of a paid record.
func (srv *receiptService) RenderReceipt(ctx context.Context, duesID uuid.UUID) (*usecase.RenderedReceipt, error) {
	data := &service.ReceiptData{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if data.Dues, err = repoFactory.NewDuesRepository().FindByID(ctx, duesID); err != nil {
			return errors.Wrap(err, "failed to find dues record")
		}
		if !data.Dues.IsPaid() || data.Dues.ReceiptNumber == nil {
			return domainerrors.ErrDuesNotPaid
		}
		if data.Member, err = repoFactory.NewMemberRepository().FindByID(ctx, data.Dues.MemberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load receipt", slog.Any("error", err), slog.Any("dues_id", duesID))

		return nil, errors.Wrap(err, "failed to render receipt")
	}

	if data.Association, err = srv.association.Current(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to render receipt")
	}
	logger := srv.log(ctx)
	data.Logo = optionalImage(ctx, logger, "logo", srv.association.Logo)
	data.Signature = optionalImage(ctx, logger, "signature", srv.association.Signature)

	number := *data.Dues.ReceiptNumber
	data.VerifyURL = srv.verifyURL(number, data.Dues.ReceiptToken)
	if data.QRCode, err = srv.qrcode.Encode(data.VerifyURL); err != nil {
		logger.Error("Failed to encode receipt QR code", slog.Any("error", err), slog.Int64("receipt_number", number))

		return nil, errors.Wrap(domainerrors.ErrRenderFailed, err.Error())
	}
	data.IssuedAt = srv.now()

	pdf, err := srv.renderer.RenderReceipt(data)
	if err != nil {
		logger.Error("Failed to render receipt", slog.Any("error", err), slog.Int64("receipt_number", number))

		return nil, errors.Wrap(domainerrors.ErrRenderFailed, err.Error())
	}
	logger.Info("Receipt rendered", slog.Int64("receipt_number", number), slog.Int("bytes", len(pdf)))

	return &usecase.RenderedReceipt{Number: number, PDF: pdf}, nil
}

// VerifyReceipt confirms that number and token belong to the same paid record.
// Unknown numbers and wrong tokens are indistinguishable to the caller.
func (srv *receiptService) VerifyReceipt(ctx context.Context, number int64, token string) (*usecase.ReceiptVerification, error) {
	token = strings.TrimSpace(token)
	if number <= 0 || token == "" {
		return nil, domainerrors.ErrReceiptNotFound
	}

	var record *entity.DuesRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		record, err = repoFactory.NewDuesRepository().FindByReceiptNumber(ctx, number)
		if errors.Is(err, domainerrors.ErrDuesNotFound) {
			return domainerrors.ErrReceiptNotFound
		}

		return errors.Wrap(err, "failed to find receipt")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify receipt")
	}
	if subtle.ConstantTimeCompare([]byte(record.ReceiptToken), []byte(token)) != 1 {
		srv.log(ctx).Warn("Receipt token mismatch", slog.Int64("receipt_number", number))

		return nil, domainerrors.ErrReceiptNotFound
	}

	profile, err := srv.association.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify receipt")
	}

	return &usecase.ReceiptVerification{
		Number:      number,
		Association: profile.Name,
		MemberName:  record.MemberName,
		Competency:  record.CompetencyLabel(),
		Amount:      record.Amount,
		PaymentDate: record.PaymentDate,
		DuesID:      record.ID,
	}, nil
}
