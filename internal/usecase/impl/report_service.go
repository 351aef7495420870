package impl

import (
	"context"
	"log/slog"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	"fishers/internal/domain/repository"
	"fishers/internal/usecase"

	"github.com/pkg/errors"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ReportUsecase {
	return &reportService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ComputePeriodReport aggregates members, dues and ledger for the period.
// The member count ignores the filter.
func (srv *reportService) ComputePeriodReport(ctx context.Context, filter entity.PeriodFilter) (*entity.PeriodReport, error) {
	report := &entity.PeriodReport{Filter: filter}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		duesRepo := repoFactory.NewDuesRepository()

		var err error
		if report.TotalMembers, err = repoFactory.NewMemberRepository().Count(ctx); err != nil {
			return errors.Wrap(err, "failed to count members")
		}
		if report.PaidDuesCount, err = duesRepo.CountByStatus(ctx, entity.DuesStatusPaid, filter); err != nil {
			return errors.Wrap(err, "failed to count paid dues")
		}
		if report.PendingDuesCount, err = duesRepo.CountByStatus(ctx, entity.DuesStatusPending, filter); err != nil {
			return errors.Wrap(err, "failed to count pending dues")
		}
		if report.PaidDuesAmount, err = duesRepo.SumAmountByStatus(ctx, entity.DuesStatusPaid, filter); err != nil {
			return errors.Wrap(err, "failed to sum paid dues")
		}
		if report.Ledger, err = repoFactory.NewLedgerRepository().Totals(ctx, filter); err != nil {
			return errors.Wrap(err, "failed to total ledger")
		}
		if report.Debtors, err = duesRepo.ListDebtors(ctx, filter, entity.MaxReportDebtors); err != nil {
			return errors.Wrap(err, "failed to list debtors")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to compute period report", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute period report")
	}
	if report.Debtors == nil {
		report.Debtors = []*entity.Debtor{}
	}
	srv.log(ctx).Debug("Period report computed",
		slog.Int64("members", report.TotalMembers),
		slog.Int64("paid", report.PaidDuesCount),
		slog.Int64("pending", report.PendingDuesCount),
	)

	return report, nil
}
