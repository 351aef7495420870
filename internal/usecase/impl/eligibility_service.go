package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/domain/service"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eligibilityService implements the EligibilityUsecase interface.
type eligibilityService struct {
	txManager   repository.TransactionManager
	association usecase.AssociationUsecase
	renderer    service.DocumentRenderer
	logger      *slog.Logger
	now         func() time.Time
}

// NewEligibilityService is the constructor for eligibilityService.
func NewEligibilityService(
	txManager repository.TransactionManager,
	association usecase.AssociationUsecase,
	renderer service.DocumentRenderer,
	logger *slog.Logger,
) usecase.EligibilityUsecase {
	return &eligibilityService{
		txManager:   txManager,
		association: association,
		renderer:    renderer,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eligibilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *eligibilityService) resolveYear(year int) int {
	if year == 0 {
		return srv.now().Year()
	}

	return year
}

// EvaluateSeasonalBenefit checks the paid months and required documents of a member.
func (srv *eligibilityService) EvaluateSeasonalBenefit(ctx context.Context, memberID uuid.UUID, year int) (*entity.BenefitEvaluation, error) {
	year = srv.resolveYear(year)

	var evaluation *entity.BenefitEvaluation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		var err error
		evaluation, err = evaluateBenefit(ctx, repoFactory, memberID, year)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to evaluate seasonal benefit", slog.Any("error", err), slog.Any("member_id", memberID), slog.Int("year", year))

		return nil, errors.Wrap(err, "failed to evaluate seasonal benefit")
	}

	return evaluation, nil
}

// RenderDossier prints the benefit evaluation with the member documents and the dues of the year.
func (srv *eligibilityService) RenderDossier(ctx context.Context, memberID uuid.UUID, year int) ([]byte, error) {
	year = srv.resolveYear(year)

	data := &service.DossierData{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if data.Member, err = repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}
		if data.Evaluation, err = evaluateBenefit(ctx, repoFactory, memberID, year); err != nil {
			return err
		}
		if data.Documents, err = repoFactory.NewDocumentRepository().ListByMember(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to list documents")
		}
		if data.Dues, err = repoFactory.NewDuesRepository().ListByMember(ctx, memberID, &year); err != nil {
			return errors.Wrap(err, "failed to list dues")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load dossier", slog.Any("error", err), slog.Any("member_id", memberID))

		return nil, errors.Wrap(err, "failed to render dossier")
	}

	// Dossiers list the months in calendar order.
	slices.Reverse(data.Dues)

	if data.Association, err = srv.association.Current(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to render dossier")
	}
	data.Logo = optionalImage(ctx, srv.log(ctx), "logo", srv.association.Logo)
	data.IssuedAt = srv.now()

	pdf, err := srv.renderer.RenderDossier(data)
	if err != nil {
		srv.log(ctx).Error("Failed to render dossier", slog.Any("error", err), slog.Any("member_id", memberID))

		return nil, errors.Wrap(domainerrors.ErrRenderFailed, err.Error())
	}
	srv.log(ctx).Info("Dossier rendered", slog.Any("member_id", memberID), slog.Int("year", year), slog.Int("bytes", len(pdf)))

	return pdf, nil
}

// evaluateBenefit builds the evaluation from the repositories of an open transaction.
func evaluateBenefit(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	memberID uuid.UUID,
	year int,
) (*entity.BenefitEvaluation, error) {
	paid, err := repoFactory.NewDuesRepository().CountPaidInYear(ctx, memberID, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count paid dues")
	}

	uploads, err := repoFactory.NewDocumentRepository().LatestUploads(ctx, memberID, entity.BenefitRequiredDocuments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find document uploads")
	}

	evaluation := &entity.BenefitEvaluation{
		MemberID:    memberID,
		Year:        year,
		PaidCount:   paid,
		DuesOK:      paid >= entity.RequiredPaidMonths,
		DocumentsOK: true,
		Checklist:   make([]*entity.BenefitChecklistItem, 0, len(entity.BenefitRequiredDocuments)),
	}
	for _, docType := range entity.BenefitRequiredDocuments {
		item := &entity.BenefitChecklistItem{Type: docType, Label: docType.Label()}
		if uploadedAt, ok := uploads[docType]; ok {
			item.Satisfied = true
			item.UploadedAt = &uploadedAt
		} else {
			evaluation.DocumentsOK = false
		}
		evaluation.Checklist = append(evaluation.Checklist, item)
	}
	evaluation.Eligible = evaluation.DuesOK && evaluation.DocumentsOK

	return evaluation, nil
}

// optionalImage loads a printable image, treating a missing or unreadable one as absent.
func optionalImage(ctx context.Context, logger *slog.Logger, kind string, load func(context.Context) ([]byte, error)) []byte {
	data, err := load(ctx)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn("Printing without image", slog.String("kind", kind), slog.Any("error", err))
		}

		return nil
	}

	return data
}
