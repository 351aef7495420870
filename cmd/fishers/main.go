package main

import (
	"context"
	"log/slog"
	"os"

	"fishers/config"
	"fishers/internal/delivery"
	"fishers/internal/delivery/api"
	"fishers/internal/delivery/api/middleware"
	"fishers/internal/delivery/api/router/handler"
	"fishers/internal/infra/auth"
	logs "fishers/internal/infra/log"
	"fishers/internal/infra/persistence/postgres"
	"fishers/internal/infra/picture"
	"fishers/internal/infra/qrcode"
	"fishers/internal/infra/render"
	"fishers/internal/infra/storage"
	"fishers/internal/usecase"
	"fishers/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewFileStorage,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewFromConfig,
			render.NewPDFRenderer,
			picture.NewDefaultNormalizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAssociationService,
			impl.NewDuesService,
			impl.NewLedgerService,
			impl.NewReportService,
			impl.NewEligibilityService,
			impl.NewReceiptService,
			impl.NewMemberService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMemberHandler,
			handler.NewDuesHandler,
			handler.NewLedgerHandler,
			handler.NewReportHandler,
			handler.NewReceiptHandler,
			handler.NewAssociationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the configured administrator once the database is reachable.
func bootstrapAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(authUC.EnsureBootstrapAdmin(ctx), "bootstrap admin")
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
