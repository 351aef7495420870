package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fishers/config"
	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/domain/service"
	"fishers/internal/usecase"

	"github.com/pkg/errors"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	cfg       *config.AuthConfig
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		cfg:       authCfg,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the operator credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	var operator *entity.Operator
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		operator, err = repoFactory.NewOperatorRepository().FindByUsername(ctx, strings.TrimSpace(input.Username))
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidCredentials
		}

		return errors.Wrap(err, "failed to find operator")
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))
		}

		return nil, errors.Wrap(err, "failed to login")
	}

	if !srv.hasher.Check(input.Password, operator.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenSvc.GenerateAccessToken(operator.ID, operator.Roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err), slog.Any("operator_id", operator.ID))

		return nil, errors.Wrap(err, "failed to login")
	}
	srv.log(ctx).Info("Operator logged in", slog.Any("operator_id", operator.ID))

	return &usecase.LoginResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.cfg.AccessTokenTTL / time.Second),
		Operator:    operator,
	}, nil
}

// EnsureBootstrapAdmin creates the configured administrator unless an operator
// with that username exists. Without a configured username it does nothing.
func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	admin := srv.cfg.BootstrapAdmin
	if admin == nil || strings.TrimSpace(admin.Username) == "" {
		return nil
	}

	username := strings.ToLower(strings.TrimSpace(admin.Username))
	var created bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		operatorRepo := repoFactory.NewOperatorRepository()

		_, err := operatorRepo.FindByUsername(ctx, username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return errors.Wrap(err, "failed to find operator")
		}

		hash, err := srv.hasher.Hash(admin.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash bootstrap admin password")
		}

		name := strings.TrimSpace(admin.Name)
		if name == "" {
			name = username
		}
		operator := &entity.Operator{
			Username:     username,
			Name:         name,
			PasswordHash: hash,
			Roles:        entity.Roles{entity.RoleAdmin, entity.RoleOperator},
		}
		if err := operatorRepo.Create(ctx, operator); err != nil {
			if errors.Is(err, domainerrors.ErrOperatorAlreadyExists) {
				return nil
			}

			return errors.Wrap(err, "failed to create bootstrap admin")
		}
		created = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to ensure bootstrap admin", slog.Any("error", err))

		return errors.Wrap(err, "failed to ensure bootstrap admin")
	}
	if created {
		srv.log(ctx).Info("Bootstrap admin created", slog.String("username", username))
	}

	return nil
}
