package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fishers/config"
	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/domain/service"
	"fishers/internal/usecase"
	"fishers/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type imageKind string

const (
	imageKindLogo      imageKind = "logo"
	imageKindSignature imageKind = "signature"
)

// associationService implements the AssociationUsecase interface.
// The profile is cached after the first load; every write goes through writeMu
// and a row lock, then replaces the cached copy.
type associationService struct {
	txManager  repository.TransactionManager
	storage    service.FileStorage
	normalizer service.ImageNormalizer
	defaults   *config.AssociationConfig
	logger     *slog.Logger

	mu      sync.RWMutex
	cached  *entity.AssociationProfile
	writeMu sync.Mutex
}

// NewAssociationService is the constructor for associationService.
func NewAssociationService(
	txManager repository.TransactionManager,
	storage service.FileStorage,
	normalizer service.ImageNormalizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AssociationUsecase {
	return &associationService{
		txManager:  txManager,
		storage:    storage,
		normalizer: normalizer,
		defaults:   cfg.Association,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *associationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Current returns a copy of the cached profile, loading it on first access.
func (srv *associationService) Current(ctx context.Context) (*entity.AssociationProfile, error) {
	srv.mu.RLock()
	cached := srv.cached
	srv.mu.RUnlock()
	if cached != nil {
		return cached.Clone(), nil
	}

	profile, err := srv.load(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load association profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load association profile")
	}

	srv.mu.Lock()
	if srv.cached == nil {
		srv.cached = profile
	}
	current := srv.cached.Clone()
	srv.mu.Unlock()

	return current, nil
}

// load reads the profile row, inserting it from the configured defaults when the table is empty.
func (srv *associationService) load(ctx context.Context) (*entity.AssociationProfile, error) {
	var profile *entity.AssociationProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		associationRepo := repoFactory.NewAssociationRepository()

		var err error
		profile, err = associationRepo.Get(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return errors.Wrap(err, "failed to get association profile")
		}

		initial, err := srv.initialProfile()
		if err != nil {
			return err
		}
		if err := associationRepo.CreateIfAbsent(ctx, initial); err != nil {
			return errors.Wrap(err, "failed to initialize association profile")
		}
		srv.log(ctx).Info("Association profile initialized", slog.String("name", initial.Name))

		profile, err = associationRepo.Get(ctx)

		return errors.Wrap(err, "failed to get association profile")
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *associationService) initialProfile() (*entity.AssociationProfile, error) {
	amount, err := decimal.NewFromString(srv.defaults.DefaultDuesAmount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid configured dues amount %q", srv.defaults.DefaultDuesAmount)
	}

	return &entity.AssociationProfile{
		Name:              srv.defaults.Name,
		DefaultDuesAmount: amount.Round(2),
	}, nil
}

// Update applies the changes to the profile under the single writer.
func (srv *associationService) Update(ctx context.Context, input *usecase.UpdateAssociationInput) (*entity.AssociationProfile, error) {
	if err := validateAssociationInput(input); err != nil {
		return nil, err
	}

	updated, err := srv.write(ctx, func(profile *entity.AssociationProfile) error {
		applyAssociationInput(profile, input)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update association profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update association profile")
	}
	srv.log(ctx).Info("Association profile updated")

	return updated, nil
}

// write serializes profile changes: in-process through writeMu, across
// processes through the row lock taken by GetForUpdate.
func (srv *associationService) write(ctx context.Context, change func(profile *entity.AssociationProfile) error) (*entity.AssociationProfile, error) {
	srv.writeMu.Lock()
	defer srv.writeMu.Unlock()

	if _, err := srv.Current(ctx); err != nil {
		return nil, err
	}

	var updated *entity.AssociationProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		associationRepo := repoFactory.NewAssociationRepository()

		profile, err := associationRepo.GetForUpdate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to lock association profile")
		}
		if err := change(profile); err != nil {
			return err
		}
		if err := associationRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save association profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	srv.cached = updated
	srv.mu.Unlock()

	return updated.Clone(), nil
}

func (srv *associationService) SetLogo(ctx context.Context, image []byte) (*entity.AssociationProfile, error) {
	return srv.setImage(ctx, imageKindLogo, image)
}

func (srv *associationService) SetSignature(ctx context.Context, image []byte) (*entity.AssociationProfile, error) {
	return srv.setImage(ctx, imageKindSignature, image)
}

// setImage stores the normalized picture under a fresh key and records it on the profile.
// The previous picture is removed once the profile points at the new one.
func (srv *associationService) setImage(ctx context.Context, kind imageKind, image []byte) (*entity.AssociationProfile, error) {
	normalized, err := srv.normalizer.Normalize(image)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s image", kind)
	}

	key := fmt.Sprintf("association/%s-%s.png", kind, uuid.NewString())
	if err := srv.storage.Put(ctx, key, normalized, "image/png"); err != nil {
		srv.log(ctx).Error("Failed to store association image", slog.Any("error", err), slog.String("kind", string(kind)))

		return nil, errors.Wrapf(err, "failed to store %s image", kind)
	}

	var previous string
	updated, err := srv.write(ctx, func(profile *entity.AssociationProfile) error {
		field := &profile.LogoKey
		if kind == imageKindSignature {
			field = &profile.SignatureKey
		}
		previous, *field = *field, key

		return nil
	})
	if err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image", slog.Any("error", delErr), slog.String("key", key))
		}
		srv.log(ctx).Error("Failed to record association image", slog.Any("error", err), slog.String("kind", string(kind)))

		return nil, errors.Wrapf(err, "failed to set %s", kind)
	}

	if previous != "" {
		if err := srv.storage.Delete(ctx, previous); err != nil {
			srv.log(ctx).Warn("Failed to remove previous image", slog.Any("error", err), slog.String("key", previous))
		}
	}
	srv.log(ctx).Info("Association image updated", slog.String("kind", string(kind)), slog.String("key", key))

	return updated, nil
}

func (srv *associationService) Logo(ctx context.Context) ([]byte, error) {
	return srv.image(ctx, imageKindLogo)
}

func (srv *associationService) Signature(ctx context.Context) ([]byte, error) {
	return srv.image(ctx, imageKindSignature)
}

func (srv *associationService) image(ctx context.Context, kind imageKind) ([]byte, error) {
	profile, err := srv.Current(ctx)
	if err != nil {
		return nil, err
	}

	key := profile.LogoKey
	if kind == imageKindSignature {
		key = profile.SignatureKey
	}
	if key == "" {
		return nil, domainerrors.ErrNotFound.WithDetails(string(kind) + " not set")
	}

	data, err := srv.storage.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s image", kind)
	}

	return data, nil
}

func validateAssociationInput(input *usecase.UpdateAssociationInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("no changes supplied")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if input.TaxID != nil && strings.TrimSpace(*input.TaxID) != "" && !util.IsValidCNPJ(*input.TaxID) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid CNPJ")
	}
	if input.State != nil && strings.TrimSpace(*input.State) != "" && !entity.IsValidState(*input.State) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid state")
	}
	if input.DefaultDuesAmount != nil && !input.DefaultDuesAmount.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("default dues amount must be greater than zero")
	}

	return nil
}

func applyAssociationInput(profile *entity.AssociationProfile, input *usecase.UpdateAssociationInput) {
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.President != nil {
		profile.President = strings.TrimSpace(*input.President)
	}
	if input.TaxID != nil {
		profile.TaxID = ""
		if strings.TrimSpace(*input.TaxID) != "" {
			profile.TaxID = util.FormatCNPJ(*input.TaxID)
		}
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		profile.Email = strings.TrimSpace(*input.Email)
	}
	if input.Street != nil {
		profile.Street = strings.TrimSpace(*input.Street)
	}
	if input.City != nil {
		profile.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		profile.State = strings.ToUpper(strings.TrimSpace(*input.State))
	}
	if input.PostalCode != nil {
		profile.PostalCode = strings.TrimSpace(*input.PostalCode)
	}
	if input.DefaultDuesAmount != nil {
		profile.DefaultDuesAmount = input.DefaultDuesAmount.Round(2)
	}
}
