package usecase

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AssociationUsecase provides the association profile.
// Reads are served from a process-wide cache; writes go through a single writer.
type AssociationUsecase interface {
	// Current returns the profile, initializing it from the configured defaults on first access.
	Current(ctx context.Context) (*entity.AssociationProfile, error)
	Update(ctx context.Context, input *UpdateAssociationInput) (*entity.AssociationProfile, error)
	SetLogo(ctx context.Context, image []byte) (*entity.AssociationProfile, error)
	SetSignature(ctx context.Context, image []byte) (*entity.AssociationProfile, error)
	// Logo returns the stored logo image, or ErrNotFound when none was set.
	Logo(ctx context.Context) ([]byte, error)
	// Signature returns the stored signature image, or ErrNotFound when none was set.
	Signature(ctx context.Context) ([]byte, error)
}

// UpdateAssociationInput defines the profile changes. Nil fields are left untouched.
type UpdateAssociationInput struct {
	Name              *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	President         *string          `json:"president,omitempty" validate:"omitempty,max=200"`
	TaxID             *string          `json:"tax_id,omitempty"`
	Phone             *string          `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email             *string          `json:"email,omitempty" validate:"omitempty,email"`
	Street            *string          `json:"street,omitempty" validate:"omitempty,max=200"`
	City              *string          `json:"city,omitempty" validate:"omitempty,max=100"`
	State             *string          `json:"state,omitempty"`
	PostalCode        *string          `json:"postal_code,omitempty" validate:"omitempty,max=9"`
	DefaultDuesAmount *decimal.Decimal `json:"default_dues_amount,omitempty"`
}
