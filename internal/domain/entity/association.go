package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssociationProfile is the association's own identity and defaults.
// Exactly one exists; it is initialized on first access.
type AssociationProfile struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	President         string          `json:"president,omitempty"`
	LogoKey           string          `json:"logo_key,omitempty"`      // Stored logo image, empty when unset
	SignatureKey      string          `json:"signature_key,omitempty"` // Stored president signature image
	TaxID             string          `json:"tax_id,omitempty"`        // CNPJ
	Phone             string          `json:"phone,omitempty"`
	Email             string          `json:"email,omitempty"`
	Street            string          `json:"street,omitempty"`
	City              string          `json:"city,omitempty"`
	State             string          `json:"state,omitempty"`
	PostalCode        string          `json:"postal_code,omitempty"`
	DefaultDuesAmount decimal.Decimal `json:"default_dues_amount"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Clone returns a copy safe to hand out while the original stays cached.
func (p *AssociationProfile) Clone() *AssociationProfile {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}
