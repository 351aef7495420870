// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is a fisherman registered with the association.
// NationalID (CPF) and RegistrationNumber (RGP) are unique and never reassigned.
type Member struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	NationalID         string    `json:"national_id"`         // CPF, formatted 000.000.000-00
	RegistrationNumber string    `json:"registration_number"` // RGP, the fishing registry number
	BirthDate          time.Time `json:"birth_date"`
	IdentityNumber     string    `json:"identity_number,omitempty"` // RG
	IdentityIssuer     string    `json:"identity_issuer,omitempty"` // RG issuing agency
	Phone              string    `json:"phone,omitempty"`
	BenefitRequested   bool      `json:"benefit_requested"` // Seasonal-closure benefit already requested
	AssociatedAt       time.Time `json:"associated_at"`
	Address            *Address  `json:"address,omitempty"` // Nil when the member has no address on file
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
