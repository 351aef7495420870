package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the postal address of a member. A member has at most one.
type Address struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement,omitempty"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`       // Two-letter UF code
	PostalCode string    `json:"postal_code"` // CEP, 00000-000
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// String renders the address on a single line.
func (a *Address) String() string {
	return fmt.Sprintf("%s, %s - %s - %s/%s", a.Street, a.Number, a.District, a.City, a.State)
}

var brazilianStates = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO", "MA", "MG", "MS", "MT", "PA",
	"PB", "PE", "PI", "PR", "RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// IsValidState reports whether uf is one of the Brazilian federative units.
func IsValidState(uf string) bool {
	return slices.Contains(brazilianStates, strings.ToUpper(strings.TrimSpace(uf)))
}
