package validator

import (
	"testing"

	domainerrors "fishers/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addressRequest struct {
	State string `json:"state" validate:"required,uf"`
}

type memberRequest struct {
	Name       string          `json:"name" validate:"required"`
	NationalID string          `json:"national_id" validate:"required,cpf"`
	Address    *addressRequest `json:"address" validate:"omitempty"`
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&memberRequest{Name: "Maria", NationalID: "529.982.247-25"}))

	err := v.Validate(&memberRequest{NationalID: "529.982.247-26", Address: &addressRequest{State: "ZZ"}})
	require.Error(t, err)

	var validationErr *Error
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, map[string]string{
		"name":          "required",
		"national_id":   "cpf",
		"address.state": "uf",
	}, validationErr.Fields)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "validation failed: address.state: uf, name: required, national_id: cpf", err.Error())
}
