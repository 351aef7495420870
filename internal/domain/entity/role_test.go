package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "merchant", "operator", "admin"})

	assert.Equal(t, Roles{RoleAdmin, RoleOperator}, roles)
	assert.True(t, roles.Contains(RoleOperator))
	assert.Equal(t, []string{"admin", "operator"}, roles.ToStrings())
	assert.Empty(t, RolesFromStrings(nil).ToStrings())
}
