package entity

import "slices"

// Role grants access to a group of API routes.
type Role string

const (
	// RoleOperator may manage members, dues and the ledger.
	RoleOperator Role = "operator"
	// RoleAdmin may additionally change the association profile.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleOperator || r == RoleAdmin
}

// Roles is the role set of an operator.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to the string claims stored in access tokens.
func (rs Roles) ToStrings() []string {
	result := make([]string, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.String())
	}

	return result
}

// RolesFromStrings parses token or database values. Unknown and repeated roles are dropped.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
