package user

import "strings"

type Role string

const (
	RoleUser     Role = "user"
	RoleMerchant Role = "merchant"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchant:
		return true
	default:
		return false
	}
}

// NewRole parses a role name case-insensitively.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
