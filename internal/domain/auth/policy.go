package auth

import (
	"fmt"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/errs"
)

var ErrUnauthenticated = errs.Define(errs.KindUnauthenticated, "Authentication required")

// Principal is the authenticated actor of a request.
type Principal struct {
	UserID int64
	Role   user.Role
}

func NewPrincipal(userID int64, role user.Role) *Principal {
	return &Principal{UserID: userID, Role: role}
}

// Authorize allows the principal iff it holds exactly the required role.
// A nil principal is rejected before any role comparison.
func Authorize(p *Principal, required user.Role) error {
	if p == nil {
		return ErrUnauthenticated
	}
	if p.Role != required {
		return errs.Newk(errs.KindForbidden, fmt.Sprintf("Access forbidden: Requires '%s' role", required))
	}
	return nil
}
