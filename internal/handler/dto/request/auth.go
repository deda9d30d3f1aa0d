package request

import (
	"car-rental-api/internal/domain/auth"
	"car-rental-api/internal/domain/user"
)

// LoginRequest fields are checked by the domain so a missing field reports
// the same message as the original login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}

// RoleOrDefault returns the requested role, user when omitted.
func (r *RegisterRequest) RoleOrDefault() (user.Role, error) {
	if r.Role == "" {
		return user.RoleUser, nil
	}
	return user.NewRole(r.Role)
}
