package auth

import (
	"strings"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Define(errs.KindUnauthenticated, "Invalid email or password")
	ErrCredentialsMissing = errs.Define(errs.KindValidation, "Email and password required")
)

// Credentials is a login attempt. Password strength is only enforced at registration.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	if strings.TrimSpace(emailStr) == "" || passwordStr == "" {
		return Credentials{}, ErrCredentialsMissing
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
