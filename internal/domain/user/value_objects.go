package user

import (
	"regexp"
	"strings"

	"car-rental-api/internal/pkg/errs"
)

var (
	ErrInvalidEmail          = errs.DefineField(errs.KindValidation, "email", "invalid email format")
	ErrInvalidRole           = errs.DefineField(errs.KindValidation, "role", "invalid role")
	ErrPasswordTooWeak       = errs.DefineField(errs.KindValidation, "password", "password must be at least 8 characters long")
	ErrNameRequired          = errs.DefineField(errs.KindValidation, "name", "name is required")
	ErrSurnameRequired       = errs.DefineField(errs.KindValidation, "surname", "surname is required")
	ErrCompanyNameRequired   = errs.DefineField(errs.KindValidation, "company_name", "Merchant must provide a company name")
	ErrMerchantProfileAbsent = errs.Define(errs.KindForbidden, "merchant profile not found")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
