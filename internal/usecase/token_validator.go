package usecase

import (
	"car-rental-api/internal/domain/auth"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
)

var ErrNotAccessToken = errs.Define(errs.KindUnauthenticated, "Invalid or expired token")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only; a refresh token cannot authenticate a request.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return auth.NewPrincipal(claims.UserID, role), nil
}
