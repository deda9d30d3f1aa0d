package commands

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/commands/commands.go -package=mock_commands car-rental-api/internal/usecase/commands AuthCommands,CarCommands,RentalCommands

import (
	"context"

	"car-rental-api/internal/domain/auth"
	"car-rental-api/internal/domain/user"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"
)

var (
	ErrUserAlreadyExists   = errs.Define(errs.KindConflict, "User already exists")
	ErrInvalidRefreshToken = errs.Define(errs.KindUnauthenticated, "Invalid refresh token")
	ErrTokenGeneration     = errs.New("token generation failed")
)

type LoginResult struct {
	User      *queries.UserView
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     PasswordHasher
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, hasher PasswordHasher) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	role, err := req.RoleOrDefault()
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(email, hash, req.Name, req.Surname, role, req.CompanyName)
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = within(ctx, a.uow, "failed to register user", func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Users().Create(ctx, newUser)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) && infra.ConstraintOf(createErr) == pg.ConstraintUsersEmail {
				return ErrUserAlreadyExists
			}
			return errs.Persistence(createErr, "failed to register user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUserView(created), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokens, err := a.issueTokens(view)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      view,
		TokenPair: tokens,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	// The role is re-read so a token never outlives a role change.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Persistence(err, "failed to load user")
	}

	return a.issueTokens(view)
}

func (a *authCommandsImpl) issueTokens(view *queries.UserView) (*TokenPair, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, auth.ErrInvalidCredentials
		}
		return nil, errs.Persistence(err, "failed to load user")
	}

	if err := a.hasher.Compare(hashedPassword, credentials.Password()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return view, nil
}
