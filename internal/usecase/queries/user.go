package queries

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/queries/queries.go -package=mock_queries car-rental-api/internal/usecase/queries UserQueries,CarQueries,RentalQueries

import (
	"context"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
)

var ErrUserNotFound = errs.Define(errs.KindNotFound, "User not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Persistence(err, "failed to load user")
	}
	return u, nil
}

// merchantIDOf resolves the merchant profile of a merchant account.
func merchantIDOf(ctx context.Context, store UserReadStore, userID int64) (int64, error) {
	u, err := store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, errs.Persistence(err, "failed to load user")
	}
	if u.MerchantID == nil {
		return 0, user.ErrMerchantProfileAbsent
	}
	return *u.MerchantID, nil
}
