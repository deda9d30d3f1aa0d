package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pg.DBTX, id int64) (pg.UserWithMerchantRow, error)
	FindUserByEmail(ctx context.Context, db pg.DBTX, email string) (pg.UserWithMerchantRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pg.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pg.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toUserView(row), row.PasswordHash, nil
}

func toUserView(row pg.UserWithMerchantRow) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		Surname:     row.Surname,
		Role:        row.Role,
		MerchantID:  pgconv.Int64PtrFromPgtype(row.MerchantID),
		CompanyName: pgconv.StringPtrFromPgtype(row.CompanyName),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
