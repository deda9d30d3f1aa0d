package repository

import (
	"context"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/pgconv"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db pg.DBTX, arg pg.CreateUserParams) (pg.Users, error)
	CreateMerchant(ctx context.Context, db pg.DBTX, arg pg.CreateMerchantParams) (pg.Merchants, error)
	LockUserByID(ctx context.Context, db pg.DBTX, id int64) error
	FindMerchantByUserID(ctx context.Context, db pg.DBTX, userID int64) (pg.Merchants, error)
}

type UserRepository struct {
	queries UserQueries
	db      pg.DBTX
}

func NewUserRepository(queries UserQueries, db pg.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, r.db, pg.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Surname:      u.Surname(),
		Role:         u.Role().String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	var merchant *user.Merchant
	if u.IsMerchant() {
		m, err := r.queries.CreateMerchant(ctx, r.db, pg.CreateMerchantParams{
			UserID:      row.ID,
			CompanyName: u.Merchant().CompanyName(),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to create merchant profile", err)
		}
		merchant = user.ReconstructMerchant(m.ID, m.UserID, m.CompanyName)
	}

	return user.ReconstructUser(row.ID, u.Email(), row.PasswordHash, row.Name, row.Surname,
		u.Role(), merchant, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

// LockByID serializes rental operations of one user.
func (r *UserRepository) LockByID(ctx context.Context, userID int64) error {
	if err := r.queries.LockUserByID(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}

func (r *UserRepository) FindMerchantByUserID(ctx context.Context, userID int64) (*user.Merchant, error) {
	m, err := r.queries.FindMerchantByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find merchant profile", err)
	}
	return user.ReconstructMerchant(m.ID, m.UserID, m.CompanyName), nil
}
