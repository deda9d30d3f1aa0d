package shared

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra/pg"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pg.DBTX) error) error
}

// Tx exposes repositories bound to one open transaction. Nothing obtained from it
// may be used after the surrounding Within call returns.
type Tx interface {
	Users() UserRepository
	Cars() CarRepository
	Rentals() RentalRepository
	DB() pg.DBTX
}

type UserRepository interface {
	// Create inserts the user and, for merchants, the merchant profile.
	Create(ctx context.Context, u *user.User) (*user.User, error)
	LockByID(ctx context.Context, userID int64) error
	FindMerchantByUserID(ctx context.Context, userID int64) (*user.Merchant, error)
}

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (*car.Car, error)
	FindByID(ctx context.Context, id int64) (*car.Car, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*car.Car, error)
	Update(ctx context.Context, c *car.Car) (*car.Car, error)
	UpdateStatus(ctx context.Context, id int64, status car.Status) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) (*rental.Rental, error)
	FindOpenByUserForUpdate(ctx context.Context, userID int64) (*rental.Rental, error)
	Close(ctx context.Context, r *rental.Rental) (*rental.Rental, error)
}
