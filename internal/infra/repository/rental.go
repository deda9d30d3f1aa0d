package repository

import (
	"context"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
)

var errRentalStillOpen = errs.New("rental has no return date")

type RentalQueries interface {
	CreateRental(ctx context.Context, db pg.DBTX, arg pg.CreateRentalParams) (pg.Rentals, error)
	FindOpenRentalByUserForUpdate(ctx context.Context, db pg.DBTX, userID int64) (pg.Rentals, error)
	CloseRental(ctx context.Context, db pg.DBTX, arg pg.CloseRentalParams) (pg.Rentals, error)
}

type RentalRepository struct {
	queries RentalQueries
	db      pg.DBTX
}

func NewRentalRepository(queries RentalQueries, db pg.DBTX) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) (*rental.Rental, error) {
	row, err := r.queries.CreateRental(ctx, r.db, pg.CreateRentalParams{
		UserID:     rent.UserID(),
		CarID:      rent.CarID(),
		RentalDate: pgconv.TimeToPgtype(rent.RentalDate()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return toDomainRental(row)
}

func (r *RentalRepository) FindOpenByUserForUpdate(ctx context.Context, userID int64) (*rental.Rental, error) {
	row, err := r.queries.FindOpenRentalByUserForUpdate(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open rental", err)
	}
	return toDomainRental(row)
}

// Close persists a rental already closed in memory. The row must still be open.
func (r *RentalRepository) Close(ctx context.Context, rent *rental.Rental) (*rental.Rental, error) {
	if rent.ReturnDate() == nil || rent.TotalFee() == nil {
		return nil, infra.WrapRepoErr("failed to close rental", errRentalStillOpen, infra.KindDBFailure)
	}

	row, err := r.queries.CloseRental(ctx, r.db, pg.CloseRentalParams{
		ID:         rent.ID(),
		ReturnDate: pgconv.TimeToPgtype(*rent.ReturnDate()),
		TotalFee:   pgconv.DecimalToNumeric(*rent.TotalFee()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to close rental", err)
	}
	return toDomainRental(row)
}

func toDomainRental(row pg.Rentals) (*rental.Rental, error) {
	fee, err := pgconv.DecimalPtrFromNumeric(row.TotalFee)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total_fee", err, infra.KindDBFailure)
	}
	return rental.Reconstruct(row.ID, row.UserID, row.CarID,
		pgconv.TimeFromPgtype(row.RentalDate), pgconv.TimePtrFromPgtype(row.ReturnDate), fee), nil
}
