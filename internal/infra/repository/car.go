package repository

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/pgconv"
)

type CarQueries interface {
	CreateCar(ctx context.Context, db pg.DBTX, arg pg.CreateCarParams) (pg.Cars, error)
	GetCarByID(ctx context.Context, db pg.DBTX, id int64) (pg.Cars, error)
	GetCarByIDForUpdate(ctx context.Context, db pg.DBTX, id int64) (pg.Cars, error)
	UpdateCar(ctx context.Context, db pg.DBTX, arg pg.UpdateCarParams) (pg.Cars, error)
	UpdateCarStatus(ctx context.Context, db pg.DBTX, id int64, status string) (int64, error)
	DeleteCar(ctx context.Context, db pg.DBTX, id int64) (int64, error)
}

type CarRepository struct {
	queries CarQueries
	db      pg.DBTX
}

func NewCarRepository(queries CarQueries, db pg.DBTX) *CarRepository {
	return &CarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (*car.Car, error) {
	row, err := r.queries.CreateCar(ctx, r.db, pg.CreateCarParams{
		Make:  c.Make(),
		Model: c.Model(),
		// #nosec G115 -- year is bounded by car.NewCar
		Year:         int32(c.Year()),
		Status:       c.Status().String(),
		PricePerHour: pgconv.DecimalToNumeric(c.PricePerHour()),
		MerchantID:   c.MerchantID(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create car", err)
	}
	return r.toDomain(row)
}

func (r *CarRepository) FindByID(ctx context.Context, id int64) (*car.Car, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	return r.toDomain(row)
}

// FindByIDForUpdate locks the car row until the transaction ends.
func (r *CarRepository) FindByIDForUpdate(ctx context.Context, id int64) (*car.Car, error) {
	row, err := r.queries.GetCarByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock car", err)
	}
	return r.toDomain(row)
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) (*car.Car, error) {
	row, err := r.queries.UpdateCar(ctx, r.db, pg.UpdateCarParams{
		ID:    c.ID(),
		Make:  c.Make(),
		Model: c.Model(),
		// #nosec G115 -- year is bounded by car.Update
		Year:         int32(c.Year()),
		PricePerHour: pgconv.DecimalToNumeric(c.PricePerHour()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update car", err)
	}
	return r.toDomain(row)
}

func (r *CarRepository) UpdateStatus(ctx context.Context, id int64, status car.Status) error {
	n, err := r.queries.UpdateCarStatus(ctx, r.db, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update car status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteCar(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) toDomain(row pg.Cars) (*car.Car, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price_per_hour", err, infra.KindDBFailure)
	}
	return car.ReconstructCar(row.ID, row.MerchantID, row.Make, row.Model, int(row.Year),
		car.Status(row.Status), price, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
