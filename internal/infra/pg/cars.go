package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const carColumns = `id, make, model, year, status, price_per_hour, merchant_id, created_at`

const createCar = `
INSERT INTO cars (make, model, year, status, price_per_hour, merchant_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + carColumns

type CreateCarParams struct {
	Make         string
	Model        string
	Year         int32
	Status       string
	PricePerHour pgtype.Numeric
	MerchantID   int64
}

func (q *Queries) CreateCar(ctx context.Context, db DBTX, arg CreateCarParams) (Cars, error) {
	row := db.QueryRow(ctx, createCar, arg.Make, arg.Model, arg.Year, arg.Status, arg.PricePerHour, arg.MerchantID)
	return scanCar(row)
}

const getCarByID = `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

func (q *Queries) GetCarByID(ctx context.Context, db DBTX, id int64) (Cars, error) {
	return scanCar(db.QueryRow(ctx, getCarByID, id))
}

const getCarByIDForUpdate = getCarByID + ` FOR UPDATE`

func (q *Queries) GetCarByIDForUpdate(ctx context.Context, db DBTX, id int64) (Cars, error) {
	return scanCar(db.QueryRow(ctx, getCarByIDForUpdate, id))
}

const updateCar = `
UPDATE cars
SET make = $2, model = $3, year = $4, price_per_hour = $5
WHERE id = $1
RETURNING ` + carColumns

type UpdateCarParams struct {
	ID           int64
	Make         string
	Model        string
	Year         int32
	PricePerHour pgtype.Numeric
}

func (q *Queries) UpdateCar(ctx context.Context, db DBTX, arg UpdateCarParams) (Cars, error) {
	row := db.QueryRow(ctx, updateCar, arg.ID, arg.Make, arg.Model, arg.Year, arg.PricePerHour)
	return scanCar(row)
}

const updateCarStatus = `UPDATE cars SET status = $2 WHERE id = $1`

func (q *Queries) UpdateCarStatus(ctx context.Context, db DBTX, id int64, status string) (int64, error) {
	tag, err := db.Exec(ctx, updateCarStatus, id, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCar = `DELETE FROM cars WHERE id = $1`

func (q *Queries) DeleteCar(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, deleteCar, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCar(row interface{ Scan(dest ...any) error }) (Cars, error) {
	var i Cars
	err := row.Scan(
		&i.ID, &i.Make, &i.Model, &i.Year, &i.Status, &i.PricePerHour, &i.MerchantID, &i.CreatedAt,
	)
	return i, err
}
