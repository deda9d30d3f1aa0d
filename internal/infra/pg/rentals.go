package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const rentalColumns = `id, user_id, car_id, rental_date, return_date, total_fee`

const createRental = `
INSERT INTO rentals (user_id, car_id, rental_date)
VALUES ($1, $2, $3)
RETURNING ` + rentalColumns

type CreateRentalParams struct {
	UserID     int64
	CarID      int64
	RentalDate pgtype.Timestamptz
}

func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg CreateRentalParams) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, createRental, arg.UserID, arg.CarID, arg.RentalDate))
}

const findOpenRentalByUser = `
SELECT ` + rentalColumns + `
FROM rentals
WHERE user_id = $1 AND return_date IS NULL`

func (q *Queries) FindOpenRentalByUser(ctx context.Context, db DBTX, userID int64) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, findOpenRentalByUser, userID))
}

const findOpenRentalByUserForUpdate = findOpenRentalByUser + ` FOR UPDATE`

func (q *Queries) FindOpenRentalByUserForUpdate(ctx context.Context, db DBTX, userID int64) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, findOpenRentalByUserForUpdate, userID))
}

const closeRental = `
UPDATE rentals
SET return_date = $2, total_fee = $3
WHERE id = $1 AND return_date IS NULL
RETURNING ` + rentalColumns

type CloseRentalParams struct {
	ID         int64
	ReturnDate pgtype.Timestamptz
	TotalFee   pgtype.Numeric
}

func (q *Queries) CloseRental(ctx context.Context, db DBTX, arg CloseRentalParams) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, closeRental, arg.ID, arg.ReturnDate, arg.TotalFee))
}

const listOverdueRentals = `
SELECT r.id, r.rental_date, u.id, u.email, c.id, c.make, c.model
FROM rentals r
JOIN users u ON u.id = r.user_id
JOIN cars c ON c.id = r.car_id
WHERE r.return_date IS NULL AND r.rental_date < $1
ORDER BY r.rental_date ASC, r.id ASC`

func (q *Queries) ListOverdueRentals(ctx context.Context, db DBTX, startedBefore pgtype.Timestamptz) ([]OverdueRentalRow, error) {
	rows, err := db.Query(ctx, listOverdueRentals, startedBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OverdueRentalRow
	for rows.Next() {
		var i OverdueRentalRow
		if err := rows.Scan(&i.RentalID, &i.RentalDate, &i.UserID, &i.UserEmail, &i.CarID, &i.CarMake, &i.CarModel); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanRental(row interface{ Scan(dest ...any) error }) (Rentals, error) {
	var i Rentals
	err := row.Scan(&i.ID, &i.UserID, &i.CarID, &i.RentalDate, &i.ReturnDate, &i.TotalFee)
	return i, err
}
