//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type RentalBuilder struct {
	ID         int64
	UserID     int64
	CarID      int64
	RentalDate time.Time
	ReturnDate *time.Time
	TotalFee   *decimal.Decimal
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         1,
		UserID:     1,
		CarID:      1,
		RentalDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RentalBuilder) BuildDomain() *rental.Rental {
	return rental.Reconstruct(r.ID, r.UserID, r.CarID, r.RentalDate, r.ReturnDate, r.TotalFee)
}

func (r *RentalBuilder) BuildInfra() pg.Rentals {
	return pg.Rentals{
		ID:         r.ID,
		UserID:     r.UserID,
		CarID:      r.CarID,
		RentalDate: pgtype.Timestamptz{Time: r.RentalDate, Valid: true},
		ReturnDate: pgconv.TimePtrToPgtype(r.ReturnDate),
		TotalFee:   pgconv.DecimalPtrToNumeric(r.TotalFee),
	}
}

func (r *RentalBuilder) BuildReadModel() *queries.RentalView {
	return &queries.RentalView{
		ID:         r.ID,
		UserID:     r.UserID,
		CarID:      r.CarID,
		RentalDate: r.RentalDate,
		ReturnDate: r.ReturnDate,
		TotalFee:   r.TotalFee,
	}
}

// Returned closes the rental after the given duration with the given fee.
func (r *RentalBuilder) Returned(after time.Duration, fee string) *RentalBuilder {
	returnDate := r.RentalDate.Add(after)
	total := decimal.RequireFromString(fee)
	r.ReturnDate = &returnDate
	r.TotalFee = &total
	return r
}
