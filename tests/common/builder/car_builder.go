//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/car"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CarBuilder struct {
	ID           int64
	MerchantID   int64
	Make         string
	Model        string
	Year         int
	Status       car.Status
	PricePerHour decimal.Decimal
	CreatedAt    time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:           1,
		MerchantID:   1,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Status:       car.StatusAvailable,
		PricePerHour: decimal.RequireFromString("10.00"),
		CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CarBuilder) BuildDomain() *car.Car {
	return car.ReconstructCar(c.ID, c.MerchantID, c.Make, c.Model, c.Year, c.Status, c.PricePerHour, c.CreatedAt)
}

func (c *CarBuilder) BuildInfra() pg.Cars {
	return pg.Cars{
		ID:           c.ID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         int32(c.Year),
		Status:       c.Status.String(),
		PricePerHour: pgconv.DecimalToNumeric(c.PricePerHour),
		MerchantID:   c.MerchantID,
		CreatedAt:    pgtype.Timestamptz{Time: c.CreatedAt, Valid: true},
	}
}

func (c *CarBuilder) BuildReadModel() *queries.CarView {
	return &queries.CarView{
		ID:           c.ID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		Status:       c.Status.String(),
		PricePerHour: c.PricePerHour,
		MerchantID:   c.MerchantID,
		CreatedAt:    c.CreatedAt,
	}
}

func (c *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	price := c.PricePerHour
	return reqdto.CreateCarRequest{
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		PricePerHour: &price,
	}
}

// Fluent builder methods
func (c *CarBuilder) WithID(id int64) *CarBuilder {
	c.ID = id
	return c
}

func (c *CarBuilder) AsRented() *CarBuilder {
	c.Status = car.StatusRented
	return c
}
