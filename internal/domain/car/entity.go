package car

import (
	"strings"
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

const (
	MinYear      = 1886
	maxTextLen   = 50
	priceDecimal = 2
)

// NUMERIC(10,2) upper bound
var maxPricePerHour = decimal.RequireFromString("99999999.99")

var (
	ErrCarNotFound     = errs.Define(errs.KindNotFound, "Car not found")
	ErrCarNotAvailable = errs.Define(errs.KindConflict, "This car is not available for rent")
	ErrInvalidStatus   = errs.DefineField(errs.KindValidation, "status", "status must be one of AVAILABLE, RENTED")
	ErrInvalidMake     = errs.DefineField(errs.KindValidation, "make", "make is required and must be at most 50 characters")
	ErrInvalidModel    = errs.DefineField(errs.KindValidation, "model", "model is required and must be at most 50 characters")
	ErrInvalidYear     = errs.DefineField(errs.KindValidation, "year", "year is out of range")
	ErrInvalidPrice    = errs.DefineField(errs.KindValidation, "price_per_hour", "price_per_hour must be a non-negative amount below 100000000")
)

type Car struct {
	id           int64
	merchantID   int64
	make         string
	model        string
	year         int
	status       Status
	pricePerHour decimal.Decimal
	createdAt    time.Time
}

// NewCar validates the attributes of a car that a merchant lists. New cars are AVAILABLE.
// The latest accepted model year is next year according to clk.
func NewCar(clk clock.Clock, merchantID int64, manufacturer, model string, year int, pricePerHour decimal.Decimal) (*Car, error) {
	c := &Car{
		merchantID: merchantID,
		status:     StatusAvailable,
	}
	if err := c.apply(clk, manufacturer, model, year, pricePerHour); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCar(id, merchantID int64, manufacturer, model string, year int, status Status, pricePerHour decimal.Decimal, createdAt time.Time) *Car {
	return &Car{
		id:           id,
		merchantID:   merchantID,
		make:         manufacturer,
		model:        model,
		year:         year,
		status:       status,
		pricePerHour: pricePerHour,
		createdAt:    createdAt,
	}
}

func (c *Car) ID() int64                     { return c.id }
func (c *Car) MerchantID() int64             { return c.merchantID }
func (c *Car) Make() string                  { return c.make }
func (c *Car) Model() string                 { return c.model }
func (c *Car) Year() int                     { return c.year }
func (c *Car) Status() Status                { return c.status }
func (c *Car) PricePerHour() decimal.Decimal { return c.pricePerHour }
func (c *Car) CreatedAt() time.Time          { return c.createdAt }

func (c *Car) IsAvailable() bool { return c.status == StatusAvailable }

func (c *Car) IsOwnedBy(merchantID int64) bool { return c.merchantID == merchantID }

// MarkRented moves an AVAILABLE car to RENTED.
func (c *Car) MarkRented() error {
	if c.status != StatusAvailable {
		return ErrCarNotAvailable
	}
	c.status = StatusRented
	return nil
}

// MarkAvailable is unconditional; closing a rental always frees the car.
func (c *Car) MarkAvailable() {
	c.status = StatusAvailable
}

// Update applies a partial change. Nil fields keep their current value.
func (c *Car) Update(clk clock.Clock, manufacturer, model *string, year *int, pricePerHour *decimal.Decimal) error {
	return c.apply(
		clk,
		patch.Coalesce(manufacturer, c.make),
		patch.Coalesce(model, c.model),
		patch.Coalesce(year, c.year),
		patch.Coalesce(pricePerHour, c.pricePerHour),
	)
}

// EnsureDeletable rejects deleting a car while it is out on a rental.
func (c *Car) EnsureDeletable() error {
	if c.status == StatusRented {
		return ErrCarNotAvailable
	}
	return nil
}

func (c *Car) apply(clk clock.Clock, manufacturer, model string, year int, pricePerHour decimal.Decimal) error {
	manufacturer = strings.TrimSpace(manufacturer)
	model = strings.TrimSpace(model)

	if manufacturer == "" || len(manufacturer) > maxTextLen {
		return ErrInvalidMake
	}
	if model == "" || len(model) > maxTextLen {
		return ErrInvalidModel
	}
	if year < MinYear || year > clk.Now().Year()+1 {
		return ErrInvalidYear
	}
	price := pricePerHour.Round(priceDecimal)
	if price.IsNegative() || price.GreaterThan(maxPricePerHour) {
		return ErrInvalidPrice
	}

	c.make = manufacturer
	c.model = model
	c.year = year
	c.pricePerHour = price
	return nil
}
