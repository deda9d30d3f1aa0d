package queries

import (
	"strconv"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CarFilter is a set of optional constraints combined with AND.
type CarFilter struct {
	Make       *string
	Model      *string
	Year       *int
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Status     *car.Status
	MerchantID *int64
}

type RentalFilter struct {
	UserID          *int64
	CarID           *int64
	MerchantID      *int64
	MinFee          *decimal.Decimal
	MaxFee          *decimal.Decimal
	State           *rental.State
	RentalDateStart *time.Time
	RentalDateEnd   *time.Time
}

// ParseCarFilter reads car filters from query parameters. Unknown parameters are ignored.
func ParseCarFilter(params map[string]string) (CarFilter, error) {
	var f CarFilter
	var err error

	f.Make = optString(params, "make")
	f.Model = optString(params, "model")

	if f.Year, err = optInt(params, "year"); err != nil {
		return CarFilter{}, err
	}
	if f.MerchantID, err = optInt64(params, "merchant_id"); err != nil {
		return CarFilter{}, err
	}
	if f.MinPrice, err = optDecimalAlias(params, "min_price", "min_price_per_hour"); err != nil {
		return CarFilter{}, err
	}
	if f.MaxPrice, err = optDecimalAlias(params, "max_price", "max_price_per_hour"); err != nil {
		return CarFilter{}, err
	}

	if raw, ok := lookup(params, "status"); ok {
		status, err := car.ParseStatus(raw)
		if err != nil {
			return CarFilter{}, err
		}
		f.Status = &status
	}

	return f, nil
}

func ParseRentalFilter(params map[string]string) (RentalFilter, error) {
	var f RentalFilter
	var err error

	if f.CarID, err = optInt64(params, "car_id"); err != nil {
		return RentalFilter{}, err
	}
	if f.UserID, err = optInt64(params, "user_id"); err != nil {
		return RentalFilter{}, err
	}
	if f.MerchantID, err = optInt64(params, "merchant_id"); err != nil {
		return RentalFilter{}, err
	}
	if f.MinFee, err = optDecimal(params, "min_fee"); err != nil {
		return RentalFilter{}, err
	}
	if f.MaxFee, err = optDecimal(params, "max_fee"); err != nil {
		return RentalFilter{}, err
	}
	if f.RentalDateStart, err = optDate(params, "rental_date_start"); err != nil {
		return RentalFilter{}, err
	}
	if f.RentalDateEnd, err = optDate(params, "rental_date_end"); err != nil {
		return RentalFilter{}, err
	}

	if raw, ok := lookup(params, "status"); ok {
		state, err := rental.ParseState(raw)
		if err != nil {
			return RentalFilter{}, err
		}
		f.State = &state
	}

	return f, nil
}

func optString(params map[string]string, name string) *string {
	raw, ok := lookup(params, name)
	if !ok {
		return nil
	}
	return &raw
}

func optInt(params map[string]string, name string) (*int, error) {
	raw, ok := lookup(params, name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, errs.Validation(name, "'"+name+"' must be an integer")
	}
	v := int(n)
	return &v, nil
}

func optInt64(params map[string]string, name string) (*int64, error) {
	raw, ok := lookup(params, name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.Validation(name, "'"+name+"' must be an integer")
	}
	return &n, nil
}

func optDecimal(params map[string]string, name string) (*decimal.Decimal, error) {
	raw, ok := lookup(params, name)
	if !ok {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errs.Validation(name, "'"+name+"' must be a decimal number")
	}
	return &d, nil
}

// optDecimalAlias prefers the plain name over its alias when both are given.
func optDecimalAlias(params map[string]string, name, alias string) (*decimal.Decimal, error) {
	if _, ok := lookup(params, name); ok {
		return optDecimal(params, name)
	}
	return optDecimal(params, alias)
}

func optDate(params map[string]string, name string) (*time.Time, error) {
	raw, ok := lookup(params, name)
	if !ok {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errs.Validation(name, "'"+name+"' must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
