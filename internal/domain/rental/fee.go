package rental

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	feeDecimalPlaces = 2
	microsPerHour    = int64(time.Hour / time.Microsecond)
)

type FeeCalculator interface {
	Calculate(pricePerHour decimal.Decimal, from, to time.Time) decimal.Decimal
}

// DefaultFeeCalculator bills the exact elapsed time at microsecond resolution.
// The result is rounded half-up to cents.
type DefaultFeeCalculator struct{}

func NewDefaultFeeCalculator() *DefaultFeeCalculator {
	return &DefaultFeeCalculator{}
}

func (DefaultFeeCalculator) Calculate(pricePerHour decimal.Decimal, from, to time.Time) decimal.Decimal {
	elapsed := to.Sub(from)
	if elapsed < 0 {
		elapsed = 0
	}
	micros := decimal.NewFromInt(elapsed.Microseconds())
	return pricePerHour.Mul(micros).DivRound(decimal.NewFromInt(microsPerHour), feeDecimalPlaces)
}
