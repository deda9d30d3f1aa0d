package rental

import (
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrUserAlreadyRenting = errs.Define(errs.KindConflict, "User already has an active rental")
	ErrNoActiveRental     = errs.Define(errs.KindNotFound, "User does not have an active rental to return")
	ErrNoRentalHistory    = errs.Define(errs.KindNotFound, "You have no rental history")
	ErrRentalClosed       = errs.Define(errs.KindConflict, "Rental is already closed")
	ErrInvalidState       = errs.DefineField(errs.KindValidation, "status", "status must be one of active, completed")
)

type Services struct {
	Clock         clock.Clock
	FeeCalculator FeeCalculator
}

// Rental is open while returnDate is nil. Once closed it never changes again.
type Rental struct {
	id         int64
	userID     int64
	carID      int64
	rentalDate time.Time
	returnDate *time.Time
	totalFee   *decimal.Decimal
}

// Open starts a rental at the current time. The car must already be marked rented
// in the same transaction.
func Open(services *Services, userID, carID int64) *Rental {
	return &Rental{
		userID:     userID,
		carID:      carID,
		rentalDate: services.Clock.Now(),
	}
}

func Reconstruct(id, userID, carID int64, rentalDate time.Time, returnDate *time.Time, totalFee *decimal.Decimal) *Rental {
	return &Rental{
		id:         id,
		userID:     userID,
		carID:      carID,
		rentalDate: rentalDate,
		returnDate: returnDate,
		totalFee:   totalFee,
	}
}

func (r *Rental) ID() int64                  { return r.id }
func (r *Rental) UserID() int64              { return r.userID }
func (r *Rental) CarID() int64               { return r.carID }
func (r *Rental) RentalDate() time.Time      { return r.rentalDate }
func (r *Rental) ReturnDate() *time.Time     { return r.returnDate }
func (r *Rental) TotalFee() *decimal.Decimal { return r.totalFee }
func (r *Rental) IsOpen() bool               { return r.returnDate == nil }

func (r *Rental) State() State {
	if r.IsOpen() {
		return StateActive
	}
	return StateCompleted
}

// Close sets the return date and the fee exactly once.
func (r *Rental) Close(services *Services, pricePerHour decimal.Decimal) error {
	if !r.IsOpen() {
		return ErrRentalClosed
	}
	now := services.Clock.Now()
	fee := services.FeeCalculator.Calculate(pricePerHour, r.rentalDate, now)
	r.returnDate = &now
	r.totalFee = &fee
	return nil
}

// AssignID is called by the store after the row is inserted.
func (r *Rental) AssignID(id int64) {
	r.id = id
}
