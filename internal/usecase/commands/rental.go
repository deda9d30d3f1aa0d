package commands

import (
	"context"

	"car-rental-api/internal/domain/auth"
	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"
)

type RentalCommands interface {
	// Rent opens a rental for an AVAILABLE car. A user holds at most one open rental.
	Rent(ctx context.Context, userID, carID int64) (*queries.RentalView, error)
	// ReturnCar closes the user's open rental and charges it.
	ReturnCar(ctx context.Context, userID int64) (*queries.RentalView, error)
}

type rentalCommandsImpl struct {
	uow      shared.UnitOfWork
	tracker  *AvailabilityTracker
	services *rental.Services
}

func NewRentalCommands(uow shared.UnitOfWork, tracker *AvailabilityTracker, services *rental.Services) RentalCommands {
	return &rentalCommandsImpl{
		uow:      uow,
		tracker:  tracker,
		services: services,
	}
}

// Lock order is user row, open rental, car row for both operations.
func (r *rentalCommandsImpl) Rent(ctx context.Context, userID, carID int64) (*queries.RentalView, error) {
	var created *rental.Rental
	err := within(ctx, r.uow, "failed to open rental", func(ctx context.Context, tx shared.Tx) error {
		if err := lockUser(ctx, tx, userID); err != nil {
			return err
		}

		_, err := tx.Rentals().FindOpenByUserForUpdate(ctx, userID)
		switch {
		case err == nil:
			return rental.ErrUserAlreadyRenting
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Persistence(err, "failed to check open rental")
		}

		c, err := tx.Cars().FindByIDForUpdate(ctx, carID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return car.ErrCarNotFound
			}
			return errs.Persistence(err, "failed to load car")
		}

		if err := r.tracker.MarkRented(ctx, tx, c); err != nil {
			return err
		}

		created, err = tx.Rentals().Create(ctx, rental.Open(r.services, userID, c.ID()))
		if err != nil {
			return translateOpenRentalConflict(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toRentalView(created), nil
}

func (r *rentalCommandsImpl) ReturnCar(ctx context.Context, userID int64) (*queries.RentalView, error) {
	var closed *rental.Rental
	err := within(ctx, r.uow, "failed to return car", func(ctx context.Context, tx shared.Tx) error {
		if err := lockUser(ctx, tx, userID); err != nil {
			return err
		}

		open, err := tx.Rentals().FindOpenByUserForUpdate(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rental.ErrNoActiveRental
			}
			return errs.Persistence(err, "failed to load open rental")
		}

		c, err := tx.Cars().FindByIDForUpdate(ctx, open.CarID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return car.ErrCarNotFound
			}
			return errs.Persistence(err, "failed to load car")
		}

		if err := open.Close(r.services, c.PricePerHour()); err != nil {
			return err
		}

		closed, err = tx.Rentals().Close(ctx, open)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rental.ErrNoActiveRental
			}
			return errs.Persistence(err, "failed to close rental")
		}

		return r.tracker.MarkAvailable(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}

	return toRentalView(closed), nil
}

func lockUser(ctx context.Context, tx shared.Tx, userID int64) error {
	if err := tx.Users().LockByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return auth.ErrUnauthenticated
		}
		return errs.Persistence(err, "failed to lock user")
	}
	return nil
}

// translateOpenRentalConflict maps a lost race on the open-rental indexes to
// the error the row locks would have produced.
func translateOpenRentalConflict(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		switch infra.ConstraintOf(err) {
		case pg.ConstraintOpenRentalUser:
			return rental.ErrUserAlreadyRenting
		case pg.ConstraintOpenRentalCar:
			return car.ErrCarNotAvailable
		}
	}
	return errs.Persistence(err, "failed to create rental")
}
