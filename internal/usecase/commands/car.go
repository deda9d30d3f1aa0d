package commands

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/user"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"
)

type CarCommands interface {
	Create(ctx context.Context, userID int64, req reqdto.CreateCarRequest) (*queries.CarView, error)
	Update(ctx context.Context, userID, carID int64, req reqdto.UpdateCarRequest) (*queries.CarView, error)
	Delete(ctx context.Context, userID, carID int64) error
}

type carCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCarCommands(uow shared.UnitOfWork, clk clock.Clock) CarCommands {
	return &carCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (h *carCommandsImpl) Create(ctx context.Context, userID int64, req reqdto.CreateCarRequest) (*queries.CarView, error) {
	if req.PricePerHour == nil {
		return nil, car.ErrInvalidPrice
	}

	var created *car.Car
	err := within(ctx, h.uow, "failed to create car", func(ctx context.Context, tx shared.Tx) error {
		merchant, err := merchantOf(ctx, tx, userID)
		if err != nil {
			return err
		}

		c, err := car.NewCar(h.clock, merchant.ID(), req.Make, req.Model, req.Year, *req.PricePerHour)
		if err != nil {
			return err
		}

		created, err = tx.Cars().Create(ctx, c)
		if err != nil {
			return errs.Persistence(err, "failed to create car")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCarView(created), nil
}

func (h *carCommandsImpl) Update(ctx context.Context, userID, carID int64, req reqdto.UpdateCarRequest) (*queries.CarView, error) {
	var updated *car.Car
	err := within(ctx, h.uow, "failed to update car", func(ctx context.Context, tx shared.Tx) error {
		c, err := ownedCarForUpdate(ctx, tx, userID, carID)
		if err != nil {
			return err
		}

		if err := c.Update(h.clock, req.Make, req.Model, req.Year, req.PricePerHour); err != nil {
			return err
		}

		updated, err = tx.Cars().Update(ctx, c)
		if err != nil {
			return errs.Persistence(err, "failed to update car")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCarView(updated), nil
}

// Delete refuses a rented car so an open rental never loses its car.
func (h *carCommandsImpl) Delete(ctx context.Context, userID, carID int64) error {
	return within(ctx, h.uow, "failed to delete car", func(ctx context.Context, tx shared.Tx) error {
		c, err := ownedCarForUpdate(ctx, tx, userID, carID)
		if err != nil {
			return err
		}

		if err := c.EnsureDeletable(); err != nil {
			return err
		}

		if err := tx.Cars().Delete(ctx, c.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return car.ErrCarNotFound
			}
			return errs.Persistence(err, "failed to delete car")
		}
		return nil
	})
}

func merchantOf(ctx context.Context, tx shared.Tx, userID int64) (*user.Merchant, error) {
	merchant, err := tx.Users().FindMerchantByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrMerchantProfileAbsent
		}
		return nil, errs.Persistence(err, "failed to load merchant profile")
	}
	return merchant, nil
}

// ownedCarForUpdate reports another merchant's car as not found.
func ownedCarForUpdate(ctx context.Context, tx shared.Tx, userID, carID int64) (*car.Car, error) {
	merchant, err := merchantOf(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	c, err := tx.Cars().FindByIDForUpdate(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, car.ErrCarNotFound
		}
		return nil, errs.Persistence(err, "failed to load car")
	}

	if !c.IsOwnedBy(merchant.ID()) {
		return nil, car.ErrCarNotFound
	}
	return c, nil
}
