package commands

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"
)

// AvailabilityTracker keeps a car's status in step with its rentals. It writes
// through the caller's transaction and never commits.
type AvailabilityTracker struct{}

func NewAvailabilityTracker() *AvailabilityTracker {
	return &AvailabilityTracker{}
}

// MarkRented fails with car.ErrCarNotAvailable unless the car is AVAILABLE.
func (t *AvailabilityTracker) MarkRented(ctx context.Context, tx shared.Tx, c *car.Car) error {
	if err := c.MarkRented(); err != nil {
		return err
	}
	if err := tx.Cars().UpdateStatus(ctx, c.ID(), c.Status()); err != nil {
		return errs.Persistence(err, "failed to mark car rented")
	}
	return nil
}

func (t *AvailabilityTracker) MarkAvailable(ctx context.Context, tx shared.Tx, c *car.Car) error {
	c.MarkAvailable()
	if err := tx.Cars().UpdateStatus(ctx, c.ID(), c.Status()); err != nil {
		return errs.Persistence(err, "failed to mark car available")
	}
	return nil
}
