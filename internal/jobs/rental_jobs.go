package jobs

import (
	"context"
	"time"
)

const reportTimeout = 30 * time.Second

// ReportOverdueRentals logs every open rental older than RENTAL_OVERDUE_AFTER.
// It only reads; overdue rentals stay open until the renter returns the car.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		olderThan := jr.config.Rental.OverdueAfter
		overdue, err := jr.rentals.ListOverdue(ctx, olderThan)
		if err != nil {
			jr.logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		for _, r := range overdue {
			jr.logger.Warn("Rental overdue",
				"rental_id", r.RentalID,
				"user_id", r.UserID,
				"user_email", r.UserEmail,
				"car_id", r.CarID,
				"car", r.CarMake+" "+r.CarModel,
				"rental_date", r.RentalDate)
		}

		jr.logger.Info("Overdue rental report", "count", len(overdue), "older_than", olderThan.String())
	})
}
