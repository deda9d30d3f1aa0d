package commands

import (
	"context"

	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"
)

// within runs fn in the unit of work. An error without a kind did not come
// from fn's own checks but from the transaction (begin, commit, exhausted
// retries, cancellation), so it is reported as a persistence failure.
func within(ctx context.Context, uow shared.UnitOfWork, msg string, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := uow.Within(ctx, fn)
	if err != nil && errs.KindOf(err) == "" {
		return errs.Persistence(err, msg)
	}
	return err
}
