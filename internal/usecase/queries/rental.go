package queries

import (
	"context"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
)

var ErrNoRentalsFound = errs.Define(errs.KindNotFound, "No rentals found")

type RentalQueries interface {
	GetActiveRental(ctx context.Context, userID int64) (*RentalView, error)
	ListUserRentals(ctx context.Context, userID int64, params map[string]string) (*Page[RentalView], error)
	ListMerchantRentals(ctx context.Context, userID int64, params map[string]string) (*Page[RentalView], error)
	// ListOverdue returns open rentals that started more than olderThan ago, oldest first.
	ListOverdue(ctx context.Context, olderThan time.Duration) ([]OverdueRentalView, error)
}

type RentalReadStore interface {
	FindOpenByUser(ctx context.Context, userID int64) (*RentalView, error)
	Search(ctx context.Context, filter RentalFilter, page PageRequest) ([]RentalView, int64, error)
	ListOverdue(ctx context.Context, startedBefore time.Time) ([]OverdueRentalView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
	users     UserReadStore
	clock     clock.Clock
}

func NewRentalQueries(readStore RentalReadStore, users UserReadStore, clk clock.Clock) RentalQueries {
	return &rentalQueriesImpl{
		readStore: readStore,
		users:     users,
		clock:     clk,
	}
}

func (q *rentalQueriesImpl) GetActiveRental(ctx context.Context, userID int64) (*RentalView, error) {
	v, err := q.readStore.FindOpenByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, rental.ErrNoActiveRental
		}
		return nil, errs.Persistence(err, "failed to load active rental")
	}
	return v, nil
}

func (q *rentalQueriesImpl) ListUserRentals(ctx context.Context, userID int64, params map[string]string) (*Page[RentalView], error) {
	filter, page, err := parseRentalQuery(params)
	if err != nil {
		return nil, err
	}
	filter.UserID = &userID

	return q.search(ctx, filter, page, rental.ErrNoRentalHistory)
}

func (q *rentalQueriesImpl) ListMerchantRentals(ctx context.Context, userID int64, params map[string]string) (*Page[RentalView], error) {
	filter, page, err := parseRentalQuery(params)
	if err != nil {
		return nil, err
	}

	merchantID, err := merchantIDOf(ctx, q.users, userID)
	if err != nil {
		return nil, err
	}
	filter.MerchantID = &merchantID

	return q.search(ctx, filter, page, ErrNoRentalsFound)
}

func (q *rentalQueriesImpl) ListOverdue(ctx context.Context, olderThan time.Duration) ([]OverdueRentalView, error) {
	items, err := q.readStore.ListOverdue(ctx, q.clock.Now().Add(-olderThan))
	if err != nil {
		return nil, errs.Persistence(err, "failed to list overdue rentals")
	}
	return items, nil
}

func (q *rentalQueriesImpl) search(ctx context.Context, filter RentalFilter, page PageRequest, notFound error) (*Page[RentalView], error) {
	items, total, err := q.readStore.Search(ctx, filter, page)
	if err != nil {
		return nil, errs.Persistence(err, "failed to search rentals")
	}
	return emptyFirstPageCheck(NewPage(items, page, total), notFound)
}

func parseRentalQuery(params map[string]string) (RentalFilter, PageRequest, error) {
	page, err := ParsePageRequest(params)
	if err != nil {
		return RentalFilter{}, PageRequest{}, err
	}
	filter, err := ParseRentalFilter(params)
	if err != nil {
		return RentalFilter{}, PageRequest{}, err
	}
	return filter, page, nil
}
