package queries

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
)

var ErrNoCarsFound = errs.Define(errs.KindNotFound, "No cars found")

type CarQueries interface {
	GetCar(ctx context.Context, id int64) (*CarView, error)
	// SearchAvailable is the public search; it only ever returns AVAILABLE cars.
	SearchAvailable(ctx context.Context, params map[string]string) (*Page[CarView], error)
	ListMerchantCars(ctx context.Context, userID int64, params map[string]string) (*Page[CarView], error)
}

type CarReadStore interface {
	FindByID(ctx context.Context, id int64) (*CarView, error)
	Search(ctx context.Context, filter CarFilter, page PageRequest) ([]CarView, int64, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
	users     UserReadStore
}

func NewCarQueries(readStore CarReadStore, users UserReadStore) CarQueries {
	return &carQueriesImpl{
		readStore: readStore,
		users:     users,
	}
}

func (q *carQueriesImpl) GetCar(ctx context.Context, id int64) (*CarView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, car.ErrCarNotFound
		}
		return nil, errs.Persistence(err, "failed to load car")
	}
	return v, nil
}

func (q *carQueriesImpl) SearchAvailable(ctx context.Context, params map[string]string) (*Page[CarView], error) {
	filter, page, err := parseCarQuery(params)
	if err != nil {
		return nil, err
	}

	if filter.Status != nil && *filter.Status != car.StatusAvailable {
		return emptyFirstPageCheck(NewPage[CarView](nil, page, 0), ErrNoCarsFound)
	}
	available := car.StatusAvailable
	filter.Status = &available

	return q.search(ctx, filter, page)
}

func (q *carQueriesImpl) ListMerchantCars(ctx context.Context, userID int64, params map[string]string) (*Page[CarView], error) {
	filter, page, err := parseCarQuery(params)
	if err != nil {
		return nil, err
	}

	merchantID, err := merchantIDOf(ctx, q.users, userID)
	if err != nil {
		return nil, err
	}
	filter.MerchantID = &merchantID

	return q.search(ctx, filter, page)
}

func (q *carQueriesImpl) search(ctx context.Context, filter CarFilter, page PageRequest) (*Page[CarView], error) {
	items, total, err := q.readStore.Search(ctx, filter, page)
	if err != nil {
		return nil, errs.Persistence(err, "failed to search cars")
	}
	return emptyFirstPageCheck(NewPage(items, page, total), ErrNoCarsFound)
}

func parseCarQuery(params map[string]string) (CarFilter, PageRequest, error) {
	page, err := ParsePageRequest(params)
	if err != nil {
		return CarFilter{}, PageRequest{}, err
	}
	filter, err := ParseCarFilter(params)
	if err != nil {
		return CarFilter{}, PageRequest{}, err
	}
	return filter, page, nil
}

// emptyFirstPageCheck fails with notFound when page 1 is empty. Later pages may be empty.
func emptyFirstPageCheck[T any](p *Page[T], notFound error) (*Page[T], error) {
	if p.IsEmptyFirstPage() {
		return nil, notFound
	}
	return p, nil
}
