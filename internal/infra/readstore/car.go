package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"
)

type CarReadQueries interface {
	GetCarByID(ctx context.Context, db pg.DBTX, id int64) (pg.Cars, error)
	CountCars(ctx context.Context, db pg.DBTX, arg pg.CarSearchParams) (int64, error)
	SearchCars(ctx context.Context, db pg.DBTX, arg pg.CarSearchParams, limit, offset int64) ([]pg.Cars, error)
}

type CarReadStore struct {
	queries   CarReadQueries
	db        pg.DBTX
	snapshots SnapshotReader
}

func NewCarReadStore(queries CarReadQueries, db pg.DBTX, snapshots SnapshotReader) *CarReadStore {
	return &CarReadStore{
		queries:   queries,
		db:        db,
		snapshots: snapshots,
	}
}

func (r *CarReadStore) FindByID(ctx context.Context, id int64) (*queries.CarView, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	view, err := ToCarView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert car", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *CarReadStore) Search(ctx context.Context, filter queries.CarFilter, page queries.PageRequest) ([]queries.CarView, int64, error) {
	params := toCarSearchParams(filter)

	var (
		rows  []pg.Cars
		total int64
	)
	err := r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db pg.DBTX) error {
		var err error
		total, err = r.queries.CountCars(ctx, db, params)
		if err != nil {
			return errs.Wrap(err, "count cars")
		}
		if total == 0 || page.Offset() >= total {
			return nil
		}

		rows, err = r.queries.SearchCars(ctx, db, params, page.Limit(), page.Offset())
		if err != nil {
			return errs.Wrap(err, "select cars page")
		}
		return nil
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search cars", err, infra.KindDBFailure)
	}

	views := make([]queries.CarView, 0, len(rows))
	for _, row := range rows {
		v, err := ToCarView(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert car", err, infra.KindDBFailure)
		}
		views = append(views, *v)
	}
	return views, total, nil
}

// ToCarView is shared with the write side, which reports cars in the same shape.
func ToCarView(row pg.Cars) (*queries.CarView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	return &queries.CarView{
		ID:           row.ID,
		Make:         row.Make,
		Model:        row.Model,
		Year:         int(row.Year),
		Status:       row.Status,
		PricePerHour: price,
		MerchantID:   row.MerchantID,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func toCarSearchParams(f queries.CarFilter) pg.CarSearchParams {
	params := pg.CarSearchParams{
		Make:       f.Make,
		Model:      f.Model,
		MinPrice:   pgconv.DecimalPtrToNumeric(f.MinPrice),
		MaxPrice:   pgconv.DecimalPtrToNumeric(f.MaxPrice),
		MerchantID: f.MerchantID,
	}
	if f.Year != nil {
		// #nosec G115 -- year is parsed with a 32-bit size
		year := int32(*f.Year)
		params.Year = &year
	}
	if f.Status != nil {
		status := f.Status.String()
		params.Status = &status
	}
	return params
}
