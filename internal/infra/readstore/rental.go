package readstore

import (
	"context"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RentalReadQueries interface {
	FindOpenRentalByUser(ctx context.Context, db pg.DBTX, userID int64) (pg.Rentals, error)
	CountRentals(ctx context.Context, db pg.DBTX, arg pg.RentalSearchParams) (int64, error)
	SearchRentals(ctx context.Context, db pg.DBTX, arg pg.RentalSearchParams, limit, offset int64) ([]pg.Rentals, error)
	ListOverdueRentals(ctx context.Context, db pg.DBTX, startedBefore pgtype.Timestamptz) ([]pg.OverdueRentalRow, error)
}

type RentalReadStore struct {
	queries   RentalReadQueries
	db        pg.DBTX
	snapshots SnapshotReader
}

func NewRentalReadStore(queries RentalReadQueries, db pg.DBTX, snapshots SnapshotReader) *RentalReadStore {
	return &RentalReadStore{
		queries:   queries,
		db:        db,
		snapshots: snapshots,
	}
}

func (r *RentalReadStore) FindOpenByUser(ctx context.Context, userID int64) (*queries.RentalView, error) {
	row, err := r.queries.FindOpenRentalByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open rental", err)
	}

	view, err := ToRentalView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rental", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *RentalReadStore) Search(ctx context.Context, filter queries.RentalFilter, page queries.PageRequest) ([]queries.RentalView, int64, error) {
	params := toRentalSearchParams(filter)

	var (
		rows  []pg.Rentals
		total int64
	)
	err := r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db pg.DBTX) error {
		var err error
		total, err = r.queries.CountRentals(ctx, db, params)
		if err != nil {
			return errs.Wrap(err, "count rentals")
		}
		if total == 0 || page.Offset() >= total {
			return nil
		}

		rows, err = r.queries.SearchRentals(ctx, db, params, page.Limit(), page.Offset())
		if err != nil {
			return errs.Wrap(err, "select rentals page")
		}
		return nil
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search rentals", err, infra.KindDBFailure)
	}

	views := make([]queries.RentalView, 0, len(rows))
	for _, row := range rows {
		v, err := ToRentalView(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert rental", err, infra.KindDBFailure)
		}
		views = append(views, *v)
	}
	return views, total, nil
}

func (r *RentalReadStore) ListOverdue(ctx context.Context, startedBefore time.Time) ([]queries.OverdueRentalView, error) {
	rows, err := r.queries.ListOverdueRentals(ctx, r.db, pgconv.TimeToPgtype(startedBefore))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue rentals", err, infra.KindDBFailure)
	}

	views := make([]queries.OverdueRentalView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.OverdueRentalView{
			RentalID:   row.RentalID,
			RentalDate: pgconv.TimeFromPgtype(row.RentalDate),
			UserID:     row.UserID,
			UserEmail:  row.UserEmail,
			CarID:      row.CarID,
			CarMake:    row.CarMake,
			CarModel:   row.CarModel,
		})
	}
	return views, nil
}

func ToRentalView(row pg.Rentals) (*queries.RentalView, error) {
	fee, err := pgconv.DecimalPtrFromNumeric(row.TotalFee)
	if err != nil {
		return nil, err
	}
	return &queries.RentalView{
		ID:         row.ID,
		UserID:     row.UserID,
		CarID:      row.CarID,
		RentalDate: pgconv.TimeFromPgtype(row.RentalDate),
		ReturnDate: pgconv.TimePtrFromPgtype(row.ReturnDate),
		TotalFee:   fee,
	}, nil
}

func toRentalSearchParams(f queries.RentalFilter) pg.RentalSearchParams {
	params := pg.RentalSearchParams{
		UserID:     f.UserID,
		CarID:      f.CarID,
		MerchantID: f.MerchantID,
		MinFee:     pgconv.DecimalPtrToNumeric(f.MinFee),
		MaxFee:     pgconv.DecimalPtrToNumeric(f.MaxFee),
	}
	if f.State != nil {
		open := *f.State == rental.StateActive
		params.Open = &open
	}
	if f.RentalDateStart != nil {
		params.RentalDateGTE = pgconv.DateToPgtype(*f.RentalDateStart)
	}
	if f.RentalDateEnd != nil {
		params.RentalDateLTE = pgconv.DateToPgtype(*f.RentalDateEnd)
	}
	return params
}
