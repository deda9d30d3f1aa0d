//go:build unit

package readstore

import (
	"context"
	"testing"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarReadQueries struct {
	mock.Mock
}

func (m *MockCarReadQueries) GetCarByID(ctx context.Context, db pg.DBTX, id int64) (pg.Cars, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pg.Cars), args.Error(1)
}

func (m *MockCarReadQueries) CountCars(ctx context.Context, db pg.DBTX, arg pg.CarSearchParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarReadQueries) SearchCars(ctx context.Context, db pg.DBTX, arg pg.CarSearchParams, limit, offset int64) ([]pg.Cars, error) {
	args := m.Called(ctx, db, arg, limit, offset)
	rows, _ := args.Get(0).([]pg.Cars)
	return rows, args.Error(1)
}

func TestCarReadStore_FindByID(t *testing.T) {
	row := builder.NewCarBuilder().With(func(b *builder.CarBuilder) {
		b.PricePerHour = decimal.RequireFromString("12.50")
	}).BuildInfra()

	t.Run("NUMERICをdecimalに変換", func(t *testing.T) {
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("GetCarByID", mock.Anything, mock.Anything, int64(1)).Return(row, nil)

		view, err := NewCarReadStore(mockQueries, nil, nil).FindByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "12.50", view.PricePerHour.StringFixed(2))
		assert.Equal(t, "AVAILABLE", view.Status)
		assert.Equal(t, 2020, view.Year)
	})

	t.Run("存在しない", func(t *testing.T) {
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("GetCarByID", mock.Anything, mock.Anything, int64(2)).Return(pg.Cars{}, pgx.ErrNoRows)

		_, err := NewCarReadStore(mockQueries, nil, nil).FindByID(context.Background(), 2)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("不正なNUMERICはDBFailure", func(t *testing.T) {
		broken := row
		broken.PricePerHour = pgtype.Numeric{NaN: true, Valid: true}
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("GetCarByID", mock.Anything, mock.Anything, int64(3)).Return(broken, nil)

		_, err := NewCarReadStore(mockQueries, nil, nil).FindByID(context.Background(), 3)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCarReadStore_Search(t *testing.T) {
	ctx := context.Background()
	year := 2020
	status := car.StatusAvailable
	minPrice := decimal.NewFromInt(5)
	filter := queries.CarFilter{Year: &year, Status: &status, MinPrice: &minPrice}
	page := queries.PageRequest{Page: 2, PerPage: 1}

	t.Run("フィルタをパラメータに変換して1つのスナップショットで検索", func(t *testing.T) {
		snapshots := newStubSnapshots()
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("CountCars", ctx, snapshots.db, mock.MatchedBy(func(p pg.CarSearchParams) bool {
			return *p.Year == 2020 && *p.Status == "AVAILABLE" && p.MinPrice.Valid && !p.MaxPrice.Valid && p.Make == nil
		})).Return(int64(3), nil)
		mockQueries.On("SearchCars", ctx, snapshots.db, mock.Anything, int64(1), int64(1)).
			Return([]pg.Cars{builder.NewCarBuilder().WithID(2).BuildInfra()}, nil)

		items, total, err := NewCarReadStore(mockQueries, nil, snapshots).Search(ctx, filter, page)

		require.NoError(t, err)
		assert.Equal(t, 1, snapshots.calls)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].ID)
		mockQueries.AssertExpectations(t)
	})

	t.Run("範囲外ページは検索しない", func(t *testing.T) {
		snapshots := newStubSnapshots()
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("CountCars", ctx, mock.Anything, mock.Anything).Return(int64(1), nil)

		items, total, err := NewCarReadStore(mockQueries, nil, snapshots).Search(ctx, filter, page)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, items)
		mockQueries.AssertNotCalled(t, "SearchCars", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DB障害", func(t *testing.T) {
		mockQueries := new(MockCarReadQueries)
		mockQueries.On("CountCars", ctx, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, _, err := NewCarReadStore(mockQueries, nil, newStubSnapshots()).Search(ctx, filter, page)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("トランザクション開始失敗", func(t *testing.T) {
		snapshots := newStubSnapshots()
		snapshots.err = assert.AnError
		mockQueries := new(MockCarReadQueries)

		_, _, err := NewCarReadStore(mockQueries, nil, snapshots).Search(ctx, filter, page)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertNotCalled(t, "CountCars", mock.Anything, mock.Anything, mock.Anything)
	})
}
